package main

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{level: "", expected: logrus.InfoLevel},
		{level: "debug", expected: logrus.DebugLevel},
		{level: "warn", expected: logrus.WarnLevel},
		{level: "nonsense", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := newLogger(tt.level).GetLevel(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
