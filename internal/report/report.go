// Package report reads the per-suite JSON reports written by the test binary.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"gtp/internal/domain"
)

// Stage names the parsing step that rejected a report
type Stage string

const (
	StageSyntax Stage = "syntax"
	StageSchema Stage = "schema"
	StageDecode Stage = "decode"
)

// ParseError is returned when a report cannot be turned into a StructuredReport
type ParseError struct {
	Stage Stage
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid report (%s): %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type reportDocument struct {
	Failures   int             `json:"failures"`
	TestSuites []suiteDocument `json:"testsuites"`
}

type suiteDocument struct {
	TestSuite []caseDocument `json:"testsuite"`
}

type caseDocument struct {
	ClassName  string          `json:"classname"`
	Name       string          `json:"name"`
	Failures   json.RawMessage `json:"failures,omitempty"`
	ValueParam *string         `json:"value_param,omitempty"`
}

type failureDocument struct {
	Failure string `json:"failure"`
}

// Parse validates and decodes a report document
func Parse(data []byte) (*domain.StructuredReport, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Stage: StageSyntax, Err: err}
	}
	if err := validate(inst); err != nil {
		return nil, &ParseError{Stage: StageSchema, Err: err}
	}

	var doc reportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Stage: StageDecode, Err: err}
	}

	report := &domain.StructuredReport{TotalFailures: doc.Failures}
	for _, suite := range doc.TestSuites {
		for _, c := range suite.TestSuite {
			report.TestGroups = append(report.TestGroups, domain.TestCaseEntry{
				ClassName:  c.ClassName,
				Name:       c.Name,
				Failed:     hasMarker(c.Failures),
				ValueParam: c.ValueParam,
				Messages:   failureMessages(c.Failures),
			})
		}
	}
	return report, nil
}

func hasMarker(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// failureMessages extracts messages from the array form gtest writes; other marker forms carry none
func failureMessages(raw json.RawMessage) []string {
	if !hasMarker(raw) {
		return nil
	}
	var failures []failureDocument
	if err := json.Unmarshal(raw, &failures); err != nil {
		return nil
	}
	var messages []string
	for _, f := range failures {
		if f.Failure != "" {
			messages = append(messages, f.Failure)
		}
	}
	return messages
}
