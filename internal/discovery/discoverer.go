package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/execution"
)

// DiscoveryError is returned when the test binary cannot list its suites
type DiscoveryError struct {
	Reason   domain.FailureReason
	ExitCode int
	Stderr   string
	Err      error
}

func (e *DiscoveryError) Error() string {
	msg := fmt.Sprintf("failed to get test list: %s", e.Reason)
	if e.Reason == domain.ReasonNonZeroExit {
		msg += fmt.Sprintf(" (exit code %d)", e.ExitCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Discoverer lists and classifies the suites of the test binary
type Discoverer struct {
	config *config.Config
	runner execution.CommandRunner
	log    logrus.FieldLogger
}

// NewDiscoverer creates a new Discoverer
func NewDiscoverer(cfg *config.Config, runner execution.CommandRunner, log logrus.FieldLogger) *Discoverer {
	return &Discoverer{
		config: cfg,
		runner: runner,
		log:    log.WithField("component", "discoverer"),
	}
}

// Discover runs the binary in list mode and classifies every suite it prints
func (d *Discoverer) Discover(ctx context.Context) (domain.DiscoveryResult, error) {
	if d.config.DiscoveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.DiscoveryTimeout)
		defer cancel()
	}

	result := d.runner.Run(ctx, execution.ListArg)
	if !result.OK() {
		return domain.DiscoveryResult{}, &DiscoveryError{
			Reason:   result.Reason,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
			Err:      result.Err,
		}
	}
	if strings.TrimSpace(result.Stdout) == "" {
		return domain.DiscoveryResult{}, &DiscoveryError{
			Reason:   domain.ReasonNone,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
			Err:      fmt.Errorf("no output from %s", execution.ListArg),
		}
	}

	discovered := ParseSuiteList(result.Stdout)
	d.log.WithFields(logrus.Fields{
		"parallel": len(discovered.Parallel),
		"serial":   len(discovered.Serial),
	}).Info("discovered test suites")
	d.log.WithFields(logrus.Fields{
		"parallel": discovered.Parallel,
		"serial":   discovered.Serial,
	}).Debug("suite classification")

	return discovered, nil
}
