package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"

	"gtp/internal/config"
	"gtp/internal/domain"
)

// waitDelay bounds how long Run waits for output pipes after the process was killed
const waitDelay = 5 * time.Second

// CommandRunner invokes the test binary with the given arguments
type CommandRunner interface {
	Run(ctx context.Context, args ...string) domain.ProcessResult
}

// Runner runs the test binary after sourcing the SDK environment setup script
type Runner struct {
	config *config.Config
	log    logrus.FieldLogger
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, log logrus.FieldLogger) *Runner {
	return &Runner{
		config: cfg,
		log:    log.WithField("component", "runner"),
	}
}

// Command builds the child process for one invocation of the test binary
func (r *Runner) Command(ctx context.Context, args ...string) (*exec.Cmd, error) {
	envPath, err := r.config.GetEnvSetupPath()
	if err != nil {
		return nil, err
	}
	binary := r.config.GetBinaryPath()

	var cmd *exec.Cmd
	if r.config.Windows {
		cmdArgs := append([]string{"/C", envPath, "&&", binary}, args...)
		cmd = exec.CommandContext(ctx, "cmd", cmdArgs...)
	} else {
		line := fmt.Sprintf("source %s && exec %s",
			shellquote.Join(envPath),
			shellquote.Join(append([]string{binary}, args...)...))
		cmd = exec.CommandContext(ctx, "bash", "-c", line)
	}

	cmd.Dir = r.config.GetOutputDir()
	cmd.Env = append(os.Environ(), r.childEnv()...)
	cmd.WaitDelay = waitDelay
	return cmd, nil
}

// Run executes the test binary and classifies how it ended
func (r *Runner) Run(ctx context.Context, args ...string) domain.ProcessResult {
	if err := ctx.Err(); err != nil {
		return domain.ProcessResult{ExitCode: -1, Reason: contextReason(err), Err: err}
	}

	cmd, err := r.Command(ctx, args...)
	if err != nil {
		return domain.ProcessResult{ExitCode: -1, Reason: domain.ReasonInvocation, Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.WithField("args", strings.Join(args, " ")).Debug("starting test binary")

	start := time.Now()
	err = cmd.Run()
	result := domain.ProcessResult{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
		Err:      err,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Reason = domain.ReasonNone
	case ctx.Err() != nil:
		result.Reason = contextReason(ctx.Err())
	case errors.As(err, &exitErr):
		result.Reason = domain.ReasonNonZeroExit
	default:
		result.Reason = domain.ReasonInvocation
	}
	return result
}

func (r *Runner) childEnv() []string {
	keys := make([]string, 0, len(r.config.Env))
	for k := range r.config.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+r.config.Env[k])
	}
	return env
}

func contextReason(err error) domain.FailureReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ReasonTimeout
	}
	return domain.ReasonCanceled
}
