package morpheus

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/lexidex/internal/domain"
)

// Runner executes one analyzer call: newline separated beta code forms in,
// raw analyzer output out.
type Runner interface {
	Run(ctx context.Context, input string) (string, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, input string) (string, error)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, input string) (string, error) {
	return f(ctx, input)
}

// waitDelay bounds how long Wait blocks on the output pipes after the
// process has been killed.
const waitDelay = 50 * time.Millisecond

// CruncherRunner spawns one cruncher process per call.
type CruncherRunner struct {
	binary  string
	stemlib string
}

// NewCruncherRunner creates a runner for the given installation.
func NewCruncherRunner(binary, stemlib string) *CruncherRunner {
	return &CruncherRunner{binary: binary, stemlib: stemlib}
}

// Run starts `cruncher -n -d` (ignore accents, dictionary output) with
// MORPHLIB pointing at the stem library, feeds input on stdin and returns
// stdout. The process is killed when ctx expires.
func (r *CruncherRunner) Run(ctx context.Context, input string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, "-n", "-d")
	cmd.Env = append(os.Environ(), "MORPHLIB="+r.stemlib)
	cmd.Stdin = strings.NewReader(input)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.WithSecondaryError(
				domain.ErrAnalyzerTimeout,
				errors.Wrapf(err, "cruncher killed after deadline"),
			)
		}
		cause := errors.Wrapf(err, "run %s", r.binary)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			cause = errors.WithSecondaryError(cause, errors.Newf("stderr: %s", msg))
		}
		return "", errors.WithSecondaryError(domain.ErrAnalyzerProcess, cause)
	}
	return stdout.String(), nil
}
