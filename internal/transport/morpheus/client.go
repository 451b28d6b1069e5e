// Package morpheus queries the Morpheus morphological analyzer (cruncher)
// for the lemmas a Greek form may belong to.
package morpheus

import (
	"context"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/lexidex/internal/domain"
	"github.com/kailas-cloud/lexidex/internal/domain/morph"
	"github.com/kailas-cloud/lexidex/internal/metrics"
)

// DefaultTimeout bounds a single analyzer call.
const DefaultTimeout = 100 * time.Millisecond

// Config holds the analyzer installation settings.
type Config struct {
	BinaryPath  string
	StemlibPath string
	Timeout     time.Duration
}

// Client runs analyzer lookups. A client whose binary or stem library is
// missing is permanently disabled and answers every lookup with an empty
// result.
type Client struct {
	runner    Runner
	timeout   time.Duration
	available bool
	logger    *zap.Logger
}

// New checks the installation and creates a client. runner may be nil, in
// which case the cruncher binary from cfg is spawned for every call.
func New(cfg Config, runner Runner, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if runner == nil {
		runner = NewCruncherRunner(cfg.BinaryPath, cfg.StemlibPath)
	}

	c := &Client{
		runner:  runner,
		timeout: timeout,
		logger:  logger,
	}
	c.available = checkInstallation(cfg, logger)
	return c
}

func checkInstallation(cfg Config, logger *zap.Logger) bool {
	bin, err := os.Lstat(cfg.BinaryPath)
	if cfg.BinaryPath == "" || err != nil || !bin.Mode().IsRegular() {
		logger.Warn("Morpheus binary not found, morphology disabled",
			zap.String("binary_path", cfg.BinaryPath))
		return false
	}
	lib, err := os.Lstat(cfg.StemlibPath)
	if cfg.StemlibPath == "" || err != nil || !lib.IsDir() {
		logger.Warn("Morpheus stemlib not found, morphology disabled",
			zap.String("stemlib_path", cfg.StemlibPath))
		return false
	}

	if err := os.Chmod(cfg.BinaryPath, bin.Mode().Perm()|0o100); err != nil {
		logger.Error("Failed to make Morpheus binary executable",
			zap.String("binary_path", cfg.BinaryPath), zap.Error(err))
	}
	return true
}

// Available reports whether the analyzer installation was found.
func (c *Client) Available() bool { return c.available }

// Check reports whether the analyzer binary can run.
func (c *Client) Check(_ context.Context) error {
	if !c.available {
		return domain.ErrAnalyzerUnavailable
	}
	return nil
}

// IsNeeded reports whether analyzing canonical can produce anything: the
// analyzer ignores whitespace and digamma, and wildcard or anchored-end
// queries are not word forms.
func (c *Client) IsNeeded(canonical string) bool {
	if !c.available || canonical == "" {
		return false
	}
	if strings.ContainsFunc(canonical, unicode.IsSpace) || strings.ContainsAny(canonical, "ϝϜ?*") {
		return false
	}
	return !strings.HasSuffix(canonical, `"`) && !strings.HasSuffix(canonical, "$")
}

// Lookup analyzes canonical under the configured timeout. Failures are
// logged and counted; the caller always gets a result, possibly empty.
func (c *Client) Lookup(ctx context.Context, canonical string, caseSensitive bool) morph.Result {
	if !c.IsNeeded(canonical) {
		metrics.MorpheusCallsTotal.WithLabelValues("skipped").Inc()
		return morph.Result{}
	}

	callID := ksuid.New().String()
	input := Candidates(canonical, caseSensitive)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	out, err := c.runner.Run(ctx, input)
	duration := time.Since(start)
	metrics.MorpheusCallDuration.Observe(duration.Seconds())

	if err != nil {
		status := "error"
		if errors.Is(err, domain.ErrAnalyzerTimeout) || errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
		metrics.MorpheusCallsTotal.WithLabelValues(status).Inc()
		c.logger.Warn("Morpheus call failed",
			zap.String("call_id", callID),
			zap.String("status", status),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return morph.Result{}
	}

	metrics.MorpheusCallsTotal.WithLabelValues("ok").Inc()
	res := Parse(out)
	c.logger.Debug("Morpheus call",
		zap.String("call_id", callID),
		zap.Duration("duration", duration),
		zap.Int("lemmas", len(res.Lemmas())),
	)
	return res
}
