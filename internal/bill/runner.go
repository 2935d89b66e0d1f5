package bill

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/jeekhub/jeek/internal/config"
	"github.com/jeekhub/jeek/internal/logging"
)

// Result is the captured outcome of an analyzer or exporter run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes the configured analyzer and exporter against a bill set.
//
// The commands receive no arguments beyond their configured ones; the bill
// set is implicit. They run with the bill directory as working directory and
// with JEEK_BILL_DIR, JEEK_BILL_RAW, JEEK_BILL_ANALYZED and
// JEEK_BILL_REPORTS in the environment.
type Runner struct {
	Dir      string
	Analyzer config.Command
	Exporter config.Command
	// Timeout bounds each run; zero means no deadline.
	Timeout time.Duration
}

// NewRunner creates a Runner from the user configuration.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		Dir:      cfg.BillDir,
		Analyzer: cfg.Analyzer,
		Exporter: cfg.Exporter,
		Timeout:  cfg.CommandTimeout(),
	}
}

// Analyze runs the analyzer. The caller rescans the bill set afterwards.
func (r *Runner) Analyze(ctx context.Context) (*Result, error) {
	return r.run(ctx, "analyze", r.Analyzer)
}

// Export runs the exporter and returns the export destination, taken from
// the last non-empty line the exporter prints. When it prints nothing the
// reports directory is returned.
func (r *Runner) Export(ctx context.Context) (string, error) {
	res, err := r.run(ctx, "export", r.Exporter)
	if err != nil {
		return "", err
	}
	if dest := lastLine(res.Stdout); dest != "" {
		return dest, nil
	}
	return filepath.Join(r.Dir, ReportsDir), nil
}

func (r *Runner) run(ctx context.Context, name string, c config.Command) (*Result, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)
	cmd.Dir = r.Dir
	// Orphaned grandchildren may hold the output pipes after a kill.
	cmd.WaitDelay = 2 * time.Second
	cmd.Env = append(os.Environ(),
		"JEEK_BILL_DIR="+r.Dir,
		"JEEK_BILL_RAW="+filepath.Join(r.Dir, RawDir),
		"JEEK_BILL_ANALYZED="+filepath.Join(r.Dir, AnalyzedDir),
		"JEEK_BILL_REPORTS="+filepath.Join(r.Dir, ReportsDir),
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
	}

	logging.LogExternalCommand(c.Command, c.Args, res.ExitCode, res.Duration, err)

	if ctx.Err() == context.DeadlineExceeded {
		return res, &TimeoutError{Name: name, Timeout: r.Timeout.String()}
	}
	if err != nil {
		return res, &CommandError{Name: name, ExitCode: res.ExitCode, Stderr: res.Stderr, Err: err}
	}

	return res, nil
}
