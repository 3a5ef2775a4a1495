// Package cmdexec abstracts external command execution for testability.
// Production code uses the Commander interface; tests inject FakeCommander from testutil.
// Every invocation is reduced to a Result tuple so callers never inspect exit errors directly.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// Result는 외부 명령 실행 결과다. stdout, stderr, 성공 여부만 담는다.
type Result struct {
	Stdout  string
	Stderr  string
	Success bool
}

// Trimmed는 앞뒤 공백을 제거한 stdout을 반환한다.
func (r Result) Trimmed() string {
	return strings.TrimSpace(r.Stdout)
}

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and captures its output.
	Run(ctx context.Context, name string, args ...string) Result

	// RunWithEnv executes an external command with additional environment variables
	// merged on top of the current process environment.
	RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) Result
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct {
	// Timeout bounds every command. Zero means no bound.
	Timeout time.Duration
	// Logger receives one debug record per command. Nil disables logging.
	Logger *slog.Logger
}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) Result {
	return c.RunWithEnv(ctx, nil, name, args...)
}

// RunWithEnv executes the command with additional environment variables.
// The provided env map is merged on top of the current process environment.
func (c *RealCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) Result {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Success: err == nil,
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.Success = false
		res.Stderr = strings.TrimSpace(res.Stderr + fmt.Sprintf("\n%s: timed out after %s", name, c.Timeout))
	} else if err != nil && res.Stderr == "" {
		res.Stderr = err.Error()
	}

	if c.Logger != nil {
		c.Logger.Debug("external command",
			"cmd", name+" "+strings.Join(args, " "),
			"success", res.Success,
			"elapsed", time.Since(start),
		)
	}
	return res
}

// mapToEnvSlice converts a map of environment variables to a sorted slice of "KEY=VALUE" strings.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}
