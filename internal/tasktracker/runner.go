package tasktracker

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Executor runs shell commands for command and unit tests.
type Executor interface {
	Run(ctx context.Context, dir, command string) (string, error)
}

// ShellExecutor runs commands through sh -c.
type ShellExecutor struct{}

func (ShellExecutor) Run(ctx context.Context, dir, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

type Result struct {
	Pass    bool
	Message string
}

type Totals struct {
	Passed  int
	Failed  int
	Skipped int
}

type Runner struct {
	root   string
	exec   Executor
	logger *zerolog.Logger
}

func NewRunner(root string, executor Executor, logger *zerolog.Logger) *Runner {
	if executor == nil {
		executor = ShellExecutor{}
	}
	return &Runner{root: root, exec: executor, logger: logger}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (r *Runner) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(r.root, rel))
	return err == nil
}

// RunTest dispatches on the test type. Render and interaction tests are manual and pass.
func (r *Runner) RunTest(ctx context.Context, t Test) Result {
	switch t.Type {
	case TestCommand:
		out, err := r.exec.Run(ctx, r.root, t.Command)
		if err != nil {
			return Result{Message: truncate(err.Error(), 200)}
		}
		return Result{Pass: true, Message: "Command passed: " + truncate(out, 100)}

	case TestFileExists:
		var missing []string
		for _, f := range t.Files {
			if !r.exists(f) {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			return Result{Message: "Missing: " + strings.Join(missing, ", ")}
		}
		return Result{Pass: true, Message: "All files exist"}

	case TestAPI:
		if t.Endpoint == "" {
			return Result{Message: "No endpoint defined"}
		}
		return Result{Pass: true, Message: fmt.Sprintf("API test defined: %s -> %d", t.Endpoint, t.ExpectedStatus)}

	case TestUnit:
		if t.File == "" {
			return Result{Message: "No test file defined"}
		}
		if !r.exists(t.File) {
			return Result{Message: "Test file not found: " + t.File}
		}
		pkg := "./" + filepath.ToSlash(filepath.Dir(t.File))
		out, err := r.exec.Run(ctx, r.root, "go test -v "+pkg)
		if err != nil {
			return Result{Message: truncate(err.Error(), 200)}
		}
		return Result{Pass: true, Message: truncate(out, 200)}

	case TestRender, TestInteraction:
		return Result{Pass: true, Message: "Manual test: " + t.Description}

	case TestDBQuery:
		return Result{Pass: true, Message: "DB test defined: " + t.Query}
	}
	return Result{Message: fmt.Sprintf("Unknown test type: %s", t.Type)}
}

// RunPhase runs every non-skipped subtask test of the phase and prints the results.
func (r *Runner) RunPhase(ctx context.Context, w io.Writer, p *Phase) Totals {
	var totals Totals
	fmt.Fprintf(w, "\n🧪 Running tests for %s: %s\n\n", p.ID, p.Name)

	for _, t := range p.Tasks {
		fmt.Fprintf(w, "  📋 %s: %s\n", t.ID, t.Name)
		for _, s := range t.Subtasks {
			if s.Status == StatusSkipped {
				totals.Skipped++
				fmt.Fprintf(w, "    ⏭  %s: SKIPPED\n", s.ID)
				continue
			}

			res := r.RunTest(ctx, s.Test)
			if res.Pass {
				totals.Passed++
				fmt.Fprintf(w, "    ✅ %s: %s\n", s.ID, s.Test.Description)
				continue
			}
			totals.Failed++
			r.logger.Debug().Str("subtask", s.ID).Str("type", string(s.Test.Type)).Msg(res.Message)
			fmt.Fprintf(w, "    ❌ %s: %s\n", s.ID, s.Test.Description)
			fmt.Fprintf(w, "       → %s\n", res.Message)
		}
	}

	fmt.Fprintf(w, "\n📊 Results: %d passed, %d failed, %d skipped\n", totals.Passed, totals.Failed, totals.Skipped)
	return totals
}
