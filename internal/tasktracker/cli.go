package tasktracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const usage = `
Task database CLI

Commands:
  summary                      Show all phases with progress
  phase <PHASE_ID>             Show full phase context (P1, P2, etc.)
  task <TASK_ID>               Show task detail (P1-T1, P2-T2, etc.)
  next                         Show next pending task to implement
  update <SUBTASK_ID> <STATUS> Update subtask status
  test <PHASE_ID>              Run tests for a phase
  sync                         Upsert subtasks into the project_tasks table

Status: pending | in_progress | done | skipped

Examples:
  tasktracker summary
  tasktracker phase P1
  tasktracker task P1-T2
  tasktracker update P1-T1-S1 done
  tasktracker test P1
`

// CLI wires the subcommands to a task file.
type CLI struct {
	Path     string
	Root     string
	Out      io.Writer
	Logger   *zerolog.Logger
	Executor Executor
	// OpenDB is called by sync only.
	OpenDB func(ctx context.Context) (*gorm.DB, error)
}

// Run executes one subcommand and returns the process exit code. Only load, save and
// sync failures are non-zero; unknown ids and bad arguments print a message.
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.Out, usage)
		return 0
	}
	cmd := args[0]
	arg := func(i int) string {
		if i < len(args) {
			return strings.ToUpper(strings.TrimSpace(args[i]))
		}
		return ""
	}

	switch cmd {
	case "summary", "phase", "task", "next", "update", "test", "sync":
	default:
		fmt.Fprint(c.Out, usage)
		return 0
	}

	db, err := Load(c.Path)
	if err != nil {
		c.Logger.Error().Err(err).Str("path", c.Path).Msg("failed to load task file")
		return 1
	}

	switch cmd {
	case "summary":
		PrintSummary(c.Out, db)

	case "phase":
		if arg(1) == "" {
			fmt.Fprintln(c.Out, "Usage: tasktracker phase <PHASE_ID>")
			return 0
		}
		p, err := db.Phase(arg(1))
		if err != nil {
			fmt.Fprintf(c.Out, "Phase %s not found.\n", arg(1))
			return 0
		}
		PrintPhase(c.Out, p)

	case "task":
		if arg(1) == "" {
			fmt.Fprintln(c.Out, "Usage: tasktracker task <TASK_ID>")
			return 0
		}
		t, p, err := db.Task(arg(1))
		if err != nil {
			fmt.Fprintf(c.Out, "Task %s not found.\n", arg(1))
			return 0
		}
		PrintTask(c.Out, t, p)

	case "next":
		PrintNext(c.Out, db)

	case "update":
		if arg(1) == "" || len(args) < 3 {
			fmt.Fprintln(c.Out, "Usage: tasktracker update <SUBTASK_ID> <STATUS>")
			fmt.Fprintln(c.Out, "Status: pending | in_progress | done | skipped")
			return 0
		}
		return c.update(db, arg(1), strings.TrimSpace(args[2]))

	case "test":
		if arg(1) == "" {
			fmt.Fprintln(c.Out, "Usage: tasktracker test <PHASE_ID>")
			return 0
		}
		p, err := db.Phase(arg(1))
		if err != nil {
			fmt.Fprintf(c.Out, "Phase %s not found.\n", arg(1))
			return 0
		}
		NewRunner(c.Root, c.Executor, c.Logger).RunPhase(ctx, c.Out, p)

	case "sync":
		return c.sync(ctx, db)
	}
	return 0
}

func (c *CLI) update(db *Database, id, status string) int {
	st, ok := ParseStatus(status)
	if !ok {
		fmt.Fprintf(c.Out, "Invalid status %q. Use one of: pending, in_progress, done, skipped\n", status)
		return 0
	}
	if err := db.UpdateSubtask(id, st); err != nil {
		if errors.Is(err, ErrSubtaskNotFound) {
			fmt.Fprintf(c.Out, "Subtask %s not found.\n", id)
			return 0
		}
		c.Logger.Error().Err(err).Msg("update failed")
		return 1
	}
	if err := Save(c.Path, db); err != nil {
		c.Logger.Error().Err(err).Str("path", c.Path).Msg("failed to save task file")
		return 1
	}
	fmt.Fprintf(c.Out, "✏️  Updated %s → %s\n", id, st)
	return 0
}

func (c *CLI) sync(ctx context.Context, db *Database) int {
	if c.OpenDB == nil {
		c.Logger.Error().Msg("sync needs a database connection")
		return 1
	}
	gdb, err := c.OpenDB(ctx)
	if err != nil {
		c.Logger.Error().Err(err).Msg("failed to connect to database")
		return 1
	}
	n, err := Sync(ctx, gdb, db)
	if err != nil {
		c.Logger.Error().Err(err).Msg("sync failed")
		return 1
	}
	fmt.Fprintf(c.Out, "Synced %d subtasks\n", n)
	return 0
}
