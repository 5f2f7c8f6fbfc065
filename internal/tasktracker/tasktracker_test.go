package tasktracker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"findmygym/internal/domain"
	"findmygym/internal/logging"
	"findmygym/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// copyFixture puts the sample task file in a temp dir so tests can save it.
func copyFixture(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "mygym.json"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "mygym.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func loadFixture(t *testing.T) *Database {
	t.Helper()
	db, err := Load(filepath.Join("testdata", "mygym.json"))
	require.NoError(t, err)
	return db
}

type fakeExecutor struct {
	commands []string
	out      string
	err      error
}

func (f *fakeExecutor) Run(_ context.Context, _ string, command string) (string, error) {
	f.commands = append(f.commands, command)
	return f.out, f.err
}

func TestLoad_ValidatesAgainstSchema(t *testing.T) {
	db := loadFixture(t)
	assert.Equal(t, "FindMyGym", db.Project)
	assert.Len(t, db.Phases, 3)
	assert.Equal(t, 4.5, db.Phases[1].EstimatedDays)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"project":"x","phases":[{"id":"P1","name":"a","status":"weird","tasks":[]}]}`), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSave_RoundTripsWithIndent(t *testing.T) {
	path := copyFixture(t)
	db, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, Save(path, db))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"project\": \"FindMyGym\""))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, db, again)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestUpdateSubtask_RollsUp(t *testing.T) {
	db := loadFixture(t)

	require.NoError(t, db.UpdateSubtask("P1-T1-S2", StatusDone))
	task, phase, err := db.Task("P1-T1")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, task.Status)
	assert.Equal(t, StatusInProgress, phase.Status)

	// P1-T2 has one skipped subtask; finishing the other completes task and phase.
	require.NoError(t, db.UpdateSubtask("P1-T2-S1", StatusDone))
	assert.Equal(t, StatusDone, db.Phases[0].Tasks[1].Status)
	assert.Equal(t, StatusDone, db.Phases[0].Status)

	require.NoError(t, db.UpdateSubtask("P1-T2-S1", StatusPending))
	assert.Equal(t, StatusPending, db.Phases[0].Tasks[1].Status)
	assert.Equal(t, StatusInProgress, db.Phases[0].Status)

	assert.ErrorIs(t, db.UpdateSubtask("P9-T1-S1", StatusDone), ErrSubtaskNotFound)
	assert.ErrorIs(t, db.UpdateSubtask("P1-T1-S1", "finished"), ErrInvalidStatus)
}

func TestRollup(t *testing.T) {
	assert.Equal(t, StatusDone, rollup([]Status{StatusDone, StatusSkipped}))
	assert.Equal(t, StatusInProgress, rollup([]Status{StatusDone, StatusPending}))
	assert.Equal(t, StatusInProgress, rollup([]Status{StatusInProgress, StatusSkipped}))
	assert.Equal(t, StatusPending, rollup([]Status{StatusPending, StatusSkipped}))
}

func TestNext_RespectsDependencies(t *testing.T) {
	db := loadFixture(t)

	next, ok := db.Next()
	require.True(t, ok)
	assert.Equal(t, "P1-T1-S2", next.Subtask.ID)

	require.NoError(t, db.UpdateSubtask("P1-T1-S2", StatusDone))
	require.NoError(t, db.UpdateSubtask("P1-T2-S1", StatusSkipped))
	require.Equal(t, StatusDone, db.Phases[0].Status)

	next, ok = db.Next()
	require.True(t, ok)
	assert.Equal(t, "P2-T1-S1", next.Subtask.ID)

	// P2 depends on P1; reopening P1 sends next past P2 to P3.
	db.Phases[0].Status = StatusInProgress
	db.Phases[0].Tasks[1].Subtasks[0].Status = StatusSkipped
	next, ok = db.Next()
	require.True(t, ok)
	assert.Equal(t, "P3-T1-S1", next.Subtask.ID)
}

func TestProgress(t *testing.T) {
	db := loadFixture(t)
	assert.Equal(t, Progress{Done: 1, Total: 4}, db.Phases[0].Progress())
	assert.Equal(t, 25, db.Phases[0].Progress().Percent())
	assert.Equal(t, 33, Progress{Done: 1, Total: 3}.Percent())
	assert.Equal(t, 67, Progress{Done: 2, Total: 3}.Percent())
	assert.Equal(t, 0, Progress{}.Percent())
	assert.Equal(t, Progress{Done: 1, Total: 6}, db.Progress())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, loadFixture(t))
	out := buf.String()

	assert.Contains(t, out, "🔧 P1 | Foundation                          | █████░░░░░░░░░░░░░░░ 25% (1/4) | Sprint 1 | 3d")
	assert.Contains(t, out, "⏳ P2 | Gym directory")
	assert.Contains(t, out, "| Sprint 2 | 4.5d")
	assert.Contains(t, out, "Overall Progress: 1/6 subtasks complete")
}

func TestPrintPhaseAndTask(t *testing.T) {
	db := loadFixture(t)
	var buf bytes.Buffer

	p, err := db.Phase("P1")
	require.NoError(t, err)
	PrintPhase(&buf, p)
	assert.Contains(t, buf.String(), "Depends on: none")
	assert.Contains(t, buf.String(), "✅ P1-T1-S1: Initialize module")
	assert.Contains(t, buf.String(), "Test: [api] healthz answers")

	buf.Reset()
	p, _ = db.Phase("P2")
	PrintPhase(&buf, p)
	assert.Contains(t, buf.String(), "Depends on: P1")
}

func TestRunTest_Dispatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg", "x"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "x", "x_test.go"), []byte("package x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x"), 0o644))

	exec := &fakeExecutor{out: strings.Repeat("ok ", 100)}
	r := NewRunner(root, exec, logging.Nop())
	ctx := context.Background()

	res := r.RunTest(ctx, Test{Type: TestCommand, Command: "make lint"})
	assert.True(t, res.Pass)
	assert.LessOrEqual(t, len([]rune(res.Message)), len("Command passed: ")+100)

	res = r.RunTest(ctx, Test{Type: TestFileExists, Files: []string{"go.mod", "nope.txt", "also.txt"}})
	assert.False(t, res.Pass)
	assert.Equal(t, "Missing: nope.txt, also.txt", res.Message)

	assert.True(t, r.RunTest(ctx, Test{Type: TestFileExists, Files: []string{"go.mod"}}).Pass)
	assert.True(t, r.RunTest(ctx, Test{Type: TestAPI, Endpoint: "/api/gyms", ExpectedStatus: 200}).Pass)
	assert.False(t, r.RunTest(ctx, Test{Type: TestAPI}).Pass)
	assert.True(t, r.RunTest(ctx, Test{Type: TestRender, Description: "x"}).Pass)
	assert.True(t, r.RunTest(ctx, Test{Type: TestInteraction}).Pass)
	assert.True(t, r.RunTest(ctx, Test{Type: TestDBQuery, Query: "SELECT 1"}).Pass)
	assert.False(t, r.RunTest(ctx, Test{Type: "visual"}).Pass)

	res = r.RunTest(ctx, Test{Type: TestUnit, File: "pkg/x/x_test.go"})
	assert.True(t, res.Pass)
	assert.Equal(t, "go test -v ./pkg/x", exec.commands[len(exec.commands)-1])
	assert.LessOrEqual(t, len(res.Message), 200)

	assert.False(t, r.RunTest(ctx, Test{Type: TestUnit, File: "pkg/y/y_test.go"}).Pass)
	assert.False(t, r.RunTest(ctx, Test{Type: TestUnit}).Pass)

	exec.err = errors.New(strings.Repeat("boom ", 100))
	res = r.RunTest(ctx, Test{Type: TestCommand, Command: "false"})
	assert.False(t, res.Pass)
	assert.Len(t, res.Message, 200)
}

func TestRunPhase_Totals(t *testing.T) {
	db := loadFixture(t)
	p, err := db.Phase("P1")
	require.NoError(t, err)

	var buf bytes.Buffer
	totals := NewRunner(filepath.Join("..", ".."), &fakeExecutor{}, logging.Nop()).RunPhase(context.Background(), &buf, p)

	assert.Equal(t, Totals{Passed: 3, Failed: 0, Skipped: 1}, totals)
	assert.Contains(t, buf.String(), "P1-T2-S2: SKIPPED")
	assert.Contains(t, buf.String(), "Results: 3 passed, 0 failed, 1 skipped")
}

func TestCLI_UpdatePersists(t *testing.T) {
	path := copyFixture(t)
	var out bytes.Buffer
	cli := &CLI{Path: path, Root: t.TempDir(), Out: &out, Logger: logging.Nop()}

	assert.Equal(t, 0, cli.Run(context.Background(), []string{"update", "p1-t1-s2", "done"}))
	assert.Contains(t, out.String(), "Updated P1-T1-S2 → done")

	db, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, db.Phases[0].Tasks[0].Status)

	out.Reset()
	assert.Equal(t, 0, cli.Run(context.Background(), []string{"update", "P1-T1-S2", "finished"}))
	assert.Contains(t, out.String(), "Invalid status")

	out.Reset()
	assert.Equal(t, 0, cli.Run(context.Background(), []string{"task", "p9-t9"}))
	assert.Contains(t, out.String(), "Task P9-T9 not found.")

	out.Reset()
	assert.Equal(t, 0, cli.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "Commands:")

	missing := &CLI{Path: filepath.Join(t.TempDir(), "none.json"), Out: &out, Logger: logging.Nop()}
	assert.Equal(t, 1, missing.Run(context.Background(), []string{"summary"}))
}

func TestSync_Upserts(t *testing.T) {
	gdb := testutil.NewDB(t)
	db := loadFixture(t)
	ctx := context.Background()

	n, err := Sync(ctx, gdb, db)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	require.NoError(t, db.UpdateSubtask("P1-T1-S2", StatusDone))
	cli := &CLI{
		Path:   copyFixture(t),
		Out:    &bytes.Buffer{},
		Logger: logging.Nop(),
		OpenDB: func(context.Context) (*gorm.DB, error) { return gdb, nil },
	}
	_, err = Sync(ctx, gdb, db)
	require.NoError(t, err)
	assert.Equal(t, 0, cli.Run(ctx, []string{"sync"}))

	var count int64
	require.NoError(t, gdb.Model(&domain.ProjectTask{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)

	var row domain.ProjectTask
	require.NoError(t, gdb.First(&row, "id = ?", "P2-T1-S1").Error)
	assert.Equal(t, "P2", row.PhaseID)
	assert.Equal(t, "unit", row.TestType)
}

func TestRows_CarryTestSpecAsJSON(t *testing.T) {
	rows, err := loadFixture(t).Rows()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "P1-T1-S1", rows[0].ID)
	assert.Equal(t, "P1-T1", rows[0].TaskID)
	assert.JSONEq(t, `{"type":"file_exists","description":"go.mod exists","files":["go.mod"]}`, rows[0].TestSpec)
}

func TestRows_ReportsUnencodableTest(t *testing.T) {
	db := &Database{Phases: []Phase{{ID: "P1", Tasks: []Task{{ID: "P1-T1", Subtasks: []Subtask{{
		ID:   "P1-T1-S1",
		Test: Test{Type: TestAPI, Body: map[string]any{"bad": make(chan int)}},
	}}}}}}}

	_, err := db.Rows()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "P1-T1-S1")

	_, err = Sync(context.Background(), nil, db)
	require.Error(t, err)
}

func TestSave_FileWithoutOptionalSections(t *testing.T) {
	const minimal = `{
  "project": "FindMyGym",
  "phases": [
    {"id": "P1", "name": "Foundation", "status": "pending", "tasks": [
      {"id": "P1-T1", "name": "Setup", "status": "pending", "subtasks": [
        {"id": "P1-T1-S1", "name": "Module", "status": "pending", "test": {"type": "render", "description": "check"}}
      ]}
    ]}
  ]
}`
	path := filepath.Join(t.TempDir(), "mygym.json")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))

	db, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, db.UpdateSubtask("P1-T1-S1", StatusDone))
	require.NoError(t, Save(path, db))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "metadata")
	assert.NotContains(t, string(raw), "test_summary")

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, reloaded.Phases[0].Status)
}

func TestSave_RepositoryTaskFileSurvivesUpdate(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "..", "mygym.json"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "mygym.json")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	db, err := Load(path)
	require.NoError(t, err)
	next, ok := db.Next()
	require.True(t, ok)
	require.NoError(t, db.UpdateSubtask(next.Subtask.ID, StatusDone))
	require.NoError(t, Save(path, db))

	_, err = Load(path)
	require.NoError(t, err)
}
