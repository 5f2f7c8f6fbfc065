// Package tasktracker loads, queries, updates and verifies the project task file
// (phases, tasks, subtasks with an attached test).
package tasktracker

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusSkipped    Status = "skipped"
)

// ParseStatus accepts the four subtask statuses.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusInProgress, StatusDone, StatusSkipped:
		return st, true
	}
	return "", false
}

func (s Status) finished() bool {
	return s == StatusDone || s == StatusSkipped
}

func (s Status) started() bool {
	return s == StatusInProgress || s == StatusDone
}

type TestType string

const (
	TestCommand     TestType = "command"
	TestFileExists  TestType = "file_exists"
	TestDBQuery     TestType = "db_query"
	TestRender      TestType = "render"
	TestUnit        TestType = "unit"
	TestAPI         TestType = "api"
	TestInteraction TestType = "interaction"
)

// Test describes how a subtask is verified. Which fields matter depends on Type.
type Test struct {
	Type            TestType       `json:"type"`
	Description     string         `json:"description"`
	Command         string         `json:"command,omitempty"`
	Expected        string         `json:"expected,omitempty"`
	Files           []string       `json:"files,omitempty"`
	Query           string         `json:"query,omitempty"`
	ExpectedColumns []string       `json:"expected_columns,omitempty"`
	ExpectedFields  []string       `json:"expected_fields,omitempty"`
	Endpoint        string         `json:"endpoint,omitempty"`
	ExpectedStatus  int            `json:"expected_status,omitempty"`
	Body            map[string]any `json:"body,omitempty"`
	Route           string         `json:"route,omitempty"`
	Elements        []string       `json:"elements,omitempty"`
	Action          string         `json:"action,omitempty"`
	File            string         `json:"file,omitempty"`
	Cases           []string       `json:"cases,omitempty"`
}

type Subtask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	Test   Test   `json:"test"`
}

type Task struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   Status    `json:"status"`
	Subtasks []Subtask `json:"subtasks"`
}

type Phase struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Sprint        int      `json:"sprint"`
	Priority      string   `json:"priority"`
	Status        Status   `json:"status"`
	EstimatedDays float64  `json:"estimated_days"`
	DependsOn     []string `json:"depends_on,omitempty"`
	Tasks         []Task   `json:"tasks"`
}

type TestSummary struct {
	TotalTests int            `json:"total_tests"`
	Categories map[string]int `json:"categories,omitempty"`
}

// Database is the whole task file.
type Database struct {
	Project     string         `json:"project"`
	Version     string         `json:"version"`
	Database    string         `json:"database"`
	Phases      []Phase        `json:"phases"`
	TestSummary *TestSummary   `json:"test_summary,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
