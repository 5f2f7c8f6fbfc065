package tasktracker

import (
	"errors"
	"fmt"
)

var (
	ErrPhaseNotFound   = errors.New("phase not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrInvalidStatus   = errors.New("invalid status")
)

// Progress counts done subtasks.
type Progress struct {
	Done  int
	Total int
}

// Percent is rounded to the nearest whole number; zero subtasks is 0%.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Done*200 + p.Total) / (p.Total * 2)
}

func (p *Phase) Progress() Progress {
	var pr Progress
	for _, t := range p.Tasks {
		for _, s := range t.Subtasks {
			pr.Total++
			if s.Status == StatusDone {
				pr.Done++
			}
		}
	}
	return pr
}

func (db *Database) Progress() Progress {
	var pr Progress
	for i := range db.Phases {
		p := db.Phases[i].Progress()
		pr.Done += p.Done
		pr.Total += p.Total
	}
	return pr
}

func (db *Database) Phase(id string) (*Phase, error) {
	for i := range db.Phases {
		if db.Phases[i].ID == id {
			return &db.Phases[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPhaseNotFound, id)
}

// Task returns the task and the phase that holds it.
func (db *Database) Task(id string) (*Task, *Phase, error) {
	for i := range db.Phases {
		p := &db.Phases[i]
		for j := range p.Tasks {
			if p.Tasks[j].ID == id {
				return &p.Tasks[j], p, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// NextItem is the first pending subtask with its parents.
type NextItem struct {
	Phase   *Phase
	Task    *Task
	Subtask *Subtask
}

// Next walks phases in file order, skipping phases whose dependencies are not all done
// (an unknown dependency counts as not done), and returns the first pending subtask.
func (db *Database) Next() (NextItem, bool) {
	for i := range db.Phases {
		p := &db.Phases[i]
		if !db.depsDone(p) {
			continue
		}
		for j := range p.Tasks {
			t := &p.Tasks[j]
			for k := range t.Subtasks {
				if t.Subtasks[k].Status == StatusPending {
					return NextItem{Phase: p, Task: t, Subtask: &t.Subtasks[k]}, true
				}
			}
		}
	}
	return NextItem{}, false
}

func (db *Database) depsDone(p *Phase) bool {
	for _, dep := range p.DependsOn {
		d, err := db.Phase(dep)
		if err != nil || d.Status != StatusDone {
			return false
		}
	}
	return true
}

// UpdateSubtask sets a subtask's status and rolls the change up to its task and phase.
func (db *Database) UpdateSubtask(id string, status Status) error {
	if _, ok := ParseStatus(string(status)); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	for i := range db.Phases {
		p := &db.Phases[i]
		for j := range p.Tasks {
			t := &p.Tasks[j]
			for k := range t.Subtasks {
				if t.Subtasks[k].ID != id {
					continue
				}
				t.Subtasks[k].Status = status
				t.Status = rollupSubtasks(t.Subtasks)
				p.Status = rollupTasks(p.Tasks)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrSubtaskNotFound, id)
}

func rollupSubtasks(subs []Subtask) Status {
	statuses := make([]Status, len(subs))
	for i, s := range subs {
		statuses[i] = s.Status
	}
	return rollup(statuses)
}

func rollupTasks(tasks []Task) Status {
	statuses := make([]Status, len(tasks))
	for i, t := range tasks {
		statuses[i] = t.Status
	}
	return rollup(statuses)
}

// rollup is done when every child is done or skipped, in progress when any child is
// in progress or done, pending otherwise.
func rollup(children []Status) Status {
	allFinished, anyStarted := true, false
	for _, s := range children {
		if !s.finished() {
			allFinished = false
		}
		if s.started() {
			anyStarted = true
		}
	}
	switch {
	case allFinished:
		return StatusDone
	case anyStarted:
		return StatusInProgress
	}
	return StatusPending
}
