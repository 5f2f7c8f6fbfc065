package tasktracker

import (
	"fmt"
	"io"
	"strings"
)

const barCells = 20

func phaseIcon(s Status) string {
	switch s {
	case StatusDone:
		return "✅"
	case StatusInProgress:
		return "🔧"
	}
	return "⏳"
}

func subtaskIcon(s Status) string {
	switch s {
	case StatusDone:
		return "✅"
	case StatusInProgress:
		return "🔧"
	}
	return "⬜"
}

// progressBar fills one cell per 5%.
func progressBar(pct int) string {
	filled := min(max(pct/5, 0), barCells)
	return strings.Repeat("█", filled) + strings.Repeat("░", barCells-filled)
}

func PrintSummary(w io.Writer, db *Database) {
	fmt.Fprintf(w, "\n%s: task database\n\n", db.Project)
	for i := range db.Phases {
		p := &db.Phases[i]
		pr := p.Progress()
		pct := pr.Percent()
		fmt.Fprintf(w, "%s %s | %-35s | %s %d%% (%d/%d) | Sprint %d | %sd\n",
			phaseIcon(p.Status), p.ID, p.Name, progressBar(pct), pct, pr.Done, pr.Total,
			p.Sprint, formatDays(p.EstimatedDays))
	}
	all := db.Progress()
	fmt.Fprintf(w, "\n📊 Overall Progress: %d/%d subtasks complete\n", all.Done, all.Total)
}

func formatDays(d float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", d), "0"), ".")
}

func PrintPhase(w io.Writer, p *Phase) {
	deps := "none"
	if len(p.DependsOn) > 0 {
		deps = strings.Join(p.DependsOn, ", ")
	}
	fmt.Fprintf(w, "\n📦 %s: %s\n", p.ID, p.Name)
	fmt.Fprintf(w, "   Sprint: %d | Priority: %s | Days: %s\n", p.Sprint, p.Priority, formatDays(p.EstimatedDays))
	fmt.Fprintf(w, "   Depends on: %s\n", deps)
	for i := range p.Tasks {
		PrintTask(w, &p.Tasks[i], p)
	}
}

func PrintTask(w io.Writer, t *Task, p *Phase) {
	fmt.Fprintf(w, "\n📋 %s: %s\n", t.ID, t.Name)
	fmt.Fprintf(w, "   Phase: %s\n", p.Name)
	fmt.Fprintf(w, "   Status: %s\n\n", t.Status)
	for _, s := range t.Subtasks {
		fmt.Fprintf(w, "   %s %s: %s\n", subtaskIcon(s.Status), s.ID, s.Name)
		fmt.Fprintf(w, "      Test: [%s] %s\n", s.Test.Type, s.Test.Description)
	}
}

func PrintNext(w io.Writer, db *Database) {
	next, ok := db.Next()
	if !ok {
		fmt.Fprintln(w, "🎉 All tasks complete!")
		return
	}
	fmt.Fprintln(w, "\n🎯 Next task to implement:")
	fmt.Fprintf(w, "   Phase: %s: %s\n", next.Phase.ID, next.Phase.Name)
	fmt.Fprintf(w, "   Task:  %s: %s\n", next.Task.ID, next.Task.Name)
	fmt.Fprintf(w, "   Sub:   %s: %s\n", next.Subtask.ID, next.Subtask.Name)
	fmt.Fprintf(w, "   Test:  [%s] %s\n", next.Subtask.Test.Type, next.Subtask.Test.Description)
}
