package tasktracker

import (
	"context"
	"encoding/json"
	"fmt"

	"findmygym/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rows flattens every subtask into a ProjectTask row. TestSpec holds the test as JSON.
func (db *Database) Rows() ([]domain.ProjectTask, error) {
	var rows []domain.ProjectTask
	for _, p := range db.Phases {
		for _, t := range p.Tasks {
			for _, s := range t.Subtasks {
				spec, err := json.Marshal(s.Test)
				if err != nil {
					return nil, fmt.Errorf("encode test for %s: %w", s.ID, err)
				}
				status := s.Status
				if status == "" {
					status = StatusPending
				}
				rows = append(rows, domain.ProjectTask{
					ID:       s.ID,
					PhaseID:  p.ID,
					TaskID:   t.ID,
					Name:     s.Name,
					Status:   string(status),
					TestType: string(s.Test.Type),
					TestSpec: string(spec),
				})
			}
		}
	}
	return rows, nil
}

// Sync upserts every subtask into project_tasks and returns the row count.
func Sync(ctx context.Context, gdb *gorm.DB, db *Database) (int, error) {
	rows, err := db.Rows()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	err = gdb.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phase_id", "task_id", "name", "status", "test_type", "test_spec", "updated_at"}),
	}).CreateInBatches(rows, 100).Error
	if err != nil {
		return 0, fmt.Errorf("sync project tasks: %w", err)
	}
	return len(rows), nil
}
