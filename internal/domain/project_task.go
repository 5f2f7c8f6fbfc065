package domain

import "time"

// ProjectTask mirrors one subtask of the development task tracker file.
type ProjectTask struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(32)"`
	PhaseID   string    `json:"phaseId" gorm:"type:varchar(16);index"`
	TaskID    string    `json:"taskId" gorm:"type:varchar(24);index"`
	Name      string    `json:"name"`
	Status    string    `json:"status" gorm:"type:varchar(20)"`
	TestType  string    `json:"testType" gorm:"type:varchar(20)"`
	TestSpec  string    `json:"testSpec" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ProjectTask) TableName() string {
	return "project_tasks"
}
