package tasks_models

import (
	"time"

	projects_models "taskhive/internal/features/projects/models"
	tasks_enums "taskhive/internal/features/tasks/enums"

	"github.com/google/uuid"
)

type Task struct {
	ID           uuid.UUID              `json:"id"`
	Title        string                 `json:"title"`
	Description  *string                `json:"description"`
	Status       tasks_enums.TaskStatus `json:"status"`
	ProjectID    uuid.UUID              `json:"projectId"    gorm:"column:project_id;not null"`
	CreatedByID  uuid.UUID              `json:"createdById"  gorm:"column:created_by_id;not null"`
	AssignedToID *uuid.UUID             `json:"assignedToId" gorm:"column:assigned_to_id"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`

	Project projects_models.Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}
