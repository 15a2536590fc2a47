package projects_models

import (
	"time"

	projects_enums "taskhive/internal/features/projects/enums"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

// ProjectMember holds the (project, user) -> role relation. The composite
// unique index keeps at most one role per user per project; role changes go
// through an atomic upsert against that index.
type ProjectMember struct {
	ID        uuid.UUID                  `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID                  `json:"projectId" gorm:"column:project_id;not null;uniqueIndex:idx_project_members_project_user"`
	UserID    uuid.UUID                  `json:"userId"    gorm:"column:user_id;not null;uniqueIndex:idx_project_members_project_user"`
	Role      projects_enums.ProjectRole `json:"role"      gorm:"column:role;not null"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"column:created_at"`

	Project Project           `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	User    users_models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
