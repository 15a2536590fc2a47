package projects_dto

import (
	"time"

	projects_enums "taskhive/internal/features/projects/enums"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name string `json:"name"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedByID uuid.UUID `json:"createdById"`
}

type ProjectMemberSummaryDTO struct {
	UserID uuid.UUID                  `json:"userId"`
	Role   projects_enums.ProjectRole `json:"role"`
}

type ProjectWithMembersDTO struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
	CreatedByID uuid.UUID                 `json:"createdById"`
	Members     []ProjectMemberSummaryDTO `json:"members"`
}

// Role is optional and defaults to MEMBER.
type AddMemberRequestDTO struct {
	Email string                     `json:"email"`
	Role  projects_enums.ProjectRole `json:"role"`
}

type MembershipResponseDTO struct {
	ProjectID uuid.UUID                  `json:"projectId"`
	UserID    uuid.UUID                  `json:"userId"`
	Role      projects_enums.ProjectRole `json:"role"`
	CreatedAt time.Time                  `json:"createdAt"`
}
