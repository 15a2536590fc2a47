package tasks_dto

import (
	"encoding/json"
	"time"

	tasks_enums "taskhive/internal/features/tasks/enums"

	"github.com/google/uuid"
)

// Optional distinguishes a field that was absent from the request body from
// one explicitly sent as null. Set is true whenever the key appeared; Value
// stays nil for an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

type CreateTaskRequestDTO struct {
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	AssignedToID *uuid.UUID `json:"assignedToId"`
}

// UpdateTaskRequestDTO is a partial update: only fields present in the body
// are applied. assignedToId accepts an explicit null to unassign.
type UpdateTaskRequestDTO struct {
	Title        Optional[string]                 `json:"title"`
	Description  Optional[string]                 `json:"description"`
	Status       Optional[tasks_enums.TaskStatus] `json:"status"`
	AssignedToID Optional[uuid.UUID]              `json:"assignedToId"`
}

type TaskResponseDTO struct {
	ID           uuid.UUID              `json:"id"`
	Title        string                 `json:"title"`
	Description  *string                `json:"description"`
	Status       tasks_enums.TaskStatus `json:"status"`
	ProjectID    uuid.UUID              `json:"projectId"`
	CreatedByID  uuid.UUID              `json:"createdById"`
	AssignedToID *uuid.UUID             `json:"assignedToId"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}
