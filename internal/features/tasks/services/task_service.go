package tasks_services

import (
	"fmt"
	"strings"
	"time"

	"taskhive/internal/apierrors"
	projects_services "taskhive/internal/features/projects/services"
	tasks_dto "taskhive/internal/features/tasks/dto"
	tasks_enums "taskhive/internal/features/tasks/enums"
	tasks_models "taskhive/internal/features/tasks/models"
	tasks_repositories "taskhive/internal/features/tasks/repositories"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository    *tasks_repositories.TaskRepository
	membershipService *projects_services.MembershipService
}

func NewTaskService(
	taskRepository *tasks_repositories.TaskRepository,
	membershipService *projects_services.MembershipService,
) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		membershipService: membershipService,
	}
}

func (s *TaskService) CreateTask(
	projectID uuid.UUID,
	request *tasks_dto.CreateTaskRequestDTO,
	requester *users_models.User,
) (*tasks_dto.TaskResponseDTO, error) {
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return nil, apierrors.Validation("Title is required")
	}

	if _, err := s.membershipService.RequireMembership(projectID, requester.ID); err != nil {
		return nil, err
	}

	if request.AssignedToID != nil {
		if err := s.requireAssigneeMembership(projectID, *request.AssignedToID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := &tasks_models.Task{
		ID:           uuid.New(),
		Title:        title,
		Description:  normalizeDescription(request.Description),
		Status:       tasks_enums.TaskStatusTodo,
		ProjectID:    projectID,
		CreatedByID:  requester.ID,
		AssignedToID: request.AssignedToID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return taskToResponse(task), nil
}

func (s *TaskService) ListTasksForProject(
	projectID uuid.UUID,
	requester *users_models.User,
) ([]tasks_dto.TaskResponseDTO, error) {
	if _, err := s.membershipService.RequireMembership(projectID, requester.ID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.GetTasksByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	response := make([]tasks_dto.TaskResponseDTO, len(tasks))
	for i, task := range tasks {
		response[i] = *taskToResponse(task)
	}

	return response, nil
}

// UpdateTask applies a partial update. A requester outside the task's
// project gets "Task not found", the same as for a missing task. Changing
// the assignee additionally requires being the task's creator or holding
// OWNER/ADMIN.
func (s *TaskService) UpdateTask(
	taskID uuid.UUID,
	patch *tasks_dto.UpdateTaskRequestDTO,
	requester *users_models.User,
) (*tasks_dto.TaskResponseDTO, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return nil, apierrors.NotFound("Task not found")
	}

	requesterRole, err := s.membershipService.GetRole(task.ProjectID, requester.ID)
	if err != nil {
		return nil, err
	}

	if requesterRole == nil {
		return nil, apierrors.NotFound("Task not found")
	}

	fields := map[string]any{}

	if patch.Status.Set {
		if patch.Status.Value == nil || !patch.Status.Value.IsValid() {
			return nil, apierrors.Validation("Invalid status")
		}

		fields["status"] = *patch.Status.Value
	}

	if patch.AssignedToID.Set {
		if !s.membershipService.CanAssignTask(task.CreatedByID, requester.ID, *requesterRole) {
			return nil, apierrors.Forbidden("Forbidden to change assignee")
		}

		if patch.AssignedToID.Value != nil {
			if err := s.requireAssigneeMembership(task.ProjectID, *patch.AssignedToID.Value); err != nil {
				return nil, err
			}
		}

		fields["assigned_to_id"] = patch.AssignedToID.Value
	}

	if patch.Title.Set {
		title := ""
		if patch.Title.Value != nil {
			title = strings.TrimSpace(*patch.Title.Value)
		}

		if title == "" {
			return nil, apierrors.Validation("Title cannot be empty")
		}

		fields["title"] = title
	}

	if patch.Description.Set {
		fields["description"] = normalizeDescription(patch.Description.Value)
	}

	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()

		if err := s.taskRepository.UpdateTaskFields(task.ID, fields); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	updated, err := s.taskRepository.GetTaskByID(task.ID)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}

	return taskToResponse(updated), nil
}

func (s *TaskService) requireAssigneeMembership(projectID, assigneeID uuid.UUID) error {
	role, err := s.membershipService.GetRole(projectID, assigneeID)
	if err != nil {
		return err
	}

	if role == nil {
		return apierrors.Validation("Assignee must be a project member")
	}

	return nil
}

// Empty descriptions are stored as null, not empty string.
func normalizeDescription(description *string) *string {
	if description == nil || *description == "" {
		return nil
	}

	return description
}

func taskToResponse(task *tasks_models.Task) *tasks_dto.TaskResponseDTO {
	return &tasks_dto.TaskResponseDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		ProjectID:    task.ProjectID,
		CreatedByID:  task.CreatedByID,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}
