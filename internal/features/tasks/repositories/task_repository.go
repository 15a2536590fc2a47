package tasks_repositories

import (
	"errors"

	tasks_models "taskhive/internal/features/tasks/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(task *tasks_models.Task) error {
	return r.db.Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	if err := r.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasksByProject(projectID uuid.UUID) ([]*tasks_models.Task, error) {
	var tasks []*tasks_models.Task

	err := r.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error

	return tasks, err
}

// UpdateTaskFields applies only the given columns, leaving everything else
// untouched (partial update semantics).
func (r *TaskRepository) UpdateTaskFields(taskID uuid.UUID, fields map[string]any) error {
	return r.db.
		Model(&tasks_models.Task{}).
		Where("id = ?", taskID).
		Updates(fields).Error
}
