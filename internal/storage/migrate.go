package storage

import (
	projects_models "taskhive/internal/features/projects/models"
	tasks_models "taskhive/internal/features/tasks/models"
	users_models "taskhive/internal/features/users/models"

	"gorm.io/gorm"
)

// Migrate keeps the schema in sync with the models. Order matters:
// memberships and tasks reference users and projects.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users_models.User{},
		&projects_models.Project{},
		&projects_models.ProjectMember{},
		&tasks_models.Task{},
	)
}
