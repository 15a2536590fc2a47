package projects_repositories

import (
	"time"

	projects_enums "taskhive/internal/features/projects/enums"
	projects_models "taskhive/internal/features/projects/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateProjectWithOwner creates the project and the creator's OWNER
// membership in one transaction. A project must never be observable without
// its creator's membership row.
func (r *ProjectRepository) CreateProjectWithOwner(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
		project.UpdatedAt = now
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		membership := &projects_models.ProjectMember{
			ID:        uuid.New(),
			ProjectID: project.ID,
			UserID:    project.CreatedByID,
			Role:      projects_enums.ProjectRoleOwner,
			CreatedAt: now,
		}

		return tx.Create(membership).Error
	})
}

func (r *ProjectRepository) GetProjectsForUser(userID uuid.UUID) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := r.db.
		Table("projects p").
		Select("p.*").
		Joins("JOIN project_members pm ON p.id = pm.project_id").
		Where("pm.user_id = ?", userID).
		Order("p.created_at DESC").
		Find(&projects).Error

	return projects, err
}
