package projects_repositories

import (
	"errors"
	"time"

	projects_enums "taskhive/internal/features/projects/enums"
	projects_models "taskhive/internal/features/projects/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) GetMembership(
	projectID, userID uuid.UUID,
) (*projects_models.ProjectMember, error) {
	var membership projects_models.ProjectMember

	err := r.db.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetUserProjectRole(
	projectID, userID uuid.UUID,
) (*projects_enums.ProjectRole, error) {
	membership, err := r.GetMembership(projectID, userID)
	if err != nil {
		return nil, err
	}

	if membership == nil {
		return nil, nil
	}

	return &membership.Role, nil
}

// UpsertMembership inserts the membership or overwrites its role in a single
// statement. The conflict target is the (project_id, user_id) unique index,
// so concurrent upserts on the same pair cannot produce a duplicate row.
func (r *MembershipRepository) UpsertMembership(
	projectID, userID uuid.UUID,
	role projects_enums.ProjectRole,
) (*projects_models.ProjectMember, error) {
	membership := &projects_models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{"role": role}),
		}).
		Create(membership).Error

	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving row (original id and
	// createdAt when the membership already existed).
	return r.GetMembership(projectID, userID)
}

func (r *MembershipRepository) GetMembersForProjects(
	projectIDs []uuid.UUID,
) ([]*projects_models.ProjectMember, error) {
	var members []*projects_models.ProjectMember

	if len(projectIDs) == 0 {
		return members, nil
	}

	err := r.db.
		Where("project_id IN ?", projectIDs).
		Order("created_at ASC").
		Find(&members).Error

	return members, err
}

func (r *MembershipRepository) CountMembers(projectID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.
		Model(&projects_models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&count).Error

	return count, err
}
