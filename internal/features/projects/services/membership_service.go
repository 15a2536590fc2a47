package projects_services

import (
	"fmt"

	"taskhive/internal/apierrors"
	projects_enums "taskhive/internal/features/projects/enums"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"

	"github.com/google/uuid"
)

// MembershipService is the single source of truth for authorization
// decisions: every gated project and task operation resolves the caller's
// role here first. Roles are re-read from storage on each decision, never
// cached, so concurrent role changes take effect immediately.
type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
}

func NewMembershipService(
	membershipRepository *projects_repositories.MembershipRepository,
) *MembershipService {
	return &MembershipService{membershipRepository: membershipRepository}
}

func (s *MembershipService) GetRole(
	projectID, userID uuid.UUID,
) (*projects_enums.ProjectRole, error) {
	role, err := s.membershipRepository.GetUserProjectRole(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project role: %w", err)
	}

	return role, nil
}

// RequireMembership gates read and list operations. A caller without a
// membership gets the same "Project not found" a missing project would
// produce, so non-members cannot probe for project existence.
func (s *MembershipService) RequireMembership(
	projectID, userID uuid.UUID,
) (*projects_models.ProjectMember, error) {
	membership, err := s.membershipRepository.GetMembership(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return nil, apierrors.NotFound("Project not found")
	}

	return membership, nil
}

// UpsertMembership is idempotent: repeating the same (project, user, role)
// leaves exactly one membership row with that role. Caller authorization is
// the Project Service's responsibility.
func (s *MembershipService) UpsertMembership(
	projectID, targetUserID uuid.UUID,
	role projects_enums.ProjectRole,
) (*projects_models.ProjectMember, error) {
	membership, err := s.membershipRepository.UpsertMembership(projectID, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert membership: %w", err)
	}

	return membership, nil
}

// CanAssignTask decides whether the requester may change a task's assignee:
// the task's creator always can, OWNER and ADMIN can regardless of
// creatorship. Pure decision, no I/O.
func (s *MembershipService) CanAssignTask(
	taskCreatorID, requesterID uuid.UUID,
	requesterRole projects_enums.ProjectRole,
) bool {
	if taskCreatorID == requesterID {
		return true
	}

	return requesterRole == projects_enums.ProjectRoleOwner ||
		requesterRole == projects_enums.ProjectRoleAdmin
}
