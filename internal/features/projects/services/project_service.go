package projects_services

import (
	"fmt"
	"strings"
	"time"

	"taskhive/internal/apierrors"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_enums "taskhive/internal/features/projects/enums"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_models "taskhive/internal/features/users/models"
	users_services "taskhive/internal/features/users/services"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	membershipService    *MembershipService
	userService          *users_services.UserService
}

func NewProjectService(
	projectRepository *projects_repositories.ProjectRepository,
	membershipRepository *projects_repositories.MembershipRepository,
	membershipService *MembershipService,
	userService *users_services.UserService,
) *ProjectService {
	return &ProjectService{
		projectRepository:    projectRepository,
		membershipRepository: membershipRepository,
		membershipService:    membershipService,
		userService:          userService,
	}
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, apierrors.Validation("Project name is required")
	}

	now := time.Now().UTC()
	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        name,
		CreatedByID: creator.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepository.CreateProjectWithOwner(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		CreatedAt:   project.CreatedAt,
		CreatedByID: project.CreatedByID,
	}, nil
}

// ListProjectsForUser returns the user's projects newest first, each
// annotated with its member list.
func (s *ProjectService) ListProjectsForUser(
	userID uuid.UUID,
) ([]projects_dto.ProjectWithMembersDTO, error) {
	projects, err := s.projectRepository.GetProjectsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	projectIDs := make([]uuid.UUID, len(projects))
	for i, project := range projects {
		projectIDs[i] = project.ID
	}

	members, err := s.membershipRepository.GetMembersForProjects(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	membersByProject := make(map[uuid.UUID][]projects_dto.ProjectMemberSummaryDTO, len(projects))
	for _, member := range members {
		membersByProject[member.ProjectID] = append(
			membersByProject[member.ProjectID],
			projects_dto.ProjectMemberSummaryDTO{
				UserID: member.UserID,
				Role:   member.Role,
			},
		)
	}

	response := make([]projects_dto.ProjectWithMembersDTO, len(projects))
	for i, project := range projects {
		memberList := membersByProject[project.ID]
		if memberList == nil {
			memberList = []projects_dto.ProjectMemberSummaryDTO{}
		}

		response[i] = projects_dto.ProjectWithMembersDTO{
			ID:          project.ID,
			Name:        project.Name,
			CreatedAt:   project.CreatedAt,
			UpdatedAt:   project.UpdatedAt,
			CreatedByID: project.CreatedByID,
			Members:     memberList,
		}
	}

	return response, nil
}

// AddOrUpdateMember grants or changes a role in the project. The requester
// must be OWNER or ADMIN; a requester with no membership at all gets the
// hidden-existence "Project not found" instead of a Forbidden.
func (s *ProjectService) AddOrUpdateMember(
	projectID uuid.UUID,
	request *projects_dto.AddMemberRequestDTO,
	requester *users_models.User,
) (*projects_dto.MembershipResponseDTO, error) {
	email := users_services.NormalizeEmail(request.Email)
	if email == "" {
		return nil, apierrors.Validation("Member email is required")
	}

	role := request.Role
	if role == "" {
		role = projects_enums.ProjectRoleMember
	}

	if !role.IsInvitable() {
		return nil, apierrors.Validation("Role must be MEMBER or ADMIN")
	}

	requesterRole, err := s.membershipService.GetRole(projectID, requester.ID)
	if err != nil {
		return nil, err
	}

	if requesterRole == nil {
		return nil, apierrors.NotFound("Project not found")
	}

	if !requesterRole.CanManageMembers() {
		return nil, apierrors.Forbidden("Forbidden")
	}

	targetUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if targetUser == nil {
		return nil, apierrors.NotFound("User not found")
	}

	membership, err := s.membershipService.UpsertMembership(projectID, targetUser.ID, role)
	if err != nil {
		return nil, err
	}

	return &projects_dto.MembershipResponseDTO{
		ProjectID: membership.ProjectID,
		UserID:    membership.UserID,
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt,
	}, nil
}
