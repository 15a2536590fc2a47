package projects_services

import (
	"sync"

	projects_repositories "taskhive/internal/features/projects/repositories"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/storage"
)

var (
	once              sync.Once
	membershipService *MembershipService
	projectService    *ProjectService
)

func setupDependencies() {
	projectRepository := projects_repositories.NewProjectRepository(storage.GetDb())
	membershipRepository := projects_repositories.NewMembershipRepository(storage.GetDb())

	membershipService = NewMembershipService(membershipRepository)
	projectService = NewProjectService(
		projectRepository,
		membershipRepository,
		membershipService,
		users_services.GetUserService(),
	)
}

func GetMembershipService() *MembershipService {
	once.Do(setupDependencies)
	return membershipService
}

func GetProjectService() *ProjectService {
	once.Do(setupDependencies)
	return projectService
}
