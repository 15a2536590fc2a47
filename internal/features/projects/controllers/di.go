package projects_controllers

import (
	"sync"

	projects_services "taskhive/internal/features/projects/services"
)

var (
	once                 sync.Once
	projectController    *ProjectController
	membershipController *MembershipController
)

func setupDependencies() {
	projectController = &ProjectController{
		projectService: projects_services.GetProjectService(),
	}
	membershipController = &MembershipController{
		projectService: projects_services.GetProjectService(),
	}
}

func GetProjectController() *ProjectController {
	once.Do(setupDependencies)
	return projectController
}

func GetMembershipController() *MembershipController {
	once.Do(setupDependencies)
	return membershipController
}
