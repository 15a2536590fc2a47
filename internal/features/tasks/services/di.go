package tasks_services

import (
	"sync"

	projects_services "taskhive/internal/features/projects/services"
	tasks_repositories "taskhive/internal/features/tasks/repositories"
	"taskhive/internal/storage"
)

var (
	once        sync.Once
	taskService *TaskService
)

func GetTaskService() *TaskService {
	once.Do(func() {
		taskService = NewTaskService(
			tasks_repositories.NewTaskRepository(storage.GetDb()),
			projects_services.GetMembershipService(),
		)
	})

	return taskService
}
