package tasks_controllers

import (
	"sync"

	tasks_services "taskhive/internal/features/tasks/services"
)

var (
	once           sync.Once
	taskController *TaskController
)

func GetTaskController() *TaskController {
	once.Do(func() {
		taskController = &TaskController{
			taskService: tasks_services.GetTaskService(),
		}
	})

	return taskController
}
