package tasks_controllers

import (
	"net/http"
	"testing"

	projects_controllers "taskhive/internal/features/projects/controllers"
	projects_enums "taskhive/internal/features/projects/enums"
	projects_testing "taskhive/internal/features/projects/testing"
	tasks_dto "taskhive/internal/features/tasks/dto"
	tasks_enums "taskhive/internal/features/tasks/enums"
	users_testing "taskhive/internal/features/users/testing"
	test_utils "taskhive/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTaskRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
		GetTaskController(),
	)
}

func createTaskViaAPI(
	t *testing.T,
	router *gin.Engine,
	projectID uuid.UUID,
	token string,
	request tasks_dto.CreateTaskRequestDTO,
) *tasks_dto.TaskResponseDTO {
	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/projects/"+projectID.String()+"/tasks",
		"Bearer "+token,
		request,
		http.StatusCreated,
		&response,
	)

	return &response.Task
}

// CreateTask Tests

func Test_CreateTask_WithValidData_ReturnsTodoTask(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	description := "Investigate flaky timeout"
	task := createTaskViaAPI(t, router, project.ID, owner.Token, tasks_dto.CreateTaskRequestDTO{
		Title:       "Fix login",
		Description: &description,
	})

	assert.Equal(t, "Fix login", task.Title)
	assert.Equal(t, tasks_enums.TaskStatusTodo, task.Status)
	assert.Equal(t, owner.User.ID, task.CreatedByID)
	assert.Nil(t, task.AssignedToID)
	require.NotNil(t, task.Description)
	assert.Equal(t, description, *task.Description)
}

func Test_CreateTask_WithBlankTitle_ReturnsValidationError(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	request := tasks_dto.CreateTaskRequestDTO{Title: "   "}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/projects/"+project.ID.String()+"/tasks",
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Title is required")
}

func Test_CreateTask_WhenRequesterIsNotMember_ReturnsProjectNotFound(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	request := tasks_dto.CreateTaskRequestDTO{Title: "Sneaky task"}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/projects/"+project.ID.String()+"/tasks",
		"Bearer "+outsider.Token,
		request,
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "Project not found")
}

func Test_CreateTask_WithNonMemberAssignee_ReturnsValidationError(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	request := tasks_dto.CreateTaskRequestDTO{
		Title:        "Fix login",
		AssignedToID: &outsider.User.ID,
	}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/projects/"+project.ID.String()+"/tasks",
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Assignee must be a project member")
}

func Test_CreateTask_WithMemberAssignee_StoresAssignee(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, member.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token, tasks_dto.CreateTaskRequestDTO{
		Title:        "Fix login",
		AssignedToID: &member.User.ID,
	})

	require.NotNil(t, task.AssignedToID)
	assert.Equal(t, member.User.ID, *task.AssignedToID)
}

// GetTasks Tests

func Test_GetTasks_WhenRequesterIsMember_ReturnsProjectTasks(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	first := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "First task"})
	second := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Second task"})

	var response struct {
		Ok    bool                        `json:"ok"`
		Tasks []tasks_dto.TaskResponseDTO `json:"tasks"`
	}
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/projects/"+project.ID.String()+"/tasks",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Tasks, 2)

	taskIDs := []uuid.UUID{response.Tasks[0].ID, response.Tasks[1].ID}
	assert.Contains(t, taskIDs, first.ID)
	assert.Contains(t, taskIDs, second.ID)
}

func Test_GetTasks_WhenRequesterIsNotMember_ReturnsProjectNotFound(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/projects/"+project.ID.String()+"/tasks",
		"Bearer "+outsider.Token,
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "Project not found")
}

// UpdateTask Tests

func Test_UpdateTask_WithPartialPatch_LeavesOtherFieldsUntouched(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	description := "Original description"
	task := createTaskViaAPI(t, router, project.ID, owner.Token, tasks_dto.CreateTaskRequestDTO{
		Title:       "Original title",
		Description: &description,
	})

	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{"status": "IN_PROGRESS"},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, tasks_enums.TaskStatusInProgress, response.Task.Status)
	assert.Equal(t, "Original title", response.Task.Title)
	require.NotNil(t, response.Task.Description)
	assert.Equal(t, description, *response.Task.Description)
}

func Test_UpdateTask_WithExplicitNullDescription_ClearsDescription(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	description := "To be removed"
	task := createTaskViaAPI(t, router, project.ID, owner.Token, tasks_dto.CreateTaskRequestDTO{
		Title:       "Task",
		Description: &description,
	})

	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{"description": nil},
		http.StatusOK,
		&response,
	)

	assert.Nil(t, response.Task.Description)
}

func Test_UpdateTask_WithEmptyPatch_ReturnsTaskUnchanged(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, task.ID, response.Task.ID)
	assert.Equal(t, task.Title, response.Task.Title)
	assert.Equal(t, task.Status, response.Task.Status)
}

func Test_UpdateTask_WithInvalidStatus_ReturnsValidationError(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{"status": "ARCHIVED"},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Invalid status")
}

func Test_UpdateTask_WithBlankTitle_ReturnsValidationError(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{"title": "   "},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Title cannot be empty")
}

func Test_UpdateTask_WhenRequesterIsNotProjectMember_ReturnsTaskNotFound(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	// Same response as a task that does not exist at all
	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+outsider.Token,
		map[string]any{"title": "Hijacked"},
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "Task not found")
}

func Test_UpdateTask_WhenTaskDoesNotExist_ReturnsTaskNotFound(t *testing.T) {
	router := createTaskRouter()
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/"+uuid.New().String(),
		"Bearer "+user.Token,
		map[string]any{"title": "Anything"},
		http.StatusNotFound,
	)
	assert.Contains(t, string(resp.Body), "Task not found")
}

func Test_UpdateTask_AssigneeChangeByCreator_Succeeds(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	creator := users_testing.CreateTestUser()
	assignee := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, creator.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, assignee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, creator.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+creator.Token,
		map[string]any{"assignedToId": assignee.User.ID.String()},
		http.StatusOK,
		&response,
	)

	require.NotNil(t, response.Task.AssignedToID)
	assert.Equal(t, assignee.User.ID, *response.Task.AssignedToID)
}

func Test_UpdateTask_AssigneeChangeByMemberWhoIsNotCreator_ReturnsForbidden(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, member.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+member.Token,
		map[string]any{"assignedToId": member.User.ID.String()},
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "Forbidden to change assignee")
}

func Test_UpdateTask_AssigneeChangeByAdminWhoIsNotCreator_Succeeds(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, admin.Email, projects_enums.ProjectRoleAdmin, owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+admin.Token,
		map[string]any{"assignedToId": admin.User.ID.String()},
		http.StatusOK,
		&response,
	)

	require.NotNil(t, response.Task.AssignedToID)
	assert.Equal(t, admin.User.ID, *response.Task.AssignedToID)
}

func Test_UpdateTask_AssigneeChangeToNonMember_ReturnsValidationError(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Task"})

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{"assignedToId": outsider.User.ID.String()},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Assignee must be a project member")
}

func Test_UpdateTask_AssigneeExplicitNull_Unassigns(t *testing.T) {
	router := createTaskRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("Test Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, member.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	task := createTaskViaAPI(t, router, project.ID, owner.Token, tasks_dto.CreateTaskRequestDTO{
		Title:        "Task",
		AssignedToID: &member.User.ID,
	})
	require.NotNil(t, task.AssignedToID)

	var response struct {
		Task tasks_dto.TaskResponseDTO `json:"task"`
	}
	test_utils.MakePatchRequestAndUnmarshal(
		t,
		router,
		"/tasks/"+task.ID.String(),
		"Bearer "+owner.Token,
		map[string]any{"assignedToId": nil},
		http.StatusOK,
		&response,
	)

	assert.Nil(t, response.Task.AssignedToID)
}

func Test_UpdateTask_WithInvalidTaskID_ReturnsBadRequest(t *testing.T) {
	router := createTaskRouter()
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePatchRequest(
		t,
		router,
		"/tasks/not-a-uuid",
		"Bearer "+user.Token,
		map[string]any{"title": "Anything"},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "Invalid task ID")
}
