package projects_controllers

import (
	"net/http"
	"testing"

	projects_dto "taskhive/internal/features/projects/dto"
	projects_enums "taskhive/internal/features/projects/enums"
	projects_repositories "taskhive/internal/features/projects/repositories"
	projects_testing "taskhive/internal/features/projects/testing"
	users_testing "taskhive/internal/features/users/testing"
	"taskhive/internal/storage"
	test_utils "taskhive/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateProject Tests

func Test_CreateProject_WithValidName_CreatorBecomesOwner(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	var response struct {
		Ok      bool                            `json:"ok"`
		Project projects_dto.ProjectResponseDTO `json:"project"`
	}
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/projects",
		"Bearer "+owner.Token,
		projects_dto.CreateProjectRequestDTO{Name: "Test Project"},
		http.StatusCreated,
		&response,
	)

	assert.True(t, response.Ok)
	assert.Equal(t, "Test Project", response.Project.Name)
	assert.Equal(t, owner.User.ID, response.Project.CreatedByID)

	// The creator must appear as OWNER in the project listing
	var listResponse struct {
		Projects []projects_dto.ProjectWithMembersDTO `json:"projects"`
	}
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/projects", "Bearer "+owner.Token, http.StatusOK, &listResponse)

	var found bool
	for _, project := range listResponse.Projects {
		if project.ID != response.Project.ID {
			continue
		}

		found = true
		require.Len(t, project.Members, 1)
		assert.Equal(t, owner.User.ID, project.Members[0].UserID)
		assert.Equal(t, projects_enums.ProjectRoleOwner, project.Members[0].Role)
	}
	assert.True(t, found)

	// Exactly one membership row exists for the fresh project
	membershipRepository := projects_repositories.NewMembershipRepository(storage.GetDb())
	count, err := membershipRepository.CountMembers(response.Project.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func Test_CreateProject_WithBlankName_ReturnsValidationError(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	user := users_testing.CreateTestUser()

	request := projects_dto.CreateProjectRequestDTO{Name: "   "}
	resp := test_utils.MakePostRequest(
		t, router, "/projects", "Bearer "+user.Token, request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "Project name is required")
}

func Test_CreateProject_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	request := projects_dto.CreateProjectRequestDTO{Name: "Test Project"}
	resp := test_utils.MakePostRequest(t, router, "/projects", "", request, http.StatusUnauthorized)
	assert.Contains(t, string(resp.Body), "Missing Bearer token")
}

// GetProjects Tests

func Test_GetProjects_ReturnsOnlyProjectsUserIsMemberOf(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Members Only", owner.Token, router)

	var response struct {
		Projects []projects_dto.ProjectWithMembersDTO `json:"projects"`
	}
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/projects", "Bearer "+outsider.Token, http.StatusOK, &response)

	for _, p := range response.Projects {
		assert.NotEqual(t, project.ID, p.ID)
	}
}

func Test_GetProjects_WhenUserHasNoProjects_ReturnsEmptyList(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	user := users_testing.CreateTestUser()

	var response struct {
		Ok       bool                                 `json:"ok"`
		Projects []projects_dto.ProjectWithMembersDTO `json:"projects"`
	}
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/projects", "Bearer "+user.Token, http.StatusOK, &response)

	assert.True(t, response.Ok)
	assert.NotNil(t, response.Projects)
	assert.Empty(t, response.Projects)
}

func Test_GetProjects_MemberSeesProjectAfterBeingAdded(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Shared Project", owner.Token, router)
	projects_testing.AddMemberViaAPI(
		project.ID, member.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	var response struct {
		Projects []projects_dto.ProjectWithMembersDTO `json:"projects"`
	}
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/projects", "Bearer "+member.Token, http.StatusOK, &response)

	var found bool
	for _, p := range response.Projects {
		if p.ID == project.ID {
			found = true
			assert.Len(t, p.Members, 2)
		}
	}
	assert.True(t, found)
}
