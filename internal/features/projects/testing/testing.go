package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	projects_dto "taskhive/internal/features/projects/dto"
	projects_enums "taskhive/internal/features/projects/enums"
	users_middleware "taskhive/internal/features/users/middleware"
	users_services "taskhive/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTestRouter registers the given controllers behind the real auth
// middleware, mirroring the protected group in cmd/main.go.
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	return router
}

func CreateTestProjectViaAPI(name string, token string, router *gin.Engine) *projects_dto.ProjectResponseDTO {
	request := projects_dto.CreateProjectRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/projects", "Bearer "+token, request)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response struct {
		Project projects_dto.ProjectResponseDTO `json:"project"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response.Project
}

func AddMemberViaAPI(
	projectID uuid.UUID,
	email string,
	role projects_enums.ProjectRole,
	token string,
	router *gin.Engine,
) *projects_dto.MembershipResponseDTO {
	request := projects_dto.AddMemberRequestDTO{
		Email: email,
		Role:  role,
	}

	w := MakeAPIRequest(
		router,
		"POST",
		"/projects/"+projectID.String()+"/members",
		"Bearer "+token,
		request,
	)

	if w.Code != http.StatusCreated {
		panic("Failed to add member to project via API: " + w.Body.String())
	}

	var response struct {
		Membership projects_dto.MembershipResponseDTO `json:"membership"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response.Membership
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
