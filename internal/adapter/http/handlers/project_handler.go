package handlers

import (
	"errors"
	"net/http"

	"budget_tracker/internal/adapter/http/dto/request"
	"budget_tracker/internal/adapter/http/dto/response"
	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/usecase"
	"budget_tracker/pkg"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   response.ProjectResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// CreateProject godoc
// @Summary      Create a project
// @Description  The manager is the caller when they are a project manager, otherwise the first project manager on record.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateProjectRequest  true  "Project"
// @Success      201   {object}  response.ProjectCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	if !authorize(c, usecase.ActionCreateProject) {
		return
	}
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), middleware.IdentityFrom(c), payload.ResolveName(), payload.StartDate)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}

	c.JSON(http.StatusCreated, response.ProjectCreatedResponse{
		Message:         "项目创建成功",
		ProjectResponse: response.FromProject(project),
	})
}

func mapProjectError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrProjectNameRequired):
		return pkg.NewDomainErrorSimple("PROJECT_NAME_REQUIRED", "项目名称不能为空", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNameTooLong):
		return pkg.NewDomainErrorSimple("PROJECT_NAME_TOO_LONG", "项目名称过长", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStartDate):
		return pkg.NewDomainErrorSimple("INVALID_START_DATE", "日期格式错误，请使用YYYY-MM-DD格式", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNameTaken):
		// Duplicates answer 400 rather than 409; existing clients depend on it.
		return pkg.NewDomainErrorSimple("PROJECT_NAME_TAKEN", "项目名称已存在", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
