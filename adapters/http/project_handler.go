package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	projectUC "github.com/studenthub/profile-api/internal/application/usecase/project"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type ProjectHandler struct {
	resolveUC *identityUC.ResolveUserUseCase
	addUC     *projectUC.AddProjectUseCase
	listUC    *projectUC.ListProjectsUseCase
	logger    logger.Logger
}

func NewProjectHandler(resolveUC *identityUC.ResolveUserUseCase, addUC *projectUC.AddProjectUseCase, listUC *projectUC.ListProjectsUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		resolveUC: resolveUC,
		addUC:     addUC,
		listUC:    listUC,
		logger:    log,
	}
}

func (h *ProjectHandler) AddProject(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	var req ProjectFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid project form data", err))
		return
	}

	var githubLink, liveLink *string
	if req.GithubLink != "" {
		githubLink = &req.GithubLink
	}
	if req.LiveLink != "" {
		liveLink = &req.LiveLink
	}

	input := projectUC.AddProjectInput{
		UserID:      caller.ID,
		Name:        req.Name,
		Description: req.Description,
		GithubLink:  githubLink,
		LiveLink:    liveLink,
		ImageURLs:   req.ImageURLs,
	}
	output, err := h.addUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	output, err := h.listUC.Execute(c.Request.Context(), projectUC.ListProjectsInput{UserID: caller.ID})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}
