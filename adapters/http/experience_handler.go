package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/studenthub/profile-api/internal/application/usecase/experience"
	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type ExperienceHandler struct {
	resolveUC *identityUC.ResolveUserUseCase
	addUC     *experienceUC.AddExperienceUseCase
	logger    logger.Logger
}

func NewExperienceHandler(resolveUC *identityUC.ResolveUserUseCase, addUC *experienceUC.AddExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		resolveUC: resolveUC,
		addUC:     addUC,
		logger:    log,
	}
}

func (h *ExperienceHandler) AddExperience(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	var req ExperienceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience form data", err))
		return
	}

	input := experienceUC.AddExperienceInput{
		UserID:      caller.ID,
		Company:     req.Company,
		Position:    req.Position,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	output, err := h.addUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToExperienceDTO(output.Experience))
}
