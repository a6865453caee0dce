package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "github.com/studenthub/profile-api/internal/application/usecase/education"
	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type EducationHandler struct {
	resolveUC *identityUC.ResolveUserUseCase
	addUC     *educationUC.AddEducationUseCase
	updateUC  *educationUC.UpdateEducationUseCase
	deleteUC  *educationUC.DeleteEducationUseCase
	logger    logger.Logger
}

func NewEducationHandler(
	resolveUC *identityUC.ResolveUserUseCase,
	addUC *educationUC.AddEducationUseCase,
	updateUC *educationUC.UpdateEducationUseCase,
	deleteUC *educationUC.DeleteEducationUseCase,
	log logger.Logger,
) *EducationHandler {
	return &EducationHandler{
		resolveUC: resolveUC,
		addUC:     addUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		logger:    log,
	}
}

func (h *EducationHandler) AddEducation(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	var req EducationFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid education form data", err))
		return
	}

	input := educationUC.AddEducationInput{
		UserID:      caller.ID,
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	output, err := h.addUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToEducationDTO(output.Education))
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	educationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	var req EducationFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid education form data", err))
		return
	}

	input := educationUC.UpdateEducationInput{
		UserID:      caller.ID,
		EducationID: educationID,
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	output, err := h.updateUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToEducationDTO(output.Education))
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	educationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	input := educationUC.DeleteEducationInput{UserID: caller.ID, EducationID: educationID}
	if err := h.deleteUC.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
