package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	profileUC "github.com/studenthub/profile-api/internal/application/usecase/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type ProfileHandler struct {
	resolveUC *identityUC.ResolveUserUseCase
	createUC  *profileUC.CreateProfileUseCase
	getUC     *profileUC.GetProfileUseCase
	updateUC  *profileUC.UpdateProfileUseCase
	deleteUC  *profileUC.DeleteProfileUseCase
	logger    logger.Logger
}

func NewProfileHandler(
	resolveUC *identityUC.ResolveUserUseCase,
	createUC *profileUC.CreateProfileUseCase,
	getUC *profileUC.GetProfileUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	deleteUC *profileUC.DeleteProfileUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		resolveUC: resolveUC,
		createUC:  createUC,
		getUC:     getUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		logger:    log,
	}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	var req ProfileFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile form data", err))
		return
	}

	input := profileUC.CreateProfileInput{
		UserID:       caller.ID,
		Email:        caller.Email,
		Name:         req.Name,
		Profession:   req.Profession,
		Batch:        req.Batch,
		About:        req.About,
		ProfileImage: req.ProfileImage,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		Skills:       req.Skills,
	}
	output, err := h.createUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	output, err := h.getUC.Execute(c.Request.Context(), profileUC.GetProfileInput{UserID: caller.ID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileViewDTO(output.View))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	var req ProfileFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile form data", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		UserID:       caller.ID,
		Name:         req.Name,
		Profession:   req.Profession,
		Batch:        req.Batch,
		About:        req.About,
		ProfileImage: req.ProfileImage,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		Skills:       req.Skills,
	}
	output, err := h.updateUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	caller, ok := resolveCaller(c, h.resolveUC)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), profileUC.DeleteProfileInput{UserID: caller.ID}); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
