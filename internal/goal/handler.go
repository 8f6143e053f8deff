package goal

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/middleware"
	"github.com/Shree2124/ngostream-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// CreateGoal godoc
// @Summary Create a fundraising goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body CreateGoalInput true "Goal payload"
// @Success 201 {object} utils.ApiResponse
// @Router /goals/create [post]
func (h *Handler) CreateGoal(c *gin.Context) {
	var input CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	g, err := h.svc.CreateGoal(c.Request.Context(), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, g, "Goal created successfully")
}

// ListGoals godoc
// @Summary List all goals
// @Tags goals
// @Produce json
// @Success 200 {object} utils.ApiResponse
// @Router /goals/all-goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	goals, err := h.svc.ListGoals(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, goals, "Goals fetched successfully")
}

func (h *Handler) GetGoal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid goal id"))
		return
	}
	detail, err := h.svc.GetGoal(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, detail, "Goal fetched successfully")
}

// EditGoal accepts multipart form data with an optional "image" part.
func (h *Handler) EditGoal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid goal id"))
		return
	}

	var input EditGoalInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	var image multipart.File
	if fileHeader, err := c.FormFile("image"); err == nil {
		image, err = fileHeader.Open()
		if err != nil {
			utils.RespondError(c, utils.BadRequest("could not read image upload"))
			return
		}
		defer image.Close()
	}

	g, err := h.svc.EditGoal(c.Request.Context(), uint(id), input, image,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, g, "Goal updated successfully")
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid goal id"))
		return
	}
	if err := h.svc.DeleteGoal(c.Request.Context(), uint(id),
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Goal deleted successfully")
}
