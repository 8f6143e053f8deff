package event

import (
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

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventInput true "Event payload"
// @Success 201 {object} utils.ApiResponse
// @Router /events/create [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	e, err := h.svc.CreateEvent(c.Request.Context(), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, e, "Event created successfully")
}

// ListEvents godoc
// @Summary List all events with refreshed statuses
// @Tags events
// @Produce json
// @Success 200 {object} utils.ApiResponse
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.svc.ListEvents(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, events, "Events fetched successfully")
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid event id"))
		return
	}
	detail, err := h.svc.GetEvent(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, detail, "Event fetched successfully")
}

func (h *Handler) EditEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid event id"))
		return
	}
	var input EditEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	e, err := h.svc.EditEvent(c.Request.Context(), uint(id), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, e, "Event updated successfully")
}

// Register godoc
// @Summary Register an attendee for an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration payload"
// @Success 201 {object} utils.ApiResponse
// @Router /events/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	p, err := h.svc.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, p, "Registered successfully")
}

func (h *Handler) AddFeedback(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid event id"))
		return
	}
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	f, err := h.svc.AddFeedback(c.Request.Context(), uint(id), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, f, "Feedback recorded successfully")
}
