package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/utils"
)

type Handler struct {
	devices *DeviceService
}

func NewHandler(devices *DeviceService) *Handler {
	return &Handler{devices: devices}
}

type registerTokenInput struct {
	Token string `json:"token" binding:"required"`
}

type broadcastInput struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// RegisterDevice stores an admin device token for push notifications.
func (h *Handler) RegisterDevice(c *gin.Context) {
	var input registerTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	if err := h.devices.RegisterToken(c.Request.Context(), input.Token); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Device registered successfully")
}

func (h *Handler) UnregisterDevice(c *gin.Context) {
	var input registerTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	if err := h.devices.RemoveToken(c.Request.Context(), input.Token); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Device removed successfully")
}

// Broadcast pushes an announcement to all registered admin devices.
func (h *Handler) Broadcast(c *gin.Context) {
	var input broadcastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	sent, err := h.devices.Broadcast(c.Request.Context(), input.Title, input.Body)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"sent": sent}, "Broadcast delivered")
}
