package donor

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

// ListDonors godoc
// @Summary List donors with donation totals
// @Tags donors
// @Produce json
// @Success 200 {object} utils.ApiResponse
// @Router /donors [get]
func (h *Handler) ListDonors(c *gin.Context) {
	rows, err := h.svc.ListSummaries(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, rows, "Donors fetched successfully")
}

func (h *Handler) GetDonor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid donor id"))
		return
	}
	d, err := h.svc.GetDonor(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, d, "Donor fetched successfully")
}

func (h *Handler) UpdateDonor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid donor id"))
		return
	}
	var input UpdateDonorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest("invalid request body"))
		return
	}
	d, err := h.svc.UpdateDonor(c.Request.Context(), uint(id), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, d, "Donor updated successfully")
}

func (h *Handler) DeleteDonor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid donor id"))
		return
	}
	if err := h.svc.DeleteDonor(c.Request.Context(), uint(id),
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Donor deleted successfully")
}
