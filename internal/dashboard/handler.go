package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// QuickStats godoc
// @Summary Dashboard headline statistics
// @Tags admin
// @Produce json
// @Success 200 {object} utils.ApiResponse
// @Router /admin/quick-stats [get]
func (h *Handler) QuickStats(c *gin.Context) {
	stats, err := h.svc.QuickStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, stats, "Dashboard stats fetched successfully")
}
