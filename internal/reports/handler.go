package reports

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

// Generate godoc
// @Summary Generate a PDF, Excel or Word report for a set of records
// @Tags reports
// @Accept json
// @Produce octet-stream
// @Param request body GenerateRequest true "Report request"
// @Success 200 {file} binary
// @Router /reports/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	adminID := middleware.AdminIDFromContext(c)
	ip := middleware.GetIPFromGin(c)

	if req.Upload {
		resp, err := h.svc.GenerateAndUpload(c.Request.Context(), req, adminID, ip)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, resp, "Report generated successfully")
		return
	}

	data, name, mime, err := h.svc.Generate(c.Request.Context(), req, adminID, ip)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+name)
	c.Data(http.StatusOK, mime, data)
}

// EventReport streams a single-event summary document.
func (h *Handler) EventReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid event id"))
		return
	}

	data, name, mime, err := h.svc.EventReport(c.Request.Context(), uint(id), c.Query("format"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+name)
	c.Data(http.StatusOK, mime, data)
}
