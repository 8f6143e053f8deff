package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// GetAuditLogs returns paginated audit entries with optional filters.
func (h *Handler) GetAuditLogs(c *gin.Context) {
	filter := AuditLogFilter{
		Action: c.Query("action"),
		Status: c.Query("status"),
		Page:   parseIntQuery(c, "page", 1),
		Limit:  parseIntQuery(c, "limit", 20),
	}

	if adminStr := c.Query("admin_id"); adminStr != "" {
		if id, err := strconv.ParseUint(adminStr, 10, 32); err == nil {
			adminID := uint(id)
			filter.AdminID = &adminID
		}
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.FromDate = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.ToDate = &to
		}
	}

	logs, err := h.svc.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, logs, "audit logs fetched")
}

func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid audit log ID"))
		return
	}

	log, err := h.svc.GetAuditLogByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, utils.NotFound("audit log not found"))
		return
	}

	utils.Respond(c, http.StatusOK, log, "audit log fetched")
}

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	if str := c.Query(key); str != "" {
		if val, err := strconv.Atoi(str); err == nil && val > 0 {
			return val
		}
	}
	return defaultValue
}
