package scheme

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

// CreateScheme godoc
// @Summary Create a benefits scheme
// @Tags schemes
// @Accept json
// @Produce json
// @Param request body CreateSchemeInput true "Scheme payload"
// @Success 201 {object} utils.ApiResponse
// @Router /schemes [post]
func (h *Handler) CreateScheme(c *gin.Context) {
	var input CreateSchemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	sch, err := h.svc.CreateScheme(c.Request.Context(), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, sch, "Scheme created successfully")
}

func (h *Handler) ListSchemes(c *gin.Context) {
	rows, err := h.svc.ListSchemes(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, rows, "Schemes fetched successfully")
}

func (h *Handler) GetScheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid scheme id"))
		return
	}
	detail, err := h.svc.GetScheme(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, detail, "Scheme fetched successfully")
}

func (h *Handler) UpdateScheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid scheme id"))
		return
	}
	var input UpdateSchemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	sch, err := h.svc.UpdateScheme(c.Request.Context(), uint(id), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, sch, "Scheme updated successfully")
}

func (h *Handler) DeleteScheme(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid scheme id"))
		return
	}
	if err := h.svc.DeleteScheme(c.Request.Context(), uint(id),
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Scheme deleted successfully")
}

// Enroll godoc
// @Summary Enroll a beneficiary into a scheme
// @Tags schemes
// @Accept json
// @Produce json
// @Param request body EnrollInput true "Enrollment payload"
// @Success 201 {object} utils.ApiResponse
// @Router /schemes/enroll [post]
func (h *Handler) Enroll(c *gin.Context) {
	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	e, err := h.svc.Enroll(c.Request.Context(), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, e, "Beneficiary enrolled successfully")
}

func (h *Handler) MarkBenefited(c *gin.Context) {
	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	if err := h.svc.MarkBenefited(c.Request.Context(), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Benefit recorded successfully")
}
