package beneficiary

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

func (h *Handler) CreateBeneficiary(c *gin.Context) {
	var input CreateBeneficiaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	b, err := h.svc.CreateBeneficiary(c.Request.Context(), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, b, "Beneficiary created successfully")
}

func (h *Handler) ListBeneficiaries(c *gin.Context) {
	rows, err := h.svc.ListBeneficiaries(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, rows, "Beneficiaries fetched successfully")
}

func (h *Handler) GetBeneficiary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid beneficiary id"))
		return
	}
	detail, err := h.svc.GetBeneficiary(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, detail, "Beneficiary fetched successfully")
}

func (h *Handler) UpdateBeneficiary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid beneficiary id"))
		return
	}
	var input UpdateBeneficiaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	b, err := h.svc.UpdateBeneficiary(c.Request.Context(), uint(id), input,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, b, "Beneficiary updated successfully")
}

func (h *Handler) DeleteBeneficiary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid beneficiary id"))
		return
	}
	if err := h.svc.DeleteBeneficiary(c.Request.Context(), uint(id),
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Beneficiary deleted successfully")
}
