package donation

import (
	"net/http"

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

// Checkout godoc
// @Summary Start a donation (monetary checkout session or in-kind record)
// @Tags donation
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Donation payload"
// @Success 201 {object} utils.ApiResponse
// @Router /donation/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	req.IPAddress = middleware.GetIPFromGin(c)

	resp, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, resp, "Donation initiated successfully")
}

// PaymentSuccess godoc
// @Summary Confirm a completed checkout session
// @Tags donation
// @Accept json
// @Produce json
// @Param request body PaymentSuccessRequest true "Session reference"
// @Success 200 {object} utils.ApiResponse
// @Router /donation/payment-success [post]
func (h *Handler) PaymentSuccess(c *gin.Context) {
	var req PaymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	req.IPAddress = middleware.GetIPFromGin(c)

	d, err := h.svc.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, d, "Donation recorded successfully")
}

// GetDonationInfo godoc
// @Summary List donations by type (Monetary, In-Kind or all)
// @Tags donation
// @Produce json
// @Param type path string true "Donation type filter"
// @Success 200 {object} utils.ApiResponse
// @Router /donation/get-donation-info/{type} [get]
func (h *Handler) GetDonationInfo(c *gin.Context) {
	rows, err := h.svc.GetDonations(c.Request.Context(), c.Param("type"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, rows, "Donations fetched successfully")
}

// UpdateDonationStatus godoc
// @Summary Update the fulfilment status of an in-kind donation
// @Tags donation
// @Accept json
// @Produce json
// @Param request body UpdateStatusRequest true "Status update"
// @Success 200 {object} utils.ApiResponse
// @Router /donation/update-donation-status [put]
func (h *Handler) UpdateDonationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), req,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Donation status updated successfully")
}
