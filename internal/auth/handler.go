package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Login authenticates an admin and sets the accessToken cookie.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	tokens, admin, err := h.svc.Login(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// Cookie for browser clients; bearer header remains supported.
	c.SetCookie("accessToken", tokens.AccessToken, 24*3600, "/", "", false, true)

	utils.Respond(c, http.StatusOK, gin.H{
		"admin":  admin,
		"tokens": tokens,
	}, "logged in successfully")
}

// Logout revokes the current token and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	token := extractToken(c)
	if token != "" {
		if err := h.svc.Logout(token); err != nil {
			utils.RespondError(c, err)
			return
		}
	}
	c.SetCookie("accessToken", "", -1, "/", "", false, true)
	utils.Respond(c, http.StatusOK, nil, "logged out successfully")
}

// CurrentUser returns the authenticated admin.
func (h *Handler) CurrentUser(c *gin.Context) {
	adminVal, exists := c.Get("admin")
	if !exists {
		utils.RespondError(c, utils.NewError(http.StatusUnauthorized, "unauthenticated"))
		return
	}
	utils.Respond(c, http.StatusOK, adminVal, "current user fetched")
}

// ===========================
// manage-admin (superadmin)

func (h *Handler) CreateAdmin(c *gin.Context) {
	var input CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	admin, err := h.svc.CreateAdmin(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, admin, "admin created")
}

func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.svc.ListAdmins()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, admins, "admins fetched")
}

func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid admin ID"))
		return
	}

	var input UpdateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	admin, err := h.svc.UpdateAdmin(uint(id), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, admin, "admin updated")
}

func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid admin ID"))
		return
	}
	if err := h.svc.DeleteAdmin(uint(id)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "admin deleted")
}

// extractToken reads the JWT from the accessToken cookie or bearer header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
