package impact

import (
	"mime/multipart"
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

// openImages pulls every "images" part out of the multipart form.
func openImages(c *gin.Context) ([]multipart.File, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, nil
	}
	var files []multipart.File
	cleanup := func() {
		for _, f := range files {
			f.Close()
		}
	}
	for _, header := range form.File["images"] {
		f, err := header.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		files = append(files, f)
	}
	return files, cleanup, nil
}

func (h *Handler) CreateImpact(c *gin.Context) {
	var input CreateImpactInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	images, cleanup, err := openImages(c)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("could not read image uploads"))
		return
	}
	defer cleanup()

	i, err := h.svc.CreateImpact(c.Request.Context(), input, images,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, i, "Impact story created successfully")
}

func (h *Handler) ListImpacts(c *gin.Context) {
	rows, err := h.svc.ListImpacts(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, rows, "Impact stories fetched successfully")
}

func (h *Handler) GetImpact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid impact id"))
		return
	}
	i, err := h.svc.GetImpact(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, i, "Impact story fetched successfully")
}

func (h *Handler) UpdateImpact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid impact id"))
		return
	}
	var input UpdateImpactInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondError(c, utils.BadRequest(err.Error()))
		return
	}

	images, cleanup, err := openImages(c)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("could not read image uploads"))
		return
	}
	defer cleanup()

	i, err := h.svc.UpdateImpact(c.Request.Context(), uint(id), input, images,
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, i, "Impact story updated successfully")
}

func (h *Handler) DeleteImpact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("invalid impact id"))
		return
	}
	if err := h.svc.DeleteImpact(c.Request.Context(), uint(id),
		middleware.AdminIDFromContext(c), middleware.GetIPFromGin(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Impact story deleted successfully")
}
