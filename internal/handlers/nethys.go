package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DaBenjle/aonapi/internal/apierr"
	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/repos"
	"github.com/DaBenjle/aonapi/internal/services"
)

type NethysHandler struct {
	log             *logger.Logger
	categoryService services.CategoryService
	nethysService   services.NethysDataService
	groupRepo       repos.UUIDGroupRepo
}

func NewNethysHandler(
	baseLog *logger.Logger,
	categoryService services.CategoryService,
	nethysService services.NethysDataService,
	groupRepo repos.UUIDGroupRepo,
) *NethysHandler {
	return &NethysHandler{
		log:             baseLog.With("handler", "NethysHandler"),
		categoryService: categoryService,
		nethysService:   nethysService,
		groupRepo:       groupRepo,
	}
}

// GET /categories
func (h *NethysHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.log.Error("List categories failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	out := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		out = append(out, gin.H{"id": category.ID, "name": category.Name})
	}
	RespondOK(c, out)
}

// GET /category/:id/uuids
func (h *NethysHandler) GetUUIDs(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "", err)
		return
	}
	groups, err := h.groupRepo.ListByCategoryID(c.Request.Context(), nil, categoryID)
	if err != nil {
		h.log.Error("List uuid groups failed", "category_id", categoryID, "error", err)
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	out := make([]gin.H, 0, len(groups))
	for _, group := range groups {
		out = append(out, gin.H{"uuid": group.UUID, "label": group.Label})
	}
	RespondOK(c, out)
}

// GET /fetch/:uuid
func (h *NethysHandler) FetchByUUID(c *gin.Context) {
	uuid := c.Param("uuid")
	records, err := h.nethysService.GetDataByUUID(c.Request.Context(), uuid)
	if err != nil {
		status := apierr.StatusOf(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("Fetch by uuid failed", "uuid", uuid, "error", err)
		}
		RespondError(c, status, apierr.CodeOf(err), err)
		return
	}
	RespondOK(c, records)
}

// PATCH /uuid/:uuid/label
func (h *NethysHandler) UpdateLabel(c *gin.Context) {
	uuid := c.Param("uuid")
	var body struct {
		Label string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "", err)
		return
	}
	if err := h.nethysService.UpdateLabel(c.Request.Context(), uuid, body.Label); err != nil {
		RespondError(c, apierr.StatusOf(err), apierr.CodeOf(err), err)
		return
	}
	c.Status(http.StatusNoContent)
}
