package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

// ItemHandler manages menu endpoints.
type ItemHandler struct {
	facade   CatalogFacade
	logger   *slog.Logger
	validate *validator.Validate
}

// NewItemHandler constructs ItemHandler.
func NewItemHandler(facade CatalogFacade, logger *slog.Logger, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{facade: facade, logger: logger, validate: validate}
}

// List handles GET /api/items.
func (h *ItemHandler) List(c *gin.Context) {
	available, err := parseBoolQuery(c, "available")
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.facade.Items(c.Request.Context(), model.ItemFilter{Available: available})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.facade.Item(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(*item))
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.ItemRequest
	if err := BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	item, err := h.facade.CreateItem(c.Request.Context(), fromItemRequest(req))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(*item))
}

// Update handles PUT /api/items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	var req dto.ItemRequest
	if err := BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	item, err := h.facade.UpdateItem(c.Request.Context(), c.Param("id"), fromItemRequest(req))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(*item))
}

// Delete handles DELETE /api/items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func fromItemRequest(req dto.ItemRequest) model.MenuItem {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Available:   available,
	}
}

func toItemResponse(item model.MenuItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.InexactFloat64(),
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
