package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade   OrderFacade
	logger   *slog.Logger
	validate *validator.Validate
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger, validate: validate}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	lines := make([]model.OrderRequestLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.OrderRequestLine{ItemID: item.ItemID, Quantity: item.Quantity})
	}
	customer := model.CustomerInfo{
		Name:        req.Customer.Name,
		Email:       req.Customer.Email,
		Phone:       req.Customer.Phone,
		Address:     req.Customer.Address,
		Notes:       req.Customer.Notes,
		Fulfillment: model.Fulfillment(req.Customer.Fulfillment),
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), lines, customer)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	var filter model.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		filter.Status = &status
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.InexactFloat64(),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal.InexactFloat64(),
		})
	}
	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.Number,
		Items:       lines,
		Customer: dto.CustomerResponse{
			Name:        order.Customer.Name,
			Email:       order.Customer.Email,
			Phone:       order.Customer.Phone,
			Address:     order.Customer.Address,
			Notes:       order.Customer.Notes,
			Fulfillment: string(order.Customer.Fulfillment),
		},
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.InexactFloat64(),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
