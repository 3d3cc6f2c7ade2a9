package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

// AnalyticsHandler serves the sales summary.
type AnalyticsHandler struct {
	facade AnalyticsFacade
	logger *slog.Logger
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade, logger: logger}
}

// Summary handles GET /api/analytics.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.facade.Analytics(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toAnalyticsResponse(*summary))
}

func toAnalyticsResponse(summary model.SalesSummary) dto.AnalyticsResponse {
	byDay := make([]dto.DailyRevenueResponse, 0, len(summary.ByDay))
	for _, d := range summary.ByDay {
		byDay = append(byDay, dto.DailyRevenueResponse{Date: d.Date, Orders: d.Orders, Revenue: d.Revenue.InexactFloat64()})
	}
	top := make([]dto.TopItemResponse, 0, len(summary.TopItems))
	for _, t := range summary.TopItems {
		top = append(top, dto.TopItemResponse{Name: t.Name, Quantity: t.Quantity, Revenue: t.Revenue.InexactFloat64()})
	}
	return dto.AnalyticsResponse{
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue.InexactFloat64(),
		ByDay:        byDay,
		TopItems:     top,
	}
}
