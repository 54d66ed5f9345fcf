package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dashboardsvc "ventas-dashboard/internal/service/dashboard"
)

func (h *handlers) listSales(c *gin.Context) {
	orders, err := h.deps.DashboardSvc.Orders(c.Request.Context(), dashboardsvc.OrderQuery{
		Search:  c.Query("search"),
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortDir"),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) dashboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}
	sum, err := h.deps.DashboardSvc.Summary(c.Request.Context(), limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
