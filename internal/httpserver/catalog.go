package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

func (h *handlers) listCategories(c *gin.Context) {
	list, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if list == nil {
		list = []domain.Category{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *handlers) createCategory(c *gin.Context) {
	var req domain.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	cat, err := h.deps.CategorySvc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *handlers) updateCategory(c *gin.Context) {
	var req domain.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	cat, err := h.deps.CategorySvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) deleteCategory(c *gin.Context) {
	if err := h.deps.CategorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listProducts(c *gin.Context) {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	list, err := h.deps.ProductSvc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if list == nil {
		list = []domain.Product{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) createProduct(c *gin.Context) {
	var req domain.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	p, err := h.deps.ProductSvc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handlers) updateProduct(c *gin.Context) {
	var req domain.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	p, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFilterFromQuery(c *gin.Context) (domain.ProductFilter, error) {
	f := domain.ProductFilter{
		Genero:     domain.Genero(strings.ToUpper(strings.TrimSpace(c.Query("genero")))),
		Brand:      strings.TrimSpace(c.Query("marca")),
		CategoryID: strings.TrimSpace(c.Query("categoryId")),
		Estado:     domain.EstadoProducto(strings.ToUpper(strings.TrimSpace(c.Query("estado")))),
	}
	var err error
	if f.MinPrice, err = decimalQuery(c, "minPrecio"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = decimalQuery(c, "maxPrecio"); err != nil {
		return f, err
	}
	return f, nil
}

func decimalQuery(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be a number")
	}
	return &d, nil
}
