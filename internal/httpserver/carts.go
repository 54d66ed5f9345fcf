package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type selectCustomerRequest struct {
	UserID string `json:"userId"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *handlers) createCart(c *gin.Context) {
	d, err := h.deps.CartSvc.Create(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *handlers) getCart(c *gin.Context) {
	d, err := h.deps.CartSvc.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *handlers) discardCart(c *gin.Context) {
	if err := h.deps.CartSvc.Discard(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) selectCustomer(c *gin.Context) {
	var req selectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	d, err := h.deps.CartSvc.SelectCustomer(c.Request.Context(), currentUser(c).ID, c.Param("id"), req.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// addCartItem defaults quantity to 1 when omitted.
func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	d, err := h.deps.CartSvc.AddItem(c.Request.Context(), currentUser(c).ID, c.Param("id"), req.ProductID, qty)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	d, err := h.deps.CartSvc.RemoveItem(c.Request.Context(), currentUser(c).ID, c.Param("id"), c.Param("productId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *handlers) submitCart(c *gin.Context) {
	res, err := h.deps.CartSvc.Submit(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
