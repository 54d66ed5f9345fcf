package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ventas-dashboard/internal/domain"
)

func (h *handlers) login(c *gin.Context) {
	var req domain.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	session, err := h.deps.AuthSvc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *handlers) register(c *gin.Context) {
	var req domain.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	u, err := h.deps.AuthSvc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *handlers) me(c *gin.Context) {
	u, err := h.deps.AuthSvc.Current(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handlers) listUsers(c *gin.Context) {
	users, err := h.deps.AuthSvc.Customers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}
