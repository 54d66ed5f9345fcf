package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ventas-dashboard/internal/domain"
	cartsvc "ventas-dashboard/internal/service/cart"
	dashboardsvc "ventas-dashboard/internal/service/dashboard"
)

type authService interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, in domain.Registration) (*domain.User, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
	Customers(ctx context.Context) ([]domain.User, error)
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type productService interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type dashboardService interface {
	Summary(ctx context.Context, limit int) (*dashboardsvc.Summary, error)
	Orders(ctx context.Context, q dashboardsvc.OrderQuery) ([]domain.Order, error)
}

type cartService interface {
	Create(ctx context.Context, ownerID string) (*cartsvc.Draft, error)
	Get(ctx context.Context, ownerID, id string) (*cartsvc.Draft, error)
	Discard(ctx context.Context, ownerID, id string) error
	SelectCustomer(ctx context.Context, ownerID, id, userID string) (*cartsvc.Draft, error)
	AddItem(ctx context.Context, ownerID, id, productID string, quantity int) (*cartsvc.Draft, error)
	RemoveItem(ctx context.Context, ownerID, id, productID string) (*cartsvc.Draft, error)
	Submit(ctx context.Context, ownerID, id string) (*cartsvc.SubmitResult, error)
}

// Deps carries the services behind the routes.
type Deps struct {
	AuthSvc      authService
	CategorySvc  categoryService
	ProductSvc   productService
	DashboardSvc dashboardService
	CartSvc      cartService
	CORSOrigins  []string
}

func (d Deps) validate() error {
	switch {
	case d.AuthSvc == nil:
		return errors.New("auth service required")
	case d.CategorySvc == nil:
		return errors.New("category service required")
	case d.ProductSvc == nil:
		return errors.New("product service required")
	case d.DashboardSvc == nil:
		return errors.New("dashboard service required")
	case d.CartSvc == nil:
		return errors.New("cart service required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, checks map[string]Pinger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	if len(deps.CORSOrigins) > 0 {
		router.Use(cors.New(corsConfig(deps.CORSOrigins)))
	}

	h := &handlers{deps: deps, logger: logger}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(checks))

	router.POST("/auth/login", h.login)
	router.POST("/auth/register", h.register)

	authed := router.Group("/", bearerMiddleware())
	authed.GET("/me", h.me)
	authed.GET("/users", h.listUsers)

	authed.GET("/categories", h.listCategories)
	authed.POST("/categories", h.createCategory)
	authed.PATCH("/categories/:id", h.updateCategory)
	authed.DELETE("/categories/:id", h.deleteCategory)

	authed.GET("/products", h.listProducts)
	authed.POST("/products", h.createProduct)
	authed.GET("/products/:id", h.getProduct)
	authed.PATCH("/products/:id", h.updateProduct)
	authed.DELETE("/products/:id", h.deleteProduct)

	authed.GET("/sales", h.listSales)
	authed.GET("/dashboard", h.dashboard)

	carts := authed.Group("/carts", ownerMiddleware(deps.AuthSvc, logger))
	carts.POST("", h.createCart)
	carts.GET("/:id", h.getCart)
	carts.DELETE("/:id", h.discardCart)
	carts.PUT("/:id/customer", h.selectCustomer)
	carts.POST("/:id/items", h.addCartItem)
	carts.DELETE("/:id/items/:productId", h.removeCartItem)
	carts.POST("/:id/submit", h.submitCart)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
