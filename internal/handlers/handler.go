package handlers

import (
	"bookslist/internal/logger"
	"bookslist/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Everything else requires a valid bearer token.
	protected := router.Group("", h.identityMiddleware)
	{
		h.registerUserRoutes(protected)
		h.registerBookRoutes(protected)
	}

	return router
}

func (h *Handler) registerUserRoutes(r *gin.RouterGroup) {
	r.GET("/users", h.listUsers)
	r.GET("/users/:userId", h.getUser)
	r.GET("/user", h.currentUser)
	r.PUT("/users/:userId", h.updateUser)
	r.DELETE("/users/:userId", h.deleteUser)
}

func (h *Handler) registerBookRoutes(r *gin.RouterGroup) {
	r.GET("/books", h.myBooks)

	books := r.Group("/users/:userId/books")
	{
		books.GET("", h.listBooks)
		books.GET("/:bookId", h.getBook)
		books.POST("", h.createBook)
		books.PUT("/:bookId", h.updateBook)
		books.PUT("/:bookId/status", h.updateBookStatus)
		books.DELETE("/:bookId", h.deleteBook)
	}
}
