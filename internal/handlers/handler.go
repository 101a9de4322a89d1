package handlers

import (
	"reflect"
	"strings"
	"sync"

	"blog_api/internal/logger"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	_ "blog_api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.accessLog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerBlogRoutes(router)
	h.registerUserRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerBlogRoutes(r *gin.Engine) {
	blogs := r.Group("/blogs", h.userIdMiddleware)
	{
		blogs.GET("/", h.listBlogs)
		blogs.GET("/blog/:id", h.getBlog)
		blogs.POST("/blog", h.createBlog)
		blogs.PUT("/blog/:id", h.updateBlog)
		blogs.DELETE("/blog/:id", h.deleteBlog)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users", h.userIdMiddleware)
	{
		users.GET("/", h.getUser)
		users.PUT("/password", h.changePassword)
		users.PUT("/phonenumber/:phone_number", h.changePhoneNumber)
	}
}

var jsonNamesOnce sync.Once

// useJSONFieldNames makes validation errors report json field names
// ("title") instead of Go ones ("Title").
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
