package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-admin/cmd/api/auth"
	"blog-admin/cmd/api/handlers"
	"blog-admin/cmd/api/middleware"
	_ "blog-admin/docs"
	"blog-admin/services"
	"blog-admin/storage"
)

// Deps are the services the router wires into handlers.
// JWT nil disables admin authentication (local development only).
type Deps struct {
	Blogs   *services.BlogService
	Uploads *services.UploadService
	Imports *services.ImportService
	Store   storage.ObjectStore
	JWT     *auth.JWTManager
	Ping    handlers.Pinger
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", handlers.HealthHandler(d.Ping))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 업로드된 이미지
	if d.Store != nil {
		r.GET("/uploads/*key", handlers.ServeObjectHandler(d.Store))
	}

	// v1 routes
	api := r.Group("/api/v1")
	admin := api.Group("/admin")
	if d.JWT != nil {
		admin.Use(middleware.AdminAuthMiddleware(d.JWT))
	}
	{
		admin.GET("/blogs", handlers.AdminListBlogsHandler(d.Blogs))
		admin.POST("/blogs", handlers.AdminCreateBlogHandler(d.Blogs))
		admin.GET("/blogs/:id", handlers.AdminGetBlogHandler(d.Blogs))
		admin.PATCH("/blogs/:id", handlers.AdminUpdateBlogHandler(d.Blogs))
		admin.DELETE("/blogs/:id", handlers.AdminDeleteBlogHandler(d.Blogs))
		admin.POST("/blogs/:id/toggle-active", handlers.AdminToggleBlogActiveHandler(d.Blogs))

		if d.Uploads != nil {
			admin.POST("/uploads/image", handlers.AdminUploadImageHandler(d.Uploads))
		}
		if d.Imports != nil {
			admin.POST("/blogs/import", handlers.AdminImportFeedHandler(d.Imports))
		}
	}

	return r
}
