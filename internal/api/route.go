package api

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/api/middleware"
	"Pulseboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.MaxMultipartMemory = 4 * cfg.Upload.MaxFileSize
	r.SetHTMLTemplate(handler.PageTemplate(cfg.Server.Currency))

	// TraceId & Logger & CORS & Session
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)
	r.Use(middleware.SessionMiddleware(cfg.Session.CookieName, cfg.Session.TTL))

	r.GET("/", group.PageHandler.Index)
	r.POST("/dataset/upload", group.DatasetHandler.UploadForm)
	r.POST("/dataset/reset", group.DatasetHandler.ResetForm)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.GET("/dashboard", group.DashboardHandler.Dashboard)
		apiGroup.GET("/export/:file", group.DashboardHandler.Export)

		datasetGroup := apiGroup.Group("/dataset")
		{
			datasetGroup.GET("", group.DatasetHandler.Status)
			datasetGroup.POST("", group.DatasetHandler.Upload)
			datasetGroup.DELETE("", group.DatasetHandler.Reset)
		}
	}

	return r
}
