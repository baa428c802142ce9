package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the HTTP surface: search API, admin read views,
// health and metrics
func NewRouter(searchHandler *SearchHandler, adminHandler *AdminHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	searchHandler.Register(router.Group("/api"))
	adminHandler.Register(router.Group("/admin"))

	return router
}
