package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	authAllowMethods    = "GET, POST, OPTIONS"
	adminAllowMethods   = "POST, OPTIONS"
	catalogAllowMethods = "GET, OPTIONS"

	defaultAllowHeaders = "Content-Type"
	authAllowHeaders    = "Content-Type, X-Session-Id"

	corsMaxAge = "86400"
)

// corsMiddleware marks every response as readable from any origin.
func corsMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Next()
}

// preflight answers OPTIONS with the endpoint's CORS policy and an empty body.
func preflight(methods, headers string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Max-Age", corsMaxAge)
		c.AbortWithStatus(http.StatusOK)
	}
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

func (h *Handler) notFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
