package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
)

// Preflight 任何 OPTIONS 请求直接 200 {"ok": true}，不进入后续处理
func Preflight() gin.HandlerFunc {
	methods := strings.Join(AllowMethods, ", ")
	headers := strings.Join(AllowHeaders, ", ")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		if c.GetHeader("Origin") != "" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
		}
		c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true})
	}
}
