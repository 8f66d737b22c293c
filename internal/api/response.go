package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All handler failures share one envelope: {"error": "<message>"}. Messages
// are user-facing; anything diagnostic goes to the request logger instead.
// Numeric codes from internal/errcode travel only on websocket notifications,
// never in these HTTP bodies.

// Error writes the envelope with an arbitrary status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortUnauthorized rejects the request and stops the middleware chain; used
// before a handler runs (missing or bad bearer token).
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// Unauthorized is the in-handler variant, deliberately message-free so login
// failures do not reveal whether the username exists.
func Unauthorized(c *gin.Context) { Error(c, http.StatusUnauthorized, "unauthorized") }

func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }
func Forbidden(c *gin.Context, msg string)  { Error(c, http.StatusForbidden, msg) }

// NotFound also masks ownership: a document belonging to someone else reads
// as missing, never as forbidden.
func NotFound(c *gin.Context, msg string) { Error(c, http.StatusNotFound, msg) }

// Conflict covers state races such as downloading a PDF before the export
// finished.
func Conflict(c *gin.Context, msg string) { Error(c, http.StatusConflict, msg) }

func Internal(c *gin.Context, msg string) { Error(c, http.StatusInternalServerError, msg) }
