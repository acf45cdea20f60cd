package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys for the authenticated caller.
const (
	ctxUserID   = "userId"
	ctxUserName = "userName"

	requestIDHeader = "X-Request-ID"
)

// identityMiddleware validates the bearer token and stores the caller's
// identity in the Gin context.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	claims, err := h.services.ParseToken(parts[1])
	if err != nil || claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserName, claims.Name)
	c.Next()
}

// requestLogger assigns a request id and logs one line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Header(requestIDHeader, reqID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// callerID returns the authenticated user's id from the Gin context.
func callerID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}

// pathUserID parses the :userId path parameter.
func pathUserID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("userId"))
	return id, err == nil
}

// pathBookID parses the :bookId path parameter.
func pathBookID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("bookId"))
	return id, err == nil
}

// requireSelf aborts with 403 unless the :userId path parameter names the
// authenticated caller. Returns the target user id on success.
func (h *Handler) requireSelf(c *gin.Context) (int, bool) {
	target, ok := pathUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	caller, ok := callerID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "missing identity claim"})
		return 0, false
	}
	if caller != target {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return 0, false
	}
	return target, true
}
