package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id in and out.
const RequestIDHeader = "X-Request-ID"

const contextKeyRequestID = "request_id"

// RequestID tags every request with a unique id, honoring one supplied
// by the client, and echoes it back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retrieves the current request id from context.
func GetRequestID(c *gin.Context) string {
	value, exists := c.Get(contextKeyRequestID)
	if !exists {
		return ""
	}

	id, ok := value.(string)
	if !ok {
		return ""
	}
	return id
}
