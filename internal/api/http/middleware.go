package apiHttp

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtx    = "requestId"
)

// requestIDMiddleware keeps a client-supplied request id when it is a UUID and
// issues a new one otherwise.
func requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	c.Set(requestIDCtx, id)
	c.Header(requestIDHeader, id)

	c.Next()
}
