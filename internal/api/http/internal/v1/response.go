package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

type idURI struct {
	ID string `uri:"id" binding:"required,dbid"`
}

// bindID reads the :id path parameter. Ids that are not positive integers
// are reported as false.
func bindID(c *gin.Context) (int64, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return 0, false
	}

	id, err := strconv.ParseInt(uri.ID, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
