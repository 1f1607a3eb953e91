package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelio/hotel-manager/internal/httperr"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "The id parameter must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
