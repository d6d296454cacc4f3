package api

import (
	"net/http"
	"strconv"

	"gigbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func bookingIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_id", "Invalid booking id", nil)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid request", gin.H{"reason": err.Error()})
		return false
	}
	return true
}
