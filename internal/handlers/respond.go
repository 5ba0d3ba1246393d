package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"foodcourt/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to an HTTP status and a plain message.
// Internal details are logged, never sent to the client.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind != apperrors.KindInternal {
		c.JSON(appErr.Kind.HTTPStatus(), gin.H{"message": appErr.Message})
		return
	}
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
