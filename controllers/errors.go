package controllers

import (
	"errors"
	"net/http"

	"github.com/VivekWar/ABRC/services"
	"github.com/VivekWar/ABRC/utils"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is logged and answered with a generic 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrSelfJoin):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTravelNotFound), errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTravelFull), errors.Is(err, services.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.LogError(err, "request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, services.ErrTravelFull):
		return "capacity"
	case errors.Is(err, services.ErrDuplicateRequest):
		return "duplicate"
	case errors.Is(err, services.ErrSelfJoin):
		return "self_join"
	case errors.Is(err, services.ErrTravelNotFound):
		return "not_found"
	default:
		return "other"
	}
}
