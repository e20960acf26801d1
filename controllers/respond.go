package controllers

import (
	"errors"
	"net/http"

	"backend/middlewares"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// abortWithError maps service error kinds to status codes in one place.
func abortWithError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		authErr       *services.AuthError
		permissionErr *services.PermissionError
		conflictErr   *services.ConflictError
		notFoundErr   *services.NotFoundError
		upstreamErr   *services.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Msg})
	case errors.As(err, &permissionErr):
		c.JSON(http.StatusForbidden, gin.H{"error": permissionErr.Msg})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflictErr.Msg})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Msg})
	case errors.As(err, &upstreamErr):
		c.JSON(upstreamErr.Status, gin.H{"error": upstreamErr.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middlewares.ContextUserKey).(*models.User)
}
