package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of this package's logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// statusByCode maps domain error codes to HTTP statuses
var statusByCode = map[string]int{
	models.ErrValidationFailed:       http.StatusBadRequest,
	models.ErrConflict:               http.StatusConflict,
	models.ErrNotFound:               http.StatusNotFound,
	models.ErrMealGone:               http.StatusGone,
	models.ErrArenaFull:              http.StatusConflict,
	models.ErrInsufficientCombatants: http.StatusBadRequest,
	models.ErrRandomUnavailable:      http.StatusServiceUnavailable,
}

// respondWithError writes err as an APIError. Errors outside the domain
// taxonomy are logged and reported as a generic internal error.
func respondWithError(ctx *gin.Context, err error) {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusByCode[domainErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, models.NewAPIError(domainErr.Code, domainErr.Error()))
		return
	}

	log.WithError(err).WithField("path", ctx.FullPath()).Error("Unexpected error handling request")
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
}

// badRequest writes a 400 APIError for malformed request input
func badRequest(ctx *gin.Context, message string, details ...map[string]interface{}) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message, details...))
}
