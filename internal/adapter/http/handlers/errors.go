package handlers

import (
	"errors"
	"net/http"

	"bidright/internal/domain/entities"
	"bidright/internal/usecase"
	"bidright/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errUpgradeRequired  = pkg.NewDomainErrorSimple("UPGRADE_REQUIRED", "Your current plan does not include this feature", http.StatusForbidden)
	errInvalidRequest   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidSelection = pkg.NewDomainErrorSimple("INVALID_SELECTION", "Unknown industry or project type", http.StatusBadRequest)
	errEstimateNotFound = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
)

// mapCommonError covers errors every use case can return. ok is false when
// err needs a handler-specific mapping.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var featureErr *usecase.FeatureError
	switch {
	case errors.As(err, &featureErr):
		return upgradeRequired(featureErr.Feature, featureErr.Required), true
	case errors.Is(err, usecase.ErrSavedEstimateLimit):
		return upgradeRequired(entities.FeatureSaveEstimatesUnlimited, entities.PlanPro), true
	case errors.Is(err, usecase.ErrInvalidSelection):
		return errInvalidSelection, true
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return errInvalidRequest, true
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return errEstimateNotFound, true
	}
	return nil, false
}

func upgradeRequired(feature entities.Feature, required entities.PlanTier) *pkg.AppError {
	return errUpgradeRequired.
		WithDetail("feature", string(feature)).
		WithDetail("required_plan", string(required))
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.StatusOrDefault(), appErr.ToHTTPError())
}
