package handlers

import (
	"net/http"

	"bidright/internal/adapter/http/dto/request"
	"bidright/internal/adapter/http/dto/response"
	"bidright/internal/adapter/http/middleware"
	"bidright/internal/usecase"
	"bidright/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves estimate calculation and the saved-estimates list.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Calculate an estimate
// @Description  Prices a project from industry, project type, complexity and features. Anonymous callers allowed.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Selections"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Router       /v1/estimates [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	estimate, err := h.usecase.Calculate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// Save godoc
// @Summary      Save an estimate
// @Description  Calculates and stores an estimate. Free plans are capped.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.EstimateRequest  true  "Selections"
// @Success      201      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/estimates/saved [post]
func (h *EstimateHandler) Save(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	estimate, err := h.usecase.Save(c.Request.Context(), middleware.UserID(c), payload.ToInput())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// ListSaved godoc
// @Summary      List saved estimates
// @Tags         estimates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.EstimateListResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /v1/estimates/saved [get]
func (h *EstimateHandler) ListSaved(c *gin.Context) {
	list, err := h.usecase.ListSaved(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetSaved godoc
// @Summary      Get a saved estimate
// @Tags         estimates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/estimates/saved/{id} [get]
func (h *EstimateHandler) GetSaved(c *gin.Context) {
	estimate, err := h.usecase.GetSaved(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DeleteSaved godoc
// @Summary      Delete a saved estimate
// @Tags         estimates
// @Security     BearerAuth
// @Param        id   path  string  true  "Estimate ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/estimates/saved/{id} [delete]
func (h *EstimateHandler) DeleteSaved(c *gin.Context) {
	if err := h.usecase.DeleteSaved(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	return internalError(err)
}
