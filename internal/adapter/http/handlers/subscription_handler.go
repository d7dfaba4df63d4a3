package handlers

import (
	"errors"
	"net/http"

	"bidright/internal/adapter/http/dto/request"
	"bidright/internal/adapter/http/dto/response"
	"bidright/internal/adapter/http/middleware"
	"bidright/internal/usecase"
	"bidright/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// SubscriptionHandler exposes plans and the caller's subscription lifecycle.
type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// Plans godoc
// @Summary      List plans
// @Tags         subscription
// @Produce      json
// @Success      200  {object}  response.PlansResponse
// @Router       /v1/plans [get]
func (h *SubscriptionHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, response.PlansResponse{Plans: h.usecase.Plans()})
}

// Status godoc
// @Summary      Current subscription
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.SubscriptionStatusResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /v1/subscription [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	status, err := h.usecase.Status(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionStatus(status))
}

// Checkout godoc
// @Summary      Subscribe to Pro
// @Description  Charges the Pro price through Mercado Pago. mp_payload carries payment method, token and payer.
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.CheckoutRequest  true  "Billing cycle and Mercado Pago payload"
// @Success      201      {object}  response.SubscriptionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      402      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /v1/subscription/checkout [post]
func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidCheckoutPayload)
		return
	}

	sub, err := h.usecase.Checkout(c.Request.Context(), middleware.UserID(c), payload.BillingCycle(), payload.MPPayload)
	if err != nil {
		writeError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSubscription(sub))
}

// Cancel godoc
// @Summary      Cancel subscription
// @Description  The plan stays in force until the renewal date.
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/subscription/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	sub, err := h.usecase.Cancel(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingCycle), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrAlreadySubscribed):
		return pkg.NewDomainErrorSimple("ALREADY_SUBSCRIBED", "Subscription already active", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveSubscription):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_SUBSCRIPTION", "No active subscription", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	}
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	return internalError(err)
}
