package routes

import (
	"bidright/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans        = "/plans"
	PathSubscription = "/subscription"
)

func addBillingRoutes(rg *gin.RouterGroup, subscriptionHandler *handlers.SubscriptionHandler, private gin.HandlerFunc) {
	rg.GET(PathPlans, subscriptionHandler.Plans)

	subscription := rg.Group(PathSubscription, private)
	{
		subscription.GET("", subscriptionHandler.Status)
		subscription.POST("/checkout", subscriptionHandler.Checkout)
		subscription.POST("/cancel", subscriptionHandler.Cancel)
	}
}
