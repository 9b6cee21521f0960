package handlers

import (
	"net/http"

	"arheb/internal/http/middleware"
	"arheb/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/orders/:orderId/tracking returns the current tracking state
// without touching any live connection.
func GetOrderTracking(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := repositories.OrderRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !order.OwnedBy(middleware.GetIdentity(c)) {
		RespondError(c, http.StatusForbidden, "Access to this order is forbidden", nil)
		return
	}

	snap := getRegistry().Snapshot(id)
	if !snap.IsTracking {
		Respond(c, http.StatusOK, "No active tracking for this order", gin.H{
			"orderId":    id,
			"isTracking": false,
			"location":   nil,
		})
		return
	}

	Respond(c, http.StatusOK, "Tracking state retrieved", gin.H{
		"orderId":    id,
		"isTracking": true,
		"location": gin.H{
			"longitude":  snap.Location.Longitude,
			"latitude":   snap.Location.Latitude,
			"observedAt": snap.Location.ObservedAt,
		},
		"driverConnected":   snap.DriverConnected,
		"customerConnected": snap.CustomerConnected,
	})
}
