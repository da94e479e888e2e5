package controllers

import (
	"net/http"

	"github.com/VivekWar/ABRC/services"
	"github.com/VivekWar/ABRC/utils"

	"github.com/gin-gonic/gin"
)

type RideController struct {
	rides *services.RideService
}

func NewRideController(rides *services.RideService) *RideController {
	return &RideController{rides: rides}
}

// POST /api/ride-requests
func (rc *RideController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		TravelID uint `json:"travelId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TravelID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "travelId is required"})
		return
	}

	rideRequest, err := rc.rides.FileRideRequest(userID, req.TravelID)
	if err != nil {
		utils.RideRequestsRejected.WithLabelValues(rejectionReason(err)).Inc()
		writeServiceError(c, err)
		return
	}
	utils.RideRequestsFiled.Inc()
	c.JSON(http.StatusOK, gin.H{"rideRequest": rideRequest})
}
