package controllers

import (
	"net/http"
	"strconv"

	"github.com/VivekWar/ABRC/services"
	"github.com/VivekWar/ABRC/utils"

	"github.com/gin-gonic/gin"
)

type TravelController struct {
	travels *services.TravelService
}

func NewTravelController(travels *services.TravelService) *TravelController {
	return &TravelController{travels: travels}
}

// POST /api/travels
func (tc *TravelController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Destination   string   `json:"destination"`
		DepartureTime string   `json:"departureTime"`
		MaxPassengers int      `json:"maxPassengers"`
		PreferredMode []string `json:"preferredMode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Destination == "" || req.DepartureTime == "" || len(req.PreferredMode) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	departure, err := utils.ParseDepartureTime(req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departureTime"})
		return
	}

	travel, err := tc.travels.CreateTravel(userID, services.CreateTravelInput{
		Destination:   req.Destination,
		DepartureTime: departure,
		MaxPassengers: req.MaxPassengers,
		PreferredMode: req.PreferredMode,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.TravelsCreated.Inc()
	c.JSON(http.StatusOK, gin.H{"travel": travel})
}

// GET /api/travels
func (tc *TravelController) List(c *gin.Context) {
	travels, err := tc.travels.ListActiveTravels()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(travels))
	for _, t := range travels {
		view := gin.H{
			"id":                t.ID,
			"destination":       t.Destination,
			"departureTime":     t.DepartureTime,
			"maxPassengers":     t.MaxPassengers,
			"currentPassengers": t.CurrentPassengers,
			"preferredMode":     t.PreferredMode,
			"createdAt":         t.CreatedAt,
		}
		if t.User != nil {
			view["user"] = gin.H{
				"id":     t.User.ID,
				"name":   t.User.Name,
				"photo":  t.User.Photo,
				"mobile": t.User.Mobile,
			}
		}
		out = append(out, view)
	}
	c.JSON(http.StatusOK, gin.H{"travels": out, "count": len(out)})
}

// PUT /api/travels
func (tc *TravelController) Update(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		ID       uint  `json:"id"`
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and isActive are required"})
		return
	}

	travel, err := tc.travels.UpdateTravelStatus(userID, req.ID, *req.IsActive)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"travel": travel})
}

// DELETE /api/travels?id=
func (tc *TravelController) Delete(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := tc.travels.CancelTravel(userID, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "travel cancelled"})
}
