package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/VivekWar/ABRC/config"
	"github.com/VivekWar/ABRC/services"
	"github.com/VivekWar/ABRC/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	cfg   *config.Config
	store services.Store
}

func NewProfileController(cfg *config.Config, store services.Store) *ProfileController {
	return &ProfileController{cfg: cfg, store: store}
}

// GET /api/user/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")
	user, err := pc.store.UserByID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PUT /api/user/profile
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req struct {
		Name       *string `json:"name"`
		Mobile     *string `json:"mobile"`
		RollNumber *string `json:"rollNumber"`
		Branch     *string `json:"branch"`
		Photo      *string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := pc.store.UserByID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
			return
		}
		user.Name = name
	}
	if req.Mobile != nil {
		user.Mobile = req.Mobile
	}
	if req.RollNumber != nil {
		user.RollNumber = req.RollNumber
	}
	if req.Branch != nil {
		user.Branch = req.Branch
	}
	if req.Photo != nil {
		user.Photo = req.Photo
	}

	if err := pc.store.SaveUser(user); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.LogError(err, "update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// POST /api/user/logout
func (pc *ProfileController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	rdb := utils.GetRedis()
	if rdb != nil {
		// blacklist until the token would have expired anyway
		ttl := 7 * 24 * time.Hour
		if claims, err := utils.ParseJWT(token, pc.cfg.JWTSecret); err == nil {
			if t := utils.TokenTTL(claims); t > 0 {
				ttl = t
			}
		}
		rdb.Set(utils.RedisCtx(), "blacklist:"+token, "1", ttl)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
