package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/VivekWar/ABRC/config"
	"github.com/VivekWar/ABRC/models"
	"github.com/VivekWar/ABRC/services"
	"github.com/VivekWar/ABRC/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthController struct {
	cfg    *config.Config
	store  services.Store
	mailer services.Mailer
	oauth  *oauth2.Config
}

func NewAuthController(cfg *config.Config, store services.Store, mailer services.Mailer) *AuthController {
	return &AuthController{
		cfg:    cfg,
		store:  store,
		mailer: mailer,
		oauth: &oauth2.Config{
			RedirectURL:  cfg.GoogleRedirect,
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	user := models.User{Name: name, Email: email, Password: hash}
	if err := ac.store.CreateUser(&user); err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		utils.LogError(err, "create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, ac.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if ac.mailer != nil {
		go func() {
			if err := ac.mailer.SendWelcomeMail(user.Email, user.Name); err != nil {
				utils.LogError(err, "welcome mail")
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := ac.store.UserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if user.GoogleID != nil && user.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This account uses Google sign-in"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, ac.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

type googleUserInfo struct {
	Email string `json:"email"`
	Id    string `json:"id"`
	Name  string `json:"name"`
}

// GET /api/auth/google
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	url := ac.oauth.AuthCodeURL("state", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

// GET /api/auth/google/callback
func (ac *AuthController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code not found"})
		return
	}
	token, err := ac.oauth.Exchange(context.Background(), code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token exchange failed"})
		return
	}
	client := ac.oauth.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo?alt=json")
	if err != nil || resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get user info"})
		return
	}
	defer resp.Body.Close()
	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to decode user info"})
		return
	}
	if userInfo.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email not found in Google profile"})
		return
	}

	email := strings.ToLower(userInfo.Email)
	user, err := ac.store.UserByEmail(email)
	if errors.Is(err, services.ErrUserNotFound) {
		// first Google sign-in creates the account
		user = &models.User{Name: userInfo.Name, Email: email, GoogleID: &userInfo.Id}
		if err := ac.store.CreateUser(user); err != nil {
			utils.LogError(err, "create google user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if ac.mailer != nil {
			go func() {
				if err := ac.mailer.SendWelcomeMail(user.Email, user.Name); err != nil {
					utils.LogError(err, "welcome mail")
				}
			}()
		}
	} else if err != nil {
		utils.LogError(err, "lookup google user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	jwt, err := utils.GenerateJWT(user.ID, user.Email, ac.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": jwt})
}
