// File: /controllers/auth_controller.go
package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsbuddy-api/middleware"
	"sportsbuddy-api/models"
	"sportsbuddy-api/services"
	"sportsbuddy-api/services/ports"
	"sportsbuddy-api/utils"
)

type AuthController struct {
	auth     *services.AuthService
	notifier ports.Notifier
	log      *slog.Logger
}

func NewAuthController(auth *services.AuthService, notifier ports.Notifier, log *slog.Logger) *AuthController {
	return &AuthController{
		auth:     auth,
		notifier: notifier,
		log:      log,
	}
}

type RegisterRequest struct {
	Username        string   `json:"username" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	Password        string   `json:"password" binding:"required"`
	Role            string   `json:"role"`
	SportsInterests []string `json:"sports_interests"`
	AbilityLevel    string   `json:"ability_level"`
	Location        string   `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.fail(c, fmtValidation("username, email and password are required"))
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), services.RegisterInput{
		DisplayName:     req.Username,
		Email:           req.Email,
		Password:        req.Password,
		Role:            req.Role,
		SportsInterests: req.SportsInterests,
		AbilityLevel:    req.AbilityLevel,
		Location:        req.Location,
	})
	if err != nil {
		ac.fail(c, err)
		return
	}

	token, err := ac.auth.IssueToken(user)
	if err != nil {
		ac.fail(c, err)
		return
	}

	notice := models.Notice{Message: services.MsgRegistered, Severity: models.SeveritySuccess, Recipient: user.Email}
	ac.notifier.Notify(c.Request.Context(), notice)
	utils.SendNotice(c, http.StatusCreated, notice.Message, string(notice.Severity), AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.fail(c, fmtValidation("email and password are required"))
		return
	}

	token, user, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ac.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// Me returns the caller's identity and stored profile
func (ac *AuthController) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	user, err := ac.auth.Profile(c.Request.Context(), identity.UID)
	if err != nil {
		ac.fail(c, err)
		return
	}
	utils.SendData(c, http.StatusOK, gin.H{"identity": identity, "user": user})
}

func (ac *AuthController) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		ac.log.ErrorContext(c.Request.Context(), "auth request failed", "path", c.FullPath(), "error", err)
	}
	notice := services.NoticeForError(err)
	ac.notifier.Notify(c.Request.Context(), notice)
	utils.SendError(c, status, notice.Message)
}
