package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"eyenova-backend/config"
	"eyenova-backend/models"
	"eyenova-backend/services"
	"eyenova-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	userService  *services.UserService
	otpService   *services.OTPService
	emailService *services.EmailService
}

func NewAuthController(userService *services.UserService, otpService *services.OTPService, emailService *services.EmailService) *AuthController {
	return &AuthController{
		userService:  userService,
		otpService:   otpService,
		emailService: emailService,
	}
}

// SendOTP issues a one-time code. For signup the email must be new, for
// reset it must belong to an existing account.
func (ac *AuthController) SendOTP(c *gin.Context) {
	var req models.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	_, err := ac.userService.GetByEmail(c.Request.Context(), req.Email)
	switch req.Intent {
	case "signup":
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if !errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account"})
			return
		}
	case "reset":
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No account with this email"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account"})
			return
		}
	}

	code, err := ac.otpService.Issue(req.Email, req.Intent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}

	purpose := "account signup"
	if req.Intent == "reset" {
		purpose = "password reset"
	}
	if err := ac.emailService.SendOTP(req.Email, code, purpose); err != nil {
		log.Println("OTP delivery error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTP checks a submitted code and marks the email verified.
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req models.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if err := ac.otpService.Verify(req.Email, req.Intent, req.OTP); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrOTPExpired) {
			status = http.StatusGone
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}

// Register creates an account. The email must have passed OTP verification
// for signup first.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if req.Role != models.RolePatient && req.Role != models.RoleDoctor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be Patient or Doctor"})
		return
	}

	if !ac.otpService.IsVerified(req.Email, "signup") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified"})
		return
	}

	user, err := ac.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	ac.otpService.Consume(req.Email, "signup")

	c.JSON(http.StatusCreated, user)
}

// Login exchanges credentials for an access token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	user, err := ac.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	cfg := config.Get()
	expiry := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	token, err := utils.CreateAccessToken(user.Email, cfg.JWT.Secret, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// ResetPassword sets a new password after OTP verification for reset.
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if !ac.otpService.IsVerified(req.Email, "reset") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified"})
		return
	}

	user, err := ac.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account with this email"})
		return
	}

	if err := ac.userService.SetPassword(c.Request.Context(), user.ID, req.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}
	ac.otpService.Consume(req.Email, "reset")

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
