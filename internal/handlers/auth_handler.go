package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/auth"
	"github.com/markeugine/atelier-backend/internal/config"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/mail"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/otp"
	"github.com/markeugine/atelier-backend/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	otp    *otp.Service
	mailer *mail.Mailer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, otpSvc *otp.Service, mailer *mail.Mailer) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, otp: otpSvc, mailer: mailer}
}

// --------- Requests ---------

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	FacebookLink string `json:"facebook_link"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- OTP ---------

// RequestOTP mails a 6-digit code to an address that wants to register.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	code, err := h.otp.Issue(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "otp_issue_failed", "Could not issue a verification code.")
		return
	}

	if err := h.mailer.SendOTP(email, code); err != nil {
		log.Println("otp mail error:", err)
		httperr.Internal(c, "otp_mail_failed", "Could not send the verification code.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent."})
}

// VerifyOTP consumes the code and opens the 30-minute registration window.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if err := h.otp.Verify(c.Request.Context(), email, req.Code); err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You may now register."})
}

// --------- Register / Login ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if err := h.otp.RequireVerified(c.Request.Context(), email); err != nil {
		respondBusiness(c, err)
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "An account with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		FacebookLink: req.FacebookLink,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	_ = h.otp.Consume(c.Request.Context(), email)

	token, err := auth.Issue(c.Request.Context(), h.db, user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := auth.Issue(c.Request.Context(), h.db, user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- Logout ---------

func (h *AuthHandler) Logout(c *gin.Context) {
	plaintext := c.GetString(middleware.ContextAuthToken)
	if err := auth.Revoke(c.Request.Context(), h.db, plaintext); err != nil {
		httperr.Internal(c, "logout_failed", "Could not revoke the token.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	if err := auth.RevokeAll(c.Request.Context(), h.db, userID); err != nil {
		httperr.Internal(c, "logout_failed", "Could not revoke tokens.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- Password reset ---------

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		// Don't reveal which addresses exist.
		c.JSON(http.StatusOK, gin.H{"message": "If the address exists, a reset token was sent."})
		return
	}

	token, err := auth.NewResetToken(h.config.JWTSecret, user.ID, user.PasswordHash)
	if err != nil {
		httperr.Internal(c, "reset_token_failed", "Could not issue a reset token.")
		return
	}

	if err := h.mailer.SendPasswordReset(email, token); err != nil {
		log.Println("reset mail error:", err)
		httperr.Internal(c, "reset_mail_failed", "Could not send the reset token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the address exists, a reset token was sent."})
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	userID, pwdDigest, err := auth.ParseResetToken(h.config.JWTSecret, req.Token)
	if err != nil {
		httperr.BadRequest(c, "invalid_reset_token", "The reset token is invalid or expired.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.BadRequest(c, "invalid_reset_token", "The reset token is invalid or expired.")
		return
	}

	// A token minted before the last password change is dead.
	if auth.Digest(user.PasswordHash) != pwdDigest {
		httperr.BadRequest(c, "invalid_reset_token", "The reset token is invalid or expired.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "reset_failed", "Could not update the password.")
		return
	}

	// All existing sessions die with the old password.
	_ = auth.RevokeAll(c.Request.Context(), h.db, user.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}
