package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/electromart/internal/config"
	"github.com/example/electromart/internal/middleware"
	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/services"
	"github.com/example/electromart/internal/storage"
	"github.com/example/electromart/internal/utils"
)

const oauthStateCookie = "oauthState"

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	store  storage.Storage
	cfg    *config.Config
	otp    *services.OTPService
	google *services.GoogleAuthService
	logger *zap.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(store storage.Storage, cfg *config.Config, otp *services.OTPService, google *services.GoogleAuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, cfg: cfg, otp: otp, google: google, logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account. Username uniqueness is enforced
// atomically inside the store.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	input := models.UserInput{Username: req.Username, Password: hash}
	if err := validate.Struct(input); err != nil {
		return validationError(c, "invalid user data", err)
	}

	user, err := h.store.CreateUser(input)
	if err == storage.ErrUsernameTaken {
		return fiber.NewError(fiber.StatusConflict, "username already taken")
	}
	if err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"token":    token,
		"message":  "User created successfully",
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an existing user and returns the current
// session's cart alongside the token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		return err
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	cart, err := buildCartPayload(h.store, middleware.SessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"token":    token,
		"message":  "Login successful",
		"cart":     cart,
	})
}

// Guest mints a fresh short-lived session with an empty cart.
func (h *AuthHandler) Guest(c *fiber.Ctx) error {
	sessionID := uuid.NewString()
	middleware.SetSessionCookie(c, sessionID, middleware.GuestSessionTTL)

	return c.JSON(fiber.Map{
		"message": "Guest session created",
		"isGuest": true,
		"cart":    emptyCartPayload(),
	})
}

// Logout expires the session cookie. Bearer tokens simply lapse.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.SessionCookie)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// CurrentUser returns the authenticated user's account.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return c.JSON(user)
}

type sendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// SendOTP issues a one-time code for phone login.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.PhoneNumber) < 10 {
		return fiber.NewError(fiber.StatusBadRequest, "valid phone number is required")
	}

	if err := h.otp.Issue(req.PhoneNumber); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to send OTP")
	}
	return c.JSON(fiber.Map{"message": "OTP sent successfully"})
}

type verifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
}

// VerifyOTP checks the code and logs the caller in, creating an
// account on first verification.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	switch err := h.otp.Verify(req.PhoneNumber, req.OTP); err {
	case nil:
	case services.ErrOTPExpired:
		return fiber.NewError(fiber.StatusBadRequest, "OTP expired or invalid")
	case services.ErrOTPInvalid:
		return fiber.NewError(fiber.StatusBadRequest, "invalid OTP")
	default:
		return err
	}

	user, err := h.store.GetUserByPhone(req.PhoneNumber)
	if err != nil {
		return err
	}
	if user == nil {
		phone := req.PhoneNumber
		user, err = h.store.CreateUser(models.UserInput{
			Username: fmt.Sprintf("user_%s", phone[len(phone)-4:]),
			Phone:    &phone,
		})
		if err != nil {
			return err
		}
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Authentication successful",
		"user":    user,
		"token":   token,
	})
}

// GoogleLogin redirects to the Google consent page.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	if !h.google.Enabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{Name: oauthStateCookie, Value: state, HTTPOnly: true})
	return c.Redirect(h.google.AuthURL(state))
}

// GoogleCallback completes the code flow, creating an account on first
// login.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	if !h.google.Enabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Google login is not configured")
	}
	if c.Query("state") == "" || c.Query("state") != c.Cookies(oauthStateCookie) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid oauth state")
	}

	profile, err := h.google.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		h.logger.Error("google exchange failed", zap.Error(err))
		return fiber.NewError(fiber.StatusUnauthorized, "google authentication failed")
	}

	user, err := h.store.GetUserByEmail(profile.Email)
	if err != nil {
		return err
	}
	if user == nil {
		email := profile.Email
		googleID := profile.ID
		user, err = h.store.CreateUser(models.UserInput{
			Username: profile.Name,
			Email:    &email,
			GoogleID: &googleID,
		})
		if err != nil {
			return err
		}
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
