package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orbita/challenger-backend/internal/middleware"
	"github.com/orbita/challenger-backend/internal/model"
	"github.com/orbita/challenger-backend/internal/response"
	"github.com/orbita/challenger-backend/internal/service"
	"github.com/orbita/challenger-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /login
// Validates the configured credential pair and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	response.JSON(c, http.StatusOK, response.Ok("Login successful", model.LoginResponse{Token: token}))
}

// Me godoc
// GET /me
// Returns the username behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, http.StatusUnauthorized, "Authentication token required.")
		return
	}

	response.JSON(c, http.StatusOK, response.Ok("Authenticated", gin.H{"username": claims.Username}))
}

// Logout godoc
// POST /logout
// Invalidates the presented token's session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, http.StatusUnauthorized, "Authentication token required.")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.ID); err != nil {
		response.Error(c, http.StatusBadRequest, "An error occurred.")
		return
	}

	response.JSON(c, http.StatusOK, response.Ok("Logged out", nil))
}
