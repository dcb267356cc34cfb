package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// AuthHandler handles admin login and token validation.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Token       string    `json:"token"`
	TokenExpiry string    `json:"tokenExpiry"`
	User        loginUser `json:"user"`
}

// Login handles POST /api/auth/login.
// Both fields are required; unknown username and wrong password return the
// identical 401 body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:     true,
		Message:     "Login successful",
		Token:       result.Token,
		TokenExpiry: result.TokenExpiry.UTC().Format(time.RFC3339),
		User:        loginUser{ID: result.Admin.ID, Username: result.Admin.Username},
	})
}

// Validate handles GET /api/auth/validate (behind auth.RequireAuth).
// It echoes the decoded identity and a truncated form of the token used.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	rawToken, _ := auth.RawTokenFromContext(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Token is valid",
		"user": loginUser{
			ID:       claims.UserID,
			Username: claims.Username,
		},
		"token": auth.Preview(rawToken),
	})
}
