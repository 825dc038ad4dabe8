package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/settleup/settleup/internal/api/dto"
	"github.com/settleup/settleup/internal/auth"
	"github.com/settleup/settleup/internal/models"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, jwtManager: jwtManager}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "a valid email is required")
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "display name is required")
		return
	}

	user, err := h.authenticator.Register(r.Context(), email, req.DisplayName, req.Password)
	switch {
	case errors.Is(err, auth.ErrWeakPassword):
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, err.Error())
		return
	case errors.Is(err, auth.ErrEmailExists):
		WriteError(w, http.StatusConflict, dto.CodeConflict, err.Error())
		return
	case err != nil:
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "registration failed")
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "invalid request body")
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, dto.CodeUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *models.User) {
	token, err := h.jwtManager.Generate(user)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, dto.CodeInternal, "failed to issue token")
		return
	}

	WriteJSON(w, status, dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
		},
	})
}
