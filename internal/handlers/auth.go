package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Leganyst/booking-platform/internal/config"
	"github.com/Leganyst/booking-platform/internal/dto"
	"github.com/Leganyst/booking-platform/internal/middleware"
	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/service"
	"github.com/Leganyst/booking-platform/internal/utils"
)

// AuthHandler обслуживает регистрацию, вход и профиль.
type AuthHandler struct {
	identity *service.IdentityService
	jwtCfg   *config.JWTConfig
}

func NewAuthHandler(identity *service.IdentityService, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{identity: identity, jwtCfg: jwtCfg}
}

func userResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsHost:      u.IsHost,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// Signup — POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.identity.Signup(r.Context(), service.SignupInput{
		Username:      req.Username,
		Email:         req.Email,
		DisplayName:   req.DisplayName,
		Password:      req.Password,
		PasswordAgain: req.PasswordAgain,
		IsHost:        req.IsHost,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.jwtCfg)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, dto.AuthResponse{Token: token, User: userResponse(user)})
}

// Login — POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.identity.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.jwtCfg)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: userResponse(user)})
}

// UserDetail — GET /api/users/{username}
func (h *AuthHandler) UserDetail(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := h.identity.UserDetail(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, userResponse(user))
}

// UpdateProfile — PATCH /api/users/me
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.identity.UpdateProfile(r.Context(), userID, req.DisplayName, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, userResponse(user))
}
