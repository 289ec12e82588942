package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	resp        *Responder
}

func NewAuthHandler(authService *service.AuthService, resp *Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		resp:        resp,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Account data"
// @Success 201 {object} domain.Response{data=domain.AuthResponseDTO}
// @Failure 400 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to register user")
		return
	}

	h.resp.Success(w, http.StatusCreated, result, "User registered successfully")
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.Response{data=domain.AuthResponseDTO}
// @Failure 400 {object} domain.Response
// @Failure 401 {object} domain.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to log in")
		return
	}

	h.resp.Success(w, http.StatusOK, result, "Login successful")
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.Response{data=domain.UserDTO}
// @Failure 401 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.FromContext(r.Context())
	if !ok {
		h.resp.Fail(w, http.StatusUnauthorized, "Authentication required. Please login first.")
		return
	}

	profile, err := h.authService.Profile(r.Context(), user.UserID)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get profile")
		return
	}

	h.resp.Success(w, http.StatusOK, profile, "")
}
