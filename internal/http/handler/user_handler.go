package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	userService *service.UserService
	resp        *Responder
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *service.UserService, resp *Responder) *UserHandler {
	return &UserHandler{
		userService: userService,
		resp:        resp,
	}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.UserDTO}
// @Failure 401 {object} domain.Response
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.resp.Error(w, r, err, "Failed to list users")
		return
	}
	h.resp.Success(w, http.StatusOK, users, "")
}

// GetByID godoc
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} domain.Response{data=domain.UserDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get user")
		return
	}
	h.resp.Success(w, http.StatusOK, user, "")
}

// Create godoc
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "User data"
// @Success 201 {object} domain.Response{data=domain.UserDTO}
// @Failure 400 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to create user")
		return
	}
	h.resp.Success(w, http.StatusCreated, user, "User created successfully")
}

// Update godoc
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Param request body domain.UpdateUserRequest true "Fields to change"
// @Success 200 {object} domain.Response{data=domain.UserDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "user")
	if !ok {
		return
	}
	var req domain.UpdateUserRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), id, &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to update user")
		return
	}
	h.resp.Success(w, http.StatusOK, user, "User updated successfully")
}
