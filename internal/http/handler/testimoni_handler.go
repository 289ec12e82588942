package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

// TestimoniHandler handles HTTP requests for testimonials
type TestimoniHandler struct {
	testimoniService *service.TestimoniService
	resp             *Responder
}

// NewTestimoniHandler creates a new testimoni handler instance
func NewTestimoniHandler(testimoniService *service.TestimoniService, resp *Responder) *TestimoniHandler {
	return &TestimoniHandler{
		testimoniService: testimoniService,
		resp:             resp,
	}
}

// List godoc
// @Summary List testimoni
// @Description Active testimoni by default; show_all=true includes inactive ones
// @Tags Testimoni
// @Produce json
// @Param show_all query bool false "Include inactive testimoni"
// @Success 200 {object} domain.Response{data=[]domain.TestimoniDTO}
// @Security BearerAuth
// @Router /api/testimoni [get]
func (h *TestimoniHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.testimoniService.List(r.Context(), activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to list testimoni")
		return
	}
	h.resp.Success(w, http.StatusOK, items, "")
}

// GetByID godoc
// @Summary Get testimoni by ID
// @Tags Testimoni
// @Produce json
// @Param id path string true "Testimoni ID" format(uuid)
// @Param show_all query bool false "Also find inactive testimoni"
// @Success 200 {object} domain.Response{data=domain.TestimoniDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/testimoni/{id} [get]
func (h *TestimoniHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "testimoni")
	if !ok {
		return
	}

	item, err := h.testimoniService.GetByID(r.Context(), id, activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get testimoni")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "")
}

// Create godoc
// @Summary Create testimoni
// @Tags Testimoni
// @Accept json
// @Produce json
// @Param request body domain.CreateTestimoniRequest true "Testimoni data"
// @Success 201 {object} domain.Response{data=domain.TestimoniDTO}
// @Failure 400 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/testimoni [post]
func (h *TestimoniHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTestimoniRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	item, err := h.testimoniService.Create(r.Context(), actorID(r), &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to create testimoni")
		return
	}
	h.resp.Success(w, http.StatusCreated, item, "Testimoni created successfully")
}

// Update godoc
// @Summary Update testimoni
// @Description Only the creator may update a testimoni
// @Tags Testimoni
// @Accept json
// @Produce json
// @Param id path string true "Testimoni ID" format(uuid)
// @Param request body domain.UpdateTestimoniRequest true "Fields to change"
// @Success 200 {object} domain.Response{data=domain.TestimoniDTO}
// @Failure 400 {object} domain.Response
// @Failure 403 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/testimoni/{id} [put]
func (h *TestimoniHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "testimoni")
	if !ok {
		return
	}
	var req domain.UpdateTestimoniRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	item, deactivated, err := h.testimoniService.Update(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to update testimoni")
		return
	}

	message := "Testimoni updated successfully"
	if deactivated {
		message = "Testimoni deactivated successfully"
	}
	h.resp.Success(w, http.StatusOK, item, message)
}
