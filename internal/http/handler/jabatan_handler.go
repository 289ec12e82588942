package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

// JabatanHandler handles HTTP requests for positions
type JabatanHandler struct {
	jabatanService *service.JabatanService
	resp           *Responder
}

// NewJabatanHandler creates a new jabatan handler instance
func NewJabatanHandler(jabatanService *service.JabatanService, resp *Responder) *JabatanHandler {
	return &JabatanHandler{
		jabatanService: jabatanService,
		resp:           resp,
	}
}

// List godoc
// @Summary List jabatan ordered by urutan
// @Tags Jabatan
// @Produce json
// @Param show_all query bool false "Include inactive jabatan"
// @Success 200 {object} domain.Response{data=[]domain.JabatanDTO}
// @Security BearerAuth
// @Router /api/jabatan [get]
func (h *JabatanHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, activeFilter(r))
}

// ListActive godoc
// @Summary List active jabatan
// @Tags Jabatan
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.JabatanDTO}
// @Security BearerAuth
// @Router /api/jabatan/active [get]
func (h *JabatanHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.OnlyActive)
}

// ListInactive godoc
// @Summary List inactive jabatan
// @Tags Jabatan
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.JabatanDTO}
// @Security BearerAuth
// @Router /api/jabatan/inactive [get]
func (h *JabatanHandler) ListInactive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.OnlyInactive)
}

func (h *JabatanHandler) list(w http.ResponseWriter, r *http.Request, filter domain.ActiveFilter) {
	items, err := h.jabatanService.List(r.Context(), filter)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to list jabatan")
		return
	}
	h.resp.Success(w, http.StatusOK, items, "")
}

// GetByID godoc
// @Summary Get jabatan by ID
// @Tags Jabatan
// @Produce json
// @Param id path string true "Jabatan ID" format(uuid)
// @Param show_all query bool false "Also find inactive jabatan"
// @Success 200 {object} domain.Response{data=domain.JabatanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/jabatan/{id} [get]
func (h *JabatanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "jabatan")
	if !ok {
		return
	}

	item, err := h.jabatanService.GetByID(r.Context(), id, activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get jabatan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "")
}

// Create godoc
// @Summary Create jabatan
// @Tags Jabatan
// @Accept json
// @Produce json
// @Param request body domain.CreateJabatanRequest true "Jabatan data"
// @Success 201 {object} domain.Response{data=domain.JabatanDTO}
// @Failure 400 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/jabatan [post]
func (h *JabatanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateJabatanRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	item, err := h.jabatanService.Create(r.Context(), actorID(r), &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to create jabatan")
		return
	}
	h.resp.Success(w, http.StatusCreated, item, "Jabatan created successfully")
}

// Update godoc
// @Summary Update jabatan
// @Tags Jabatan
// @Accept json
// @Produce json
// @Param id path string true "Jabatan ID" format(uuid)
// @Param request body domain.UpdateJabatanRequest true "Fields to change"
// @Success 200 {object} domain.Response{data=domain.JabatanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/jabatan/{id} [put]
func (h *JabatanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "jabatan")
	if !ok {
		return
	}
	var req domain.UpdateJabatanRequest
	if !h.resp.decodeJSON(w, r, &req) {
		return
	}

	item, err := h.jabatanService.Update(r.Context(), id, &req)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to update jabatan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "Jabatan updated successfully")
}

// Delete godoc
// @Summary Delete jabatan
// @Description Fails with 409 while any karyawan holds the jabatan
// @Tags Jabatan
// @Produce json
// @Param id path string true "Jabatan ID" format(uuid)
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/jabatan/{id} [delete]
func (h *JabatanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "jabatan")
	if !ok {
		return
	}

	if err := h.jabatanService.Delete(r.Context(), id); err != nil {
		h.resp.Error(w, r, err, "Failed to delete jabatan")
		return
	}
	h.resp.Success(w, http.StatusOK, nil, "Jabatan deleted successfully")
}
