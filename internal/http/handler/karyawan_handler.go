package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

const photoField = "photo"

// KaryawanHandler handles HTTP requests for employees
type KaryawanHandler struct {
	karyawanService *service.KaryawanService
	resp            *Responder
	maxBody         int64
}

// NewKaryawanHandler creates a new karyawan handler instance
func NewKaryawanHandler(karyawanService *service.KaryawanService, resp *Responder, maxBody int64) *KaryawanHandler {
	return &KaryawanHandler{
		karyawanService: karyawanService,
		resp:            resp,
		maxBody:         maxBody,
	}
}

// List godoc
// @Summary List karyawan with their jabatan
// @Tags Karyawan
// @Produce json
// @Param show_all query bool false "Include inactive karyawan"
// @Success 200 {object} domain.Response{data=[]domain.KaryawanDTO}
// @Security BearerAuth
// @Router /api/karyawan [get]
func (h *KaryawanHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, activeFilter(r))
}

// ListActive godoc
// @Summary List active karyawan
// @Tags Karyawan
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.KaryawanDTO}
// @Security BearerAuth
// @Router /api/karyawan/active [get]
func (h *KaryawanHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.OnlyActive)
}

// ListInactive godoc
// @Summary List inactive karyawan
// @Tags Karyawan
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.KaryawanDTO}
// @Security BearerAuth
// @Router /api/karyawan/inactive [get]
func (h *KaryawanHandler) ListInactive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.OnlyInactive)
}

func (h *KaryawanHandler) list(w http.ResponseWriter, r *http.Request, filter domain.ActiveFilter) {
	items, err := h.karyawanService.List(r.Context(), filter)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to list karyawan")
		return
	}
	h.resp.Success(w, http.StatusOK, items, "")
}

// GetByID godoc
// @Summary Get karyawan by ID
// @Tags Karyawan
// @Produce json
// @Param id path string true "Karyawan ID" format(uuid)
// @Param show_all query bool false "Also find inactive karyawan"
// @Success 200 {object} domain.Response{data=domain.KaryawanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/karyawan/{id} [get]
func (h *KaryawanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "karyawan")
	if !ok {
		return
	}

	item, err := h.karyawanService.GetByID(r.Context(), id, activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get karyawan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "")
}

// Create godoc
// @Summary Create karyawan
// @Tags Karyawan
// @Accept multipart/form-data
// @Produce json
// @Param nama_karyawan formData string true "Name"
// @Param no_telepon formData string true "Phone number"
// @Param email formData string true "Email"
// @Param tanggal_masuk formData string true "Join date (YYYY-MM-DD)"
// @Param id_jabatan formData string true "Jabatan ID" format(uuid)
// @Param is_active formData bool false "Active flag"
// @Param photo formData file true "Photo (JPEG, PNG or WebP)"
// @Success 201 {object} domain.Response{data=domain.KaryawanDTO}
// @Failure 400 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/karyawan [post]
func (h *KaryawanHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.resp.parseForm(w, r, h.maxBody, photoField)
	if !ok {
		return
	}
	var req domain.CreateKaryawanRequest
	if !h.resp.decodeForm(w, form, &req) {
		return
	}

	item, err := h.karyawanService.Create(r.Context(), actorID(r), &req, form.uploads(photoField))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to create karyawan")
		return
	}
	h.resp.Success(w, http.StatusCreated, item, "Karyawan created successfully")
}

// Update godoc
// @Summary Update karyawan
// @Description A new photo replaces the old one
// @Tags Karyawan
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Karyawan ID" format(uuid)
// @Param nama_karyawan formData string false "Name"
// @Param no_telepon formData string false "Phone number"
// @Param email formData string false "Email"
// @Param tanggal_masuk formData string false "Join date (YYYY-MM-DD)"
// @Param id_jabatan formData string false "Jabatan ID" format(uuid)
// @Param is_active formData bool false "Active flag"
// @Param photo formData file false "Replacement photo"
// @Success 200 {object} domain.Response{data=domain.KaryawanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Failure 409 {object} domain.Response
// @Security BearerAuth
// @Router /api/karyawan/{id} [put]
func (h *KaryawanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "karyawan")
	if !ok {
		return
	}
	form, ok := h.resp.parseForm(w, r, h.maxBody, photoField)
	if !ok {
		return
	}
	var req domain.UpdateKaryawanRequest
	if !h.resp.decodeForm(w, form, &req) {
		return
	}

	item, err := h.karyawanService.Update(r.Context(), id, &req, form.uploads(photoField))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to update karyawan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "Karyawan updated successfully")
}

// SoftDelete godoc
// @Summary Deactivate karyawan
// @Tags Karyawan
// @Produce json
// @Param id path string true "Karyawan ID" format(uuid)
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/karyawan/{id}/soft-delete [patch]
func (h *KaryawanHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "karyawan")
	if !ok {
		return
	}
	if err := h.karyawanService.SoftDelete(r.Context(), id); err != nil {
		h.resp.Error(w, r, err, "Failed to deactivate karyawan")
		return
	}
	h.resp.Success(w, http.StatusOK, nil, "Karyawan deactivated successfully")
}

// Restore godoc
// @Summary Restore a deactivated karyawan
// @Tags Karyawan
// @Produce json
// @Param id path string true "Karyawan ID" format(uuid)
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/karyawan/{id}/restore [patch]
func (h *KaryawanHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "karyawan")
	if !ok {
		return
	}
	if err := h.karyawanService.Restore(r.Context(), id); err != nil {
		h.resp.Error(w, r, err, "Failed to restore karyawan")
		return
	}
	h.resp.Success(w, http.StatusOK, nil, "Karyawan restored successfully")
}

// Delete godoc
// @Summary Permanently delete karyawan
// @Description Removes the row and its photo file
// @Tags Karyawan
// @Produce json
// @Param id path string true "Karyawan ID" format(uuid)
// @Success 200 {object} domain.Response
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/karyawan/{id} [delete]
func (h *KaryawanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "karyawan")
	if !ok {
		return
	}
	if err := h.karyawanService.HardDelete(r.Context(), id); err != nil {
		h.resp.Error(w, r, err, "Failed to delete karyawan")
		return
	}
	h.resp.Success(w, http.StatusOK, nil, "Karyawan permanently deleted")
}
