package handler

import (
	"net/http"

	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

// LaporanHandler handles HTTP requests for project reports
type LaporanHandler struct {
	laporanService *service.LaporanService
	resp           *Responder
	maxBody        int64
}

// NewLaporanHandler creates a new laporan handler instance
func NewLaporanHandler(laporanService *service.LaporanService, resp *Responder, maxBody int64) *LaporanHandler {
	return &LaporanHandler{
		laporanService: laporanService,
		resp:           resp,
		maxBody:        maxBody,
	}
}

// List godoc
// @Summary List laporan with detail and photos
// @Tags Laporan
// @Produce json
// @Param show_all query bool false "Include inactive laporan"
// @Success 200 {object} domain.Response{data=[]domain.LaporanDTO}
// @Security BearerAuth
// @Router /api/laporan [get]
func (h *LaporanHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.laporanService.List(r.Context(), activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to list laporan")
		return
	}
	h.resp.Success(w, http.StatusOK, items, "")
}

// GetByID godoc
// @Summary Get laporan by ID
// @Tags Laporan
// @Produce json
// @Param id path string true "Laporan ID" format(uuid)
// @Param show_all query bool false "Also find inactive laporan"
// @Success 200 {object} domain.Response{data=domain.LaporanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/laporan/{id} [get]
func (h *LaporanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "laporan")
	if !ok {
		return
	}

	item, err := h.laporanService.GetByID(r.Context(), id, activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get laporan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "")
}

// Create godoc
// @Summary Create laporan
// @Description deskripsi_singkat is derived from deskripsi_detail when omitted
// @Tags Laporan
// @Accept multipart/form-data
// @Produce json
// @Param nama_proyek formData string true "Project name"
// @Param deskripsi_singkat formData string false "Summary"
// @Param deskripsi_detail formData string true "Full description"
// @Param tanggal_mulai formData string true "Start date (YYYY-MM-DD)"
// @Param tanggal_selesai formData string true "End date (YYYY-MM-DD)"
// @Param lokasi formData string true "Location"
// @Param client formData string true "Client"
// @Param pelayanan formData string true "Service"
// @Param industri formData string true "Industry"
// @Param is_active formData bool false "Active flag"
// @Param photos formData file false "Photos (JPEG, PNG or WebP)"
// @Success 201 {object} domain.Response{data=domain.LaporanDTO}
// @Failure 400 {object} domain.Response
// @Security BearerAuth
// @Router /api/laporan [post]
func (h *LaporanHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.resp.parseForm(w, r, h.maxBody, photosField)
	if !ok {
		return
	}
	var req domain.CreateLaporanRequest
	if !h.resp.decodeForm(w, form, &req) {
		return
	}

	item, err := h.laporanService.Create(r.Context(), actorID(r), &req, form.uploads(photosField))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to create laporan")
		return
	}
	h.resp.Success(w, http.StatusCreated, item, "Laporan created successfully")
}

// Update godoc
// @Summary Update laporan
// @Description Detail fields create the detail row when missing; deskripsi_singkat is always derived from deskripsi_detail and is rejected here. removed_photos are dropped and new photos appended
// @Tags Laporan
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Laporan ID" format(uuid)
// @Param nama_proyek formData string false "Project name"
// @Param deskripsi_detail formData string false "Full description"
// @Param tanggal_mulai formData string false "Start date (YYYY-MM-DD)"
// @Param tanggal_selesai formData string false "End date (YYYY-MM-DD)"
// @Param lokasi formData string false "Location"
// @Param client formData string false "Client"
// @Param pelayanan formData string false "Service"
// @Param industri formData string false "Industry"
// @Param is_active formData bool false "Active flag"
// @Param removed_photos formData string false "Photo ids to remove (JSON array or comma separated)"
// @Param photos formData file false "Photos to add"
// @Success 200 {object} domain.Response{data=domain.LaporanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/laporan/{id} [put]
func (h *LaporanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "laporan")
	if !ok {
		return
	}
	form, ok := h.resp.parseForm(w, r, h.maxBody, photosField)
	if !ok {
		return
	}
	var req domain.UpdateLaporanRequest
	if !h.resp.decodeForm(w, form, &req) {
		return
	}

	item, err := h.laporanService.Update(r.Context(), id, &req, form.uploads(photosField))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to update laporan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "Laporan updated successfully")
}
