package handler

import (
	"fmt"
	"net/http"

	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/service"
)

const photosField = "photos"

// UploadBodyLimit is the largest multipart body accepted: a full batch of
// maximum size files plus room for the text fields
func UploadBodyLimit(cfg *config.StorageConfig) int64 {
	return cfg.MaxFileSizeBytes()*int64(cfg.MaxFilesPerRequest) + 1<<20
}

// KegiatanHandler handles HTTP requests for activities
type KegiatanHandler struct {
	kegiatanService *service.KegiatanService
	resp            *Responder
	maxBody         int64
}

// NewKegiatanHandler creates a new kegiatan handler instance
func NewKegiatanHandler(kegiatanService *service.KegiatanService, resp *Responder, maxBody int64) *KegiatanHandler {
	return &KegiatanHandler{
		kegiatanService: kegiatanService,
		resp:            resp,
		maxBody:         maxBody,
	}
}

// List godoc
// @Summary List kegiatan with photos
// @Tags Kegiatan
// @Produce json
// @Param show_all query bool false "Include inactive kegiatan"
// @Success 200 {object} domain.Response{data=[]domain.KegiatanDTO}
// @Security BearerAuth
// @Router /api/kegiatan [get]
func (h *KegiatanHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, activeFilter(r))
}

// ListActive godoc
// @Summary List active kegiatan
// @Tags Kegiatan
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.KegiatanDTO}
// @Security BearerAuth
// @Router /api/kegiatan/active [get]
func (h *KegiatanHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.OnlyActive)
}

// ListInactive godoc
// @Summary List inactive kegiatan
// @Tags Kegiatan
// @Produce json
// @Success 200 {object} domain.Response{data=[]domain.KegiatanDTO}
// @Security BearerAuth
// @Router /api/kegiatan/inactive [get]
func (h *KegiatanHandler) ListInactive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.OnlyInactive)
}

func (h *KegiatanHandler) list(w http.ResponseWriter, r *http.Request, filter domain.ActiveFilter) {
	items, err := h.kegiatanService.List(r.Context(), filter)
	if err != nil {
		h.resp.Error(w, r, err, "Failed to list kegiatan")
		return
	}
	h.resp.Success(w, http.StatusOK, items, "")
}

// GetByID godoc
// @Summary Get kegiatan by ID
// @Tags Kegiatan
// @Produce json
// @Param id path string true "Kegiatan ID" format(uuid)
// @Param show_all query bool false "Also find inactive kegiatan"
// @Success 200 {object} domain.Response{data=domain.KegiatanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/kegiatan/{id} [get]
func (h *KegiatanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "kegiatan")
	if !ok {
		return
	}

	item, err := h.kegiatanService.GetByID(r.Context(), id, activeFilter(r))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to get kegiatan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "")
}

// Create godoc
// @Summary Create kegiatan
// @Description Multipart form; at least one file in photos is required
// @Tags Kegiatan
// @Accept multipart/form-data
// @Produce json
// @Param nama_kegiatan formData string true "Name"
// @Param deskripsi_singkat formData string true "Short description"
// @Param tanggal_kegiatan formData string true "Date (YYYY-MM-DD)"
// @Param lokasi_kegiatan formData string true "Location"
// @Param is_active formData bool false "Active flag"
// @Param photos formData file true "Photos (JPEG, PNG or WebP)"
// @Success 201 {object} domain.Response{data=domain.KegiatanDTO}
// @Failure 400 {object} domain.Response
// @Security BearerAuth
// @Router /api/kegiatan [post]
func (h *KegiatanHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.resp.parseForm(w, r, h.maxBody, photosField)
	if !ok {
		return
	}
	var req domain.CreateKegiatanRequest
	if !h.resp.decodeForm(w, form, &req) {
		return
	}

	item, err := h.kegiatanService.Create(r.Context(), actorID(r), &req, form.uploads(photosField))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to create kegiatan")
		return
	}
	h.resp.Success(w, http.StatusCreated, item,
		fmt.Sprintf("Kegiatan created successfully with %d photo(s)", len(item.Photos)))
}

// Update godoc
// @Summary Update kegiatan
// @Description Photos in removed_photos are dropped and new photos appended; the result must keep at least one photo
// @Tags Kegiatan
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Kegiatan ID" format(uuid)
// @Param nama_kegiatan formData string false "Name"
// @Param deskripsi_singkat formData string false "Short description"
// @Param tanggal_kegiatan formData string false "Date (YYYY-MM-DD)"
// @Param lokasi_kegiatan formData string false "Location"
// @Param is_active formData bool false "Active flag"
// @Param removed_photos formData string false "Photo ids to remove (JSON array or comma separated)"
// @Param photos formData file false "Photos to add"
// @Success 200 {object} domain.Response{data=domain.KegiatanDTO}
// @Failure 400 {object} domain.Response
// @Failure 404 {object} domain.Response
// @Security BearerAuth
// @Router /api/kegiatan/{id} [put]
func (h *KegiatanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resp.parseID(w, r, "kegiatan")
	if !ok {
		return
	}
	form, ok := h.resp.parseForm(w, r, h.maxBody, photosField)
	if !ok {
		return
	}
	var req domain.UpdateKegiatanRequest
	if !h.resp.decodeForm(w, form, &req) {
		return
	}

	item, err := h.kegiatanService.Update(r.Context(), id, &req, form.uploads(photosField))
	if err != nil {
		h.resp.Error(w, r, err, "Failed to update kegiatan")
		return
	}
	h.resp.Success(w, http.StatusOK, item, "Kegiatan updated successfully")
}
