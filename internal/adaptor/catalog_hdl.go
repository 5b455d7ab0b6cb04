package adaptor

import (
	"encoding/json"
	"net/http"

	"garage-booking/internal/dto/request"
	"garage-booking/internal/usecase"
	"garage-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== BRANDS ====================

// CreateBrand handles POST /api/catalog/brands (admin only)
func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req request.BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	brand, err := h.service.CreateBrand(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create brand")
		return
	}

	utils.ResponseCreated(w, "success", brand)
}

// GetBrands handles GET /api/catalog/brands (protected)
func (h *CatalogHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	brands, err := h.service.GetBrands(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "get brands")
		return
	}

	utils.ResponseSuccess(w, "success", brands)
}

// GetBrandByID handles GET /api/catalog/brands/{id} (protected)
func (h *CatalogHandler) GetBrandByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand id", nil)
		return
	}

	brand, err := h.service.GetBrandByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get brand")
		return
	}

	utils.ResponseSuccess(w, "success", brand)
}

// UpdateBrand handles PUT /api/catalog/brands/{id} (admin only)
func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand id", nil)
		return
	}

	var req request.BrandUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	brand, err := h.service.UpdateBrand(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update brand")
		return
	}

	utils.ResponseSuccess(w, "success", brand)
}

// DeleteBrand handles DELETE /api/catalog/brands/{id} (admin only)
func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand id", nil)
		return
	}

	if err := h.service.DeleteBrand(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete brand")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== VEHICLE MODELS ====================

// CreateVehicleModel handles POST /api/catalog/models (admin only)
func (h *CatalogHandler) CreateVehicleModel(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	model, err := h.service.CreateVehicleModel(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create vehicle model")
		return
	}

	utils.ResponseCreated(w, "success", model)
}

// GetVehicleModels handles GET /api/catalog/models (protected)
func (h *CatalogHandler) GetVehicleModels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	models, err := h.service.GetVehicleModels(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "get vehicle models")
		return
	}

	utils.ResponseSuccess(w, "success", models)
}

// GetVehicleModelsByBrand handles GET /api/catalog/brands/{id}/models (protected)
func (h *CatalogHandler) GetVehicleModelsByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid brand id", nil)
		return
	}

	models, err := h.service.GetVehicleModelsByBrand(r.Context(), brandID)
	if err != nil {
		handleServiceError(h.log, w, err, "get brand models")
		return
	}

	utils.ResponseSuccess(w, "success", models)
}

// UpdateVehicleModel handles PUT /api/catalog/models/{id} (admin only)
func (h *CatalogHandler) UpdateVehicleModel(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid model id", nil)
		return
	}

	var req request.VehicleModelUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	model, err := h.service.UpdateVehicleModel(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update vehicle model")
		return
	}

	utils.ResponseSuccess(w, "success", model)
}

// DeleteVehicleModel handles DELETE /api/catalog/models/{id} (admin only)
func (h *CatalogHandler) DeleteVehicleModel(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid model id", nil)
		return
	}

	if err := h.service.DeleteVehicleModel(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete vehicle model")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
