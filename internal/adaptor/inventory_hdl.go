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

type InventoryHandler struct {
	service usecase.InventoryService
	log     *zap.Logger
}

func NewInventoryHandler(service usecase.InventoryService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inventory")),
	}
}

// ==================== OIL TYPES ====================

// CreateOilType handles POST /api/catalog/oil-types (admin only)
func (h *InventoryHandler) CreateOilType(w http.ResponseWriter, r *http.Request) {
	var req request.OilTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	oilType, err := h.service.CreateOilType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create oil type")
		return
	}

	utils.ResponseCreated(w, "success", oilType)
}

// GetOilTypes handles GET /api/catalog/oil-types (protected)
func (h *InventoryHandler) GetOilTypes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	oilTypes, err := h.service.GetOilTypes(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "get oil types")
		return
	}

	utils.ResponseSuccess(w, "success", oilTypes)
}

// GetOilTypeByID handles GET /api/catalog/oil-types/{id} (protected)
func (h *InventoryHandler) GetOilTypeByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid oil type id", nil)
		return
	}

	oilType, err := h.service.GetOilTypeByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get oil type")
		return
	}

	utils.ResponseSuccess(w, "success", oilType)
}

// UpdateOilType handles PUT /api/catalog/oil-types/{id} (admin only)
func (h *InventoryHandler) UpdateOilType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid oil type id", nil)
		return
	}

	var req request.OilTypeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	oilType, err := h.service.UpdateOilType(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update oil type")
		return
	}

	utils.ResponseSuccess(w, "success", oilType)
}

// DeleteOilType handles DELETE /api/catalog/oil-types/{id} (admin only)
func (h *InventoryHandler) DeleteOilType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid oil type id", nil)
		return
	}

	if err := h.service.DeleteOilType(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete oil type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== OIL FILTERS ====================

// CreateOilFilter handles POST /api/catalog/oil-filters (admin only)
func (h *InventoryHandler) CreateOilFilter(w http.ResponseWriter, r *http.Request) {
	var req request.OilFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	filter, err := h.service.CreateOilFilter(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create oil filter")
		return
	}

	utils.ResponseCreated(w, "success", filter)
}

// GetOilFilters handles GET /api/catalog/oil-filters (protected)
func (h *InventoryHandler) GetOilFilters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	filters, err := h.service.GetOilFilters(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "get oil filters")
		return
	}

	utils.ResponseSuccess(w, "success", filters)
}

// UpdateOilFilter handles PUT /api/catalog/oil-filters/{id} (admin only)
func (h *InventoryHandler) UpdateOilFilter(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid oil filter id", nil)
		return
	}

	var req request.OilFilterUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	filter, err := h.service.UpdateOilFilter(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update oil filter")
		return
	}

	utils.ResponseSuccess(w, "success", filter)
}

// DeleteOilFilter handles DELETE /api/catalog/oil-filters/{id} (admin only)
func (h *InventoryHandler) DeleteOilFilter(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid oil filter id", nil)
		return
	}

	if err := h.service.DeleteOilFilter(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete oil filter")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== BATTERY TYPES ====================

// CreateBatteryType handles POST /api/catalog/battery-types (admin only)
func (h *InventoryHandler) CreateBatteryType(w http.ResponseWriter, r *http.Request) {
	var req request.BatteryTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	battery, err := h.service.CreateBatteryType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create battery type")
		return
	}

	utils.ResponseCreated(w, "success", battery)
}

// GetBatteryTypes handles GET /api/catalog/battery-types (protected)
func (h *InventoryHandler) GetBatteryTypes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	batteries, err := h.service.GetBatteryTypes(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "get battery types")
		return
	}

	utils.ResponseSuccess(w, "success", batteries)
}

// UpdateBatteryType handles PUT /api/catalog/battery-types/{id} (admin only)
func (h *InventoryHandler) UpdateBatteryType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid battery type id", nil)
		return
	}

	var req request.BatteryTypeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	battery, err := h.service.UpdateBatteryType(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update battery type")
		return
	}

	utils.ResponseSuccess(w, "success", battery)
}

// DeleteBatteryType handles DELETE /api/catalog/battery-types/{id} (admin only)
func (h *InventoryHandler) DeleteBatteryType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid battery type id", nil)
		return
	}

	if err := h.service.DeleteBatteryType(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete battery type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ACCESSORIES ====================

// CreateAccessory handles POST /api/catalog/accessories (admin only)
func (h *InventoryHandler) CreateAccessory(w http.ResponseWriter, r *http.Request) {
	var req request.AccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	accessory, err := h.service.CreateAccessory(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create accessory")
		return
	}

	utils.ResponseCreated(w, "success", accessory)
}

// GetAccessories handles GET /api/catalog/accessories (protected)
func (h *InventoryHandler) GetAccessories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	accessories, err := h.service.GetAccessories(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "get accessories")
		return
	}

	utils.ResponseSuccess(w, "success", accessories)
}

// UpdateAccessory handles PUT /api/catalog/accessories/{id} (admin only)
func (h *InventoryHandler) UpdateAccessory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid accessory id", nil)
		return
	}

	var req request.AccessoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	accessory, err := h.service.UpdateAccessory(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update accessory")
		return
	}

	utils.ResponseSuccess(w, "success", accessory)
}

// DeleteAccessory handles DELETE /api/catalog/accessories/{id} (admin only)
func (h *InventoryHandler) DeleteAccessory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid accessory id", nil)
		return
	}

	if err := h.service.DeleteAccessory(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete accessory")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
