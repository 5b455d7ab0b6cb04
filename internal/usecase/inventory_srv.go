package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/request"
	"garage-booking/internal/dto/response"
	"garage-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService manages the sellable master data: oil types with their
// package prices, oil filters, battery types, and accessories.
type InventoryService interface {
	CreateOilType(ctx context.Context, req *request.OilTypeRequest) (*response.OilTypeResponse, error)
	GetOilTypes(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.OilTypeResponse], error)
	GetOilTypeByID(ctx context.Context, id uuid.UUID) (*response.OilTypeResponse, error)
	UpdateOilType(ctx context.Context, id uuid.UUID, req *request.OilTypeUpdateRequest) (*response.OilTypeResponse, error)
	DeleteOilType(ctx context.Context, id uuid.UUID) error

	CreateOilFilter(ctx context.Context, req *request.OilFilterRequest) (*response.OilFilterResponse, error)
	GetOilFilters(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.OilFilterResponse], error)
	UpdateOilFilter(ctx context.Context, id uuid.UUID, req *request.OilFilterUpdateRequest) (*response.OilFilterResponse, error)
	DeleteOilFilter(ctx context.Context, id uuid.UUID) error

	CreateBatteryType(ctx context.Context, req *request.BatteryTypeRequest) (*response.BatteryTypeResponse, error)
	GetBatteryTypes(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BatteryTypeResponse], error)
	UpdateBatteryType(ctx context.Context, id uuid.UUID, req *request.BatteryTypeUpdateRequest) (*response.BatteryTypeResponse, error)
	DeleteBatteryType(ctx context.Context, id uuid.UUID) error

	CreateAccessory(ctx context.Context, req *request.AccessoryRequest) (*response.AccessoryResponse, error)
	GetAccessories(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.AccessoryResponse], error)
	UpdateAccessory(ctx context.Context, id uuid.UUID, req *request.AccessoryUpdateRequest) (*response.AccessoryResponse, error)
	DeleteAccessory(ctx context.Context, id uuid.UUID) error
}

type inventoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInventoryService(repo *repository.Repository, log *zap.Logger) InventoryService {
	return &inventoryService{
		repo: repo,
		log:  log,
	}
}

// ==================== OIL TYPES ====================

func (s *inventoryService) CreateOilType(ctx context.Context, req *request.OilTypeRequest) (*response.OilTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create oil type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.OilType.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check oil type name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check oil type name")
	}
	if existing != nil {
		return nil, fmt.Errorf("oil type name already exists")
	}

	now := time.Now()
	oilType := &entity.OilType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Price4L:       req.Price4L,
		Price1L:       req.Price1L,
		PricePerLiter: req.PricePerLiter,
		Has4L:         req.Has4L,
		Has1L:         req.Has1L,
		HasBulk:       req.HasBulk,
	}

	if err := s.repo.OilType.Create(ctx, oilType); err != nil {
		s.log.Error("Failed to create oil type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create oil type")
	}

	s.log.Info("Oil type created", zap.String("oil_type_id", oilType.ID.String()), zap.String("name", oilType.Name))

	resp := response.OilTypeToResponse(oilType)
	return &resp, nil
}

func (s *inventoryService) GetOilTypes(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.OilTypeResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	oilTypes, err := s.repo.OilType.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list oil types", zap.Error(err))
		return nil, fmt.Errorf("failed to list oil types")
	}

	total, err := s.repo.OilType.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count oil types", zap.Error(err))
		return nil, fmt.Errorf("failed to list oil types")
	}

	items := make([]response.OilTypeResponse, 0, len(oilTypes))
	for _, o := range oilTypes {
		items = append(items, response.OilTypeToResponse(o))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *inventoryService) GetOilTypeByID(ctx context.Context, id uuid.UUID) (*response.OilTypeResponse, error) {
	oilType, err := s.repo.OilType.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find oil type", zap.Error(err), zap.String("oil_type_id", id.String()))
		return nil, fmt.Errorf("failed to find oil type")
	}
	if oilType == nil {
		return nil, fmt.Errorf("oil type not found")
	}

	resp := response.OilTypeToResponse(oilType)
	return &resp, nil
}

func (s *inventoryService) UpdateOilType(ctx context.Context, id uuid.UUID, req *request.OilTypeUpdateRequest) (*response.OilTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update oil type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	oilType, err := s.repo.OilType.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find oil type", zap.Error(err), zap.String("oil_type_id", id.String()))
		return nil, fmt.Errorf("failed to find oil type")
	}
	if oilType == nil {
		return nil, fmt.Errorf("oil type not found")
	}

	if req.Name != nil {
		existing, err := s.repo.OilType.FindByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("Failed to check oil type name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check oil type name")
		}
		if existing != nil && existing.ID != oilType.ID {
			return nil, fmt.Errorf("oil type name already exists")
		}
		oilType.Name = *req.Name
	}
	if req.Price4L != nil {
		oilType.Price4L = *req.Price4L
	}
	if req.Price1L != nil {
		oilType.Price1L = *req.Price1L
	}
	if req.PricePerLiter != nil {
		oilType.PricePerLiter = *req.PricePerLiter
	}
	if req.Has4L != nil {
		oilType.Has4L = *req.Has4L
	}
	if req.Has1L != nil {
		oilType.Has1L = *req.Has1L
	}
	if req.HasBulk != nil {
		oilType.HasBulk = *req.HasBulk
	}
	oilType.UpdatedAt = time.Now()

	if err := s.repo.OilType.Update(ctx, oilType); err != nil {
		s.log.Error("Failed to update oil type", zap.Error(err), zap.String("oil_type_id", id.String()))
		return nil, fmt.Errorf("failed to update oil type")
	}

	s.log.Info("Oil type updated", zap.String("oil_type_id", id.String()))

	resp := response.OilTypeToResponse(oilType)
	return &resp, nil
}

func (s *inventoryService) DeleteOilType(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.OilType.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete oil type", zap.Error(err), zap.String("oil_type_id", id.String()))
		return err
	}

	s.log.Info("Oil type deleted", zap.String("oil_type_id", id.String()))
	return nil
}

// ==================== OIL FILTERS ====================

func (s *inventoryService) CreateOilFilter(ctx context.Context, req *request.OilFilterRequest) (*response.OilFilterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create oil filter validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.OilFilter.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check oil filter name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check oil filter name")
	}
	if existing != nil {
		return nil, fmt.Errorf("oil filter name already exists")
	}

	now := time.Now()
	filter := &entity.OilFilter{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Price: req.Price,
	}

	if err := s.repo.OilFilter.Create(ctx, filter); err != nil {
		s.log.Error("Failed to create oil filter", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create oil filter")
	}

	s.log.Info("Oil filter created", zap.String("oil_filter_id", filter.ID.String()), zap.String("name", filter.Name))

	resp := response.OilFilterToResponse(filter)
	return &resp, nil
}

func (s *inventoryService) GetOilFilters(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.OilFilterResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	filters, err := s.repo.OilFilter.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list oil filters", zap.Error(err))
		return nil, fmt.Errorf("failed to list oil filters")
	}

	total, err := s.repo.OilFilter.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count oil filters", zap.Error(err))
		return nil, fmt.Errorf("failed to list oil filters")
	}

	items := make([]response.OilFilterResponse, 0, len(filters))
	for _, f := range filters {
		items = append(items, response.OilFilterToResponse(f))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *inventoryService) UpdateOilFilter(ctx context.Context, id uuid.UUID, req *request.OilFilterUpdateRequest) (*response.OilFilterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update oil filter validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter, err := s.repo.OilFilter.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find oil filter", zap.Error(err), zap.String("oil_filter_id", id.String()))
		return nil, fmt.Errorf("failed to find oil filter")
	}
	if filter == nil {
		return nil, fmt.Errorf("oil filter not found")
	}

	if req.Name != nil {
		existing, err := s.repo.OilFilter.FindByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("Failed to check oil filter name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check oil filter name")
		}
		if existing != nil && existing.ID != filter.ID {
			return nil, fmt.Errorf("oil filter name already exists")
		}
		filter.Name = *req.Name
	}
	if req.Price != nil {
		filter.Price = *req.Price
	}
	filter.UpdatedAt = time.Now()

	if err := s.repo.OilFilter.Update(ctx, filter); err != nil {
		s.log.Error("Failed to update oil filter", zap.Error(err), zap.String("oil_filter_id", id.String()))
		return nil, fmt.Errorf("failed to update oil filter")
	}

	s.log.Info("Oil filter updated", zap.String("oil_filter_id", id.String()))

	resp := response.OilFilterToResponse(filter)
	return &resp, nil
}

func (s *inventoryService) DeleteOilFilter(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.OilFilter.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete oil filter", zap.Error(err), zap.String("oil_filter_id", id.String()))
		return err
	}

	s.log.Info("Oil filter deleted", zap.String("oil_filter_id", id.String()))
	return nil
}

// ==================== BATTERY TYPES ====================

func (s *inventoryService) CreateBatteryType(ctx context.Context, req *request.BatteryTypeRequest) (*response.BatteryTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create battery type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.BatteryType.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check battery type name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check battery type name")
	}
	if existing != nil {
		return nil, fmt.Errorf("battery type name already exists")
	}

	now := time.Now()
	battery := &entity.BatteryType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Capacity: req.Capacity,
		Price:    req.Price,
	}

	if err := s.repo.BatteryType.Create(ctx, battery); err != nil {
		s.log.Error("Failed to create battery type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create battery type")
	}

	s.log.Info("Battery type created", zap.String("battery_type_id", battery.ID.String()), zap.String("name", battery.Name))

	resp := response.BatteryTypeToResponse(battery)
	return &resp, nil
}

func (s *inventoryService) GetBatteryTypes(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BatteryTypeResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	batteries, err := s.repo.BatteryType.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list battery types", zap.Error(err))
		return nil, fmt.Errorf("failed to list battery types")
	}

	total, err := s.repo.BatteryType.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count battery types", zap.Error(err))
		return nil, fmt.Errorf("failed to list battery types")
	}

	items := make([]response.BatteryTypeResponse, 0, len(batteries))
	for _, b := range batteries {
		items = append(items, response.BatteryTypeToResponse(b))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *inventoryService) UpdateBatteryType(ctx context.Context, id uuid.UUID, req *request.BatteryTypeUpdateRequest) (*response.BatteryTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update battery type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	battery, err := s.repo.BatteryType.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find battery type", zap.Error(err), zap.String("battery_type_id", id.String()))
		return nil, fmt.Errorf("failed to find battery type")
	}
	if battery == nil {
		return nil, fmt.Errorf("battery type not found")
	}

	if req.Name != nil {
		existing, err := s.repo.BatteryType.FindByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("Failed to check battery type name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check battery type name")
		}
		if existing != nil && existing.ID != battery.ID {
			return nil, fmt.Errorf("battery type name already exists")
		}
		battery.Name = *req.Name
	}
	if req.Capacity != nil {
		battery.Capacity = req.Capacity
	}
	if req.Price != nil {
		battery.Price = *req.Price
	}
	battery.UpdatedAt = time.Now()

	if err := s.repo.BatteryType.Update(ctx, battery); err != nil {
		s.log.Error("Failed to update battery type", zap.Error(err), zap.String("battery_type_id", id.String()))
		return nil, fmt.Errorf("failed to update battery type")
	}

	s.log.Info("Battery type updated", zap.String("battery_type_id", id.String()))

	resp := response.BatteryTypeToResponse(battery)
	return &resp, nil
}

func (s *inventoryService) DeleteBatteryType(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.BatteryType.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete battery type", zap.Error(err), zap.String("battery_type_id", id.String()))
		return err
	}

	s.log.Info("Battery type deleted", zap.String("battery_type_id", id.String()))
	return nil
}

// ==================== ACCESSORIES ====================

func (s *inventoryService) CreateAccessory(ctx context.Context, req *request.AccessoryRequest) (*response.AccessoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create accessory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Accessory.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check accessory name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check accessory name")
	}
	if existing != nil {
		return nil, fmt.Errorf("accessory name already exists")
	}

	now := time.Now()
	accessory := &entity.Accessory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	}

	if err := s.repo.Accessory.Create(ctx, accessory); err != nil {
		s.log.Error("Failed to create accessory", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create accessory")
	}

	s.log.Info("Accessory created", zap.String("accessory_id", accessory.ID.String()), zap.String("name", accessory.Name))

	resp := response.AccessoryToResponse(accessory)
	return &resp, nil
}

func (s *inventoryService) GetAccessories(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.AccessoryResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	accessories, err := s.repo.Accessory.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list accessories", zap.Error(err))
		return nil, fmt.Errorf("failed to list accessories")
	}

	total, err := s.repo.Accessory.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count accessories", zap.Error(err))
		return nil, fmt.Errorf("failed to list accessories")
	}

	items := make([]response.AccessoryResponse, 0, len(accessories))
	for _, a := range accessories {
		items = append(items, response.AccessoryToResponse(a))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *inventoryService) UpdateAccessory(ctx context.Context, id uuid.UUID, req *request.AccessoryUpdateRequest) (*response.AccessoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update accessory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	accessory, err := s.repo.Accessory.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find accessory", zap.Error(err), zap.String("accessory_id", id.String()))
		return nil, fmt.Errorf("failed to find accessory")
	}
	if accessory == nil {
		return nil, fmt.Errorf("accessory not found")
	}

	if req.Name != nil {
		existing, err := s.repo.Accessory.FindByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("Failed to check accessory name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check accessory name")
		}
		if existing != nil && existing.ID != accessory.ID {
			return nil, fmt.Errorf("accessory name already exists")
		}
		accessory.Name = *req.Name
	}
	if req.Price != nil {
		accessory.Price = *req.Price
	}
	if req.QuantityAvailable != nil {
		accessory.QuantityAvailable = req.QuantityAvailable
	}
	accessory.UpdatedAt = time.Now()

	if err := s.repo.Accessory.Update(ctx, accessory); err != nil {
		s.log.Error("Failed to update accessory", zap.Error(err), zap.String("accessory_id", id.String()))
		return nil, fmt.Errorf("failed to update accessory")
	}

	s.log.Info("Accessory updated", zap.String("accessory_id", id.String()))

	resp := response.AccessoryToResponse(accessory)
	return &resp, nil
}

func (s *inventoryService) DeleteAccessory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Accessory.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete accessory", zap.Error(err), zap.String("accessory_id", id.String()))
		return err
	}

	s.log.Info("Accessory deleted", zap.String("accessory_id", id.String()))
	return nil
}
