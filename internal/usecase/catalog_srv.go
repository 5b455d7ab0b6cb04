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

// CatalogService manages the vehicle master data: brands and their models.
type CatalogService interface {
	CreateBrand(ctx context.Context, req *request.BrandRequest) (*response.BrandResponse, error)
	GetBrands(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BrandResponse], error)
	GetBrandByID(ctx context.Context, id uuid.UUID) (*response.BrandResponse, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, req *request.BrandUpdateRequest) (*response.BrandResponse, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error

	CreateVehicleModel(ctx context.Context, req *request.VehicleModelRequest) (*response.VehicleModelResponse, error)
	GetVehicleModels(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.VehicleModelResponse], error)
	GetVehicleModelsByBrand(ctx context.Context, brandID uuid.UUID) ([]response.VehicleModelResponse, error)
	UpdateVehicleModel(ctx context.Context, id uuid.UUID, req *request.VehicleModelUpdateRequest) (*response.VehicleModelResponse, error)
	DeleteVehicleModel(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

// ==================== BRANDS ====================

func (s *catalogService) CreateBrand(ctx context.Context, req *request.BrandRequest) (*response.BrandResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create brand validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Cek nama duplikat
	existing, err := s.repo.Brand.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check brand name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check brand name")
	}
	if existing != nil {
		return nil, fmt.Errorf("brand name already exists")
	}

	now := time.Now()
	brand := &entity.Brand{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Brand.Create(ctx, brand); err != nil {
		s.log.Error("Failed to create brand", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create brand")
	}

	s.log.Info("Brand created", zap.String("brand_id", brand.ID.String()), zap.String("name", brand.Name))

	resp := response.BrandToResponse(brand)
	return &resp, nil
}

func (s *catalogService) GetBrands(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.BrandResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	brands, err := s.repo.Brand.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list brands", zap.Error(err))
		return nil, fmt.Errorf("failed to list brands")
	}

	total, err := s.repo.Brand.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count brands", zap.Error(err))
		return nil, fmt.Errorf("failed to list brands")
	}

	items := make([]response.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, response.BrandToResponse(b))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *catalogService) GetBrandByID(ctx context.Context, id uuid.UUID) (*response.BrandResponse, error) {
	brand, err := s.repo.Brand.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find brand", zap.Error(err), zap.String("brand_id", id.String()))
		return nil, fmt.Errorf("failed to find brand")
	}
	if brand == nil {
		return nil, fmt.Errorf("brand not found")
	}

	resp := response.BrandToResponse(brand)
	return &resp, nil
}

func (s *catalogService) UpdateBrand(ctx context.Context, id uuid.UUID, req *request.BrandUpdateRequest) (*response.BrandResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update brand validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	brand, err := s.repo.Brand.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find brand", zap.Error(err), zap.String("brand_id", id.String()))
		return nil, fmt.Errorf("failed to find brand")
	}
	if brand == nil {
		return nil, fmt.Errorf("brand not found")
	}

	if req.Name != nil {
		// Nama baru tidak boleh bentrok dengan brand lain
		existing, err := s.repo.Brand.FindByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("Failed to check brand name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check brand name")
		}
		if existing != nil && existing.ID != brand.ID {
			return nil, fmt.Errorf("brand name already exists")
		}
		brand.Name = *req.Name
	}
	brand.UpdatedAt = time.Now()

	if err := s.repo.Brand.Update(ctx, brand); err != nil {
		s.log.Error("Failed to update brand", zap.Error(err), zap.String("brand_id", id.String()))
		return nil, fmt.Errorf("failed to update brand")
	}

	s.log.Info("Brand updated", zap.String("brand_id", id.String()))

	resp := response.BrandToResponse(brand)
	return &resp, nil
}

func (s *catalogService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	// Brand dengan model aktif tidak boleh dihapus
	models, err := s.repo.VehicleModel.FindByBrandID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check brand models", zap.Error(err), zap.String("brand_id", id.String()))
		return fmt.Errorf("failed to check brand models")
	}
	if len(models) > 0 {
		return fmt.Errorf("cannot delete brand with existing models")
	}

	if err := s.repo.Brand.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete brand", zap.Error(err), zap.String("brand_id", id.String()))
		return err
	}

	s.log.Info("Brand deleted", zap.String("brand_id", id.String()))
	return nil
}

// ==================== VEHICLE MODELS ====================

func (s *catalogService) CreateVehicleModel(ctx context.Context, req *request.VehicleModelRequest) (*response.VehicleModelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle model validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		return nil, fmt.Errorf("invalid brand id")
	}

	brand, err := s.repo.Brand.FindByID(ctx, brandID)
	if err != nil {
		s.log.Error("Failed to find brand", zap.Error(err), zap.String("brand_id", req.BrandID))
		return nil, fmt.Errorf("failed to find brand")
	}
	if brand == nil {
		return nil, fmt.Errorf("brand not found")
	}

	// Cek nama duplikat dalam brand yang sama
	existing, err := s.repo.VehicleModel.FindByBrandAndName(ctx, brandID, req.Name)
	if err != nil {
		s.log.Error("Failed to check model name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check model name")
	}
	if existing != nil {
		return nil, fmt.Errorf("model name already exists for this brand")
	}

	now := time.Now()
	model := &entity.VehicleModel{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BrandID: brandID,
		Name:    req.Name,
	}

	if err := s.repo.VehicleModel.Create(ctx, model); err != nil {
		s.log.Error("Failed to create vehicle model", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create vehicle model")
	}

	s.log.Info("Vehicle model created",
		zap.String("model_id", model.ID.String()),
		zap.String("brand_id", brandID.String()),
		zap.String("name", model.Name))

	resp := response.VehicleModelToResponse(model, brand)
	return &resp, nil
}

func (s *catalogService) GetVehicleModels(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.VehicleModelResponse], error) {
	offset := utils.CalculateOffset(page, perPage)

	models, err := s.repo.VehicleModel.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list vehicle models", zap.Error(err))
		return nil, fmt.Errorf("failed to list vehicle models")
	}

	total, err := s.repo.VehicleModel.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count vehicle models", zap.Error(err))
		return nil, fmt.Errorf("failed to list vehicle models")
	}

	items := make([]response.VehicleModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, response.VehicleModelToResponse(m, nil))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *catalogService) GetVehicleModelsByBrand(ctx context.Context, brandID uuid.UUID) ([]response.VehicleModelResponse, error) {
	brand, err := s.repo.Brand.FindByID(ctx, brandID)
	if err != nil {
		s.log.Error("Failed to find brand", zap.Error(err), zap.String("brand_id", brandID.String()))
		return nil, fmt.Errorf("failed to find brand")
	}
	if brand == nil {
		return nil, fmt.Errorf("brand not found")
	}

	models, err := s.repo.VehicleModel.FindByBrandID(ctx, brandID)
	if err != nil {
		s.log.Error("Failed to list brand models", zap.Error(err), zap.String("brand_id", brandID.String()))
		return nil, fmt.Errorf("failed to list brand models")
	}

	items := make([]response.VehicleModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, response.VehicleModelToResponse(m, brand))
	}

	return items, nil
}

func (s *catalogService) UpdateVehicleModel(ctx context.Context, id uuid.UUID, req *request.VehicleModelUpdateRequest) (*response.VehicleModelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vehicle model validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	model, err := s.repo.VehicleModel.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vehicle model", zap.Error(err), zap.String("model_id", id.String()))
		return nil, fmt.Errorf("failed to find vehicle model")
	}
	if model == nil {
		return nil, fmt.Errorf("vehicle model not found")
	}

	if req.BrandID != nil {
		brandID, err := uuid.Parse(*req.BrandID)
		if err != nil {
			return nil, fmt.Errorf("invalid brand id")
		}
		brand, err := s.repo.Brand.FindByID(ctx, brandID)
		if err != nil {
			s.log.Error("Failed to find brand", zap.Error(err), zap.String("brand_id", *req.BrandID))
			return nil, fmt.Errorf("failed to find brand")
		}
		if brand == nil {
			return nil, fmt.Errorf("brand not found")
		}
		model.BrandID = brandID
	}
	if req.Name != nil {
		existing, err := s.repo.VehicleModel.FindByBrandAndName(ctx, model.BrandID, *req.Name)
		if err != nil {
			s.log.Error("Failed to check model name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check model name")
		}
		if existing != nil && existing.ID != model.ID {
			return nil, fmt.Errorf("model name already exists for this brand")
		}
		model.Name = *req.Name
	}
	model.UpdatedAt = time.Now()

	if err := s.repo.VehicleModel.Update(ctx, model); err != nil {
		s.log.Error("Failed to update vehicle model", zap.Error(err), zap.String("model_id", id.String()))
		return nil, fmt.Errorf("failed to update vehicle model")
	}

	s.log.Info("Vehicle model updated", zap.String("model_id", id.String()))

	resp := response.VehicleModelToResponse(model, nil)
	return &resp, nil
}

func (s *catalogService) DeleteVehicleModel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.VehicleModel.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete vehicle model", zap.Error(err), zap.String("model_id", id.String()))
		return err
	}

	s.log.Info("Vehicle model deleted", zap.String("model_id", id.String()))
	return nil
}
