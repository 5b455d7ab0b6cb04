package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/request"
	"garage-booking/internal/dto/response"
	"garage-booking/internal/pricing"
	"garage-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingService interface {
	Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest, createdBy uuid.UUID) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, status, serviceType string, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*response.BookingDetailResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateBookingStatusRequest, updatedBy uuid.UUID) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// vatRateFor maps a service type to its configured VAT rate.
func (s *bookingService) vatRateFor(serviceType entity.ServiceType) float64 {
	switch serviceType {
	case entity.ServiceOilChange:
		return s.config.VAT.OilChange
	case entity.ServiceBatteryReplacement:
		return s.config.VAT.BatteryReplacement
	default:
		return s.config.VAT.OtherService
	}
}

func flowFor(serviceType entity.ServiceType) pricing.FlowKind {
	switch serviceType {
	case entity.ServiceOilChange:
		return pricing.FlowOilChange
	case entity.ServiceBatteryReplacement:
		return pricing.FlowBatteryReplacement
	default:
		return pricing.FlowOtherService
	}
}

func packagingFor(oilType *entity.OilType) pricing.Packaging {
	return pricing.Packaging{
		Price4L:       oilType.Price4L,
		Price1L:       oilType.Price1L,
		PricePerLiter: oilType.PricePerLiter,
		Has4L:         oilType.Has4L,
		Has1L:         oilType.Has1L,
		HasBulk:       oilType.HasBulk,
	}
}

// ==================== QUOTE ====================

// Quote recomputes the wizard money breakdown server-side without persisting
// anything. Quantity status is advisory: under-delivery never blocks.
func (s *bookingService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	serviceType := entity.ServiceType(req.ServiceType)
	vatRate := s.vatRateFor(serviceType)
	w := pricing.NewWizard(flowFor(serviceType), vatRate)

	resp := &response.QuoteResponse{ServiceType: serviceType}

	// 2. Flow-specific product step
	switch serviceType {
	case entity.ServiceOilChange:
		if req.OilTypeID != nil {
			oilTypeID, err := uuid.Parse(*req.OilTypeID)
			if err != nil {
				return nil, fmt.Errorf("invalid oil type id")
			}
			oilType, err := s.repo.OilType.FindByID(ctx, oilTypeID)
			if err != nil {
				s.log.Error("Failed to find oil type", zap.Error(err), zap.String("oil_type_id", *req.OilTypeID))
				return nil, fmt.Errorf("failed to find oil type")
			}
			if oilType == nil {
				return nil, fmt.Errorf("oil type not found")
			}
			w = w.WithOil(packagingFor(oilType))
		}

		if req.OilQuantity != nil {
			w = w.WithRequiredQuantity(*req.OilQuantity)
		}

		if req.UseSuggestion {
			w = w.ApplySuggestion()
		} else {
			w = w.WithSelection(pricing.Selection{
				Count4L:    req.Count4L,
				Count1L:    req.Count1L,
				BulkLiters: req.BulkLiters,
			})
		}

		if req.OilFilterID != nil {
			filterID, err := uuid.Parse(*req.OilFilterID)
			if err != nil {
				return nil, fmt.Errorf("invalid oil filter id")
			}
			filter, err := s.repo.OilFilter.FindByID(ctx, filterID)
			if err != nil {
				s.log.Error("Failed to find oil filter", zap.Error(err), zap.String("oil_filter_id", *req.OilFilterID))
				return nil, fmt.Errorf("failed to find oil filter")
			}
			if filter == nil {
				return nil, fmt.Errorf("oil filter not found")
			}
			w = w.WithFilter(filter.Price)
		}

		// Suggestion is reported even when the operator picked counts manually.
		if sug, ok := pricing.SuggestCombination(w.Packaging, w.RequiredQuantity); ok {
			resp.Suggestion = response.SuggestionToResponse(sug)
		}

		sel := response.SelectionToResponse(w.Selection)
		resp.Selection = &sel
		totals := w.OilTotals()
		resp.OilQuantityTotal = totals.Quantity
		resp.OilTotal = totals.Price
		resp.QuantityStatus = w.OilQuantityStatus()

	case entity.ServiceBatteryReplacement:
		if req.BatteryTypeID != nil {
			batteryID, err := uuid.Parse(*req.BatteryTypeID)
			if err != nil {
				return nil, fmt.Errorf("invalid battery type id")
			}
			battery, err := s.repo.BatteryType.FindByID(ctx, batteryID)
			if err != nil {
				s.log.Error("Failed to find battery type", zap.Error(err), zap.String("battery_type_id", *req.BatteryTypeID))
				return nil, fmt.Errorf("failed to find battery type")
			}
			if battery == nil {
				return nil, fmt.Errorf("battery type not found")
			}
			w = w.WithBattery(battery.Price)
		}

	default: // other_service
		w = w.WithParts(req.PartsTotal)
		w = w.WithDiscount(req.Discount)
	}

	// 3. Shared steps
	w = w.WithLabor(req.LaborCost)

	for _, line := range req.Accessories {
		accessoryID, err := uuid.Parse(line.AccessoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid accessory id")
		}
		accessory, err := s.repo.Accessory.FindByID(ctx, accessoryID)
		if err != nil {
			s.log.Error("Failed to find accessory", zap.Error(err), zap.String("accessory_id", line.AccessoryID))
			return nil, fmt.Errorf("failed to find accessory")
		}
		if accessory == nil {
			return nil, fmt.Errorf("accessory not found")
		}

		item := pricing.Accessory{
			ID:                accessory.ID.String(),
			Name:              accessory.Name,
			Price:             accessory.Price,
			QuantityAvailable: accessory.QuantityAvailable,
		}
		// AddAccessory caps at quantity_available; over-asking silently stops.
		for i := 0; i < line.Quantity; i++ {
			w = w.AddAccessory(item)
		}
	}

	resp.AccessoriesTotal = w.Accessories.Total()
	resp.Breakdown = w.Breakdown()

	return resp, nil
}

// ==================== CREATE ====================

// CreateBooking resolves customer and vehicle identity and writes the booking
// atomically: one transaction covers customer upsert, vehicle upsert, booking
// row and accessory lines. Any failure rolls all of it back.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest, createdBy uuid.UUID) (*response.BookingResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	serviceType := entity.ServiceType(req.ServiceType)

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid service date")
	}

	// 2. Parse and verify flow-specific references before opening the tx
	var oilTypeID, oilFilterID, batteryTypeID *uuid.UUID

	if serviceType == entity.ServiceOilChange {
		if req.OilTypeID == nil {
			return nil, fmt.Errorf("validation failed: oil_type_id is required for oil change")
		}
		id, err := uuid.Parse(*req.OilTypeID)
		if err != nil {
			return nil, fmt.Errorf("invalid oil type id")
		}
		oilType, err := s.repo.OilType.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to find oil type", zap.Error(err), zap.String("oil_type_id", *req.OilTypeID))
			return nil, fmt.Errorf("failed to find oil type")
		}
		if oilType == nil {
			return nil, fmt.Errorf("oil type not found")
		}
		oilTypeID = &id

		if req.OilFilterID != nil {
			fid, err := uuid.Parse(*req.OilFilterID)
			if err != nil {
				return nil, fmt.Errorf("invalid oil filter id")
			}
			filter, err := s.repo.OilFilter.FindByID(ctx, fid)
			if err != nil {
				s.log.Error("Failed to find oil filter", zap.Error(err), zap.String("oil_filter_id", *req.OilFilterID))
				return nil, fmt.Errorf("failed to find oil filter")
			}
			if filter == nil {
				return nil, fmt.Errorf("oil filter not found")
			}
			oilFilterID = &fid
		}
	}

	if serviceType == entity.ServiceBatteryReplacement {
		if req.BatteryTypeID == nil {
			return nil, fmt.Errorf("validation failed: battery_type_id is required for battery replacement")
		}
		id, err := uuid.Parse(*req.BatteryTypeID)
		if err != nil {
			return nil, fmt.Errorf("invalid battery type id")
		}
		battery, err := s.repo.BatteryType.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to find battery type", zap.Error(err), zap.String("battery_type_id", *req.BatteryTypeID))
			return nil, fmt.Errorf("failed to find battery type")
		}
		if battery == nil {
			return nil, fmt.Errorf("battery type not found")
		}
		batteryTypeID = &id
	}

	// 3. Verify accessories and build lines (booking id filled inside the tx)
	lines := make([]*entity.BookingAccessory, 0, len(req.Accessories))
	for _, line := range req.Accessories {
		accessoryID, err := uuid.Parse(line.AccessoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid accessory id")
		}
		accessory, err := s.repo.Accessory.FindByID(ctx, accessoryID)
		if err != nil {
			s.log.Error("Failed to find accessory", zap.Error(err), zap.String("accessory_id", line.AccessoryID))
			return nil, fmt.Errorf("failed to find accessory")
		}
		if accessory == nil {
			return nil, fmt.Errorf("accessory not found")
		}

		lines = append(lines, &entity.BookingAccessory{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			AccessoryID: accessoryID,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}

	var incomingBrandID, incomingModelID *uuid.UUID
	if req.Vehicle.BrandID != nil {
		id, err := uuid.Parse(*req.Vehicle.BrandID)
		if err != nil {
			return nil, fmt.Errorf("invalid brand id")
		}
		incomingBrandID = &id
	}
	if req.Vehicle.ModelID != nil {
		id, err := uuid.Parse(*req.Vehicle.ModelID)
		if err != nil {
			return nil, fmt.Errorf("invalid model id")
		}
		incomingModelID = &id
	}

	// 4. Transaction: identity resolution + booking + lines
	var booking *entity.Booking

	err = s.repo.InTx(ctx, func(tx pgx.Tx) error {
		customer, err := s.resolveCustomerTx(ctx, tx, &req.Customer)
		if err != nil {
			return err
		}

		vehicle, err := s.resolveVehicleTx(ctx, tx, customer, &req.Vehicle, incomingBrandID, incomingModelID)
		if err != nil {
			return err
		}

		now := time.Now()
		booking = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			BookingNumber: utils.GenerateBookingNumber(),
			CustomerID:    customer.ID,
			VehicleID:     vehicle.ID,
			ServiceType:   serviceType,
			ServiceDate:   serviceDate,
			ServiceTime:   req.ServiceTime,
			OilTypeID:     oilTypeID,
			OilQuantity:   req.OilQuantity,
			OilFilterID:   oilFilterID,
			BatteryTypeID: batteryTypeID,
			LaborCost:     req.LaborCost,
			Discount:      req.Discount,
			Subtotal:      req.Subtotal,
			VATRate:       req.VATRate,
			VATAmount:     req.VATAmount,
			TotalAmount:   req.TotalAmount,
			Memo:          req.Memo,
			Status:        entity.BookingStatusPending,
			CreatedBy:     createdBy,
		}

		if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		for _, line := range lines {
			line.BookingID = booking.ID
		}
		if err := s.repo.BookingAccessory.CreateBatchTx(ctx, tx, lines); err != nil {
			return fmt.Errorf("failed to create accessory lines: %w", err)
		}

		return nil
	})
	if err != nil {
		s.log.Error("Booking transaction failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_number", booking.BookingNumber),
		zap.String("service_type", string(serviceType)),
		zap.Float64("total_amount", booking.TotalAmount))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// resolveCustomerTx finds or creates the customer keyed by mobile number.
// Insert uses ON CONFLICT DO NOTHING, so a concurrent submission of the same
// mobile loses the insert race and re-selects the winner's row.
func (s *bookingService) resolveCustomerTx(ctx context.Context, tx pgx.Tx, payload *request.CustomerPayload) (*entity.Customer, error) {
	customer, err := s.repo.Customer.FindByMobileTx(ctx, tx, payload.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer != nil {
		return customer, nil
	}

	now := time.Now()
	customer = &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   payload.Name,
		Mobile: payload.Mobile,
	}

	inserted, err := s.repo.Customer.CreateTx(ctx, tx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if inserted {
		return customer, nil
	}

	// Lost the race, fetch the row that won
	customer, err = s.repo.Customer.FindByMobileTx(ctx, tx, payload.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to re-select customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer resolution failed for mobile %s", payload.Mobile)
	}

	return customer, nil
}

// resolveVehicleTx finds or creates the vehicle keyed by plate number. The
// plate decides identity: when the plate already exists, incoming brand/model
// hints are logged if they differ but never applied.
func (s *bookingService) resolveVehicleTx(
	ctx context.Context,
	tx pgx.Tx,
	customer *entity.Customer,
	payload *request.VehiclePayload,
	incomingBrandID, incomingModelID *uuid.UUID,
) (*entity.Vehicle, error) {
	vehicle, err := s.repo.Vehicle.FindByPlateTx(ctx, tx, payload.PlateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	if vehicle != nil {
		s.warnOnVehicleMismatch(vehicle, incomingBrandID, incomingModelID)
		return vehicle, nil
	}

	now := time.Now()
	vehicle = &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:  customer.ID,
		BrandID:     incomingBrandID,
		ModelID:     incomingModelID,
		PlateNumber: payload.PlateNumber,
	}

	inserted, err := s.repo.Vehicle.CreateTx(ctx, tx, vehicle)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	if inserted {
		return vehicle, nil
	}

	vehicle, err = s.repo.Vehicle.FindByPlateTx(ctx, tx, payload.PlateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to re-select vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle resolution failed for plate %s", payload.PlateNumber)
	}

	s.warnOnVehicleMismatch(vehicle, incomingBrandID, incomingModelID)
	return vehicle, nil
}

func (s *bookingService) warnOnVehicleMismatch(vehicle *entity.Vehicle, incomingBrandID, incomingModelID *uuid.UUID) {
	if incomingBrandID != nil && (vehicle.BrandID == nil || *vehicle.BrandID != *incomingBrandID) {
		s.log.Warn("Vehicle brand hint differs from stored record, keeping stored value",
			zap.String("plate_number", vehicle.PlateNumber),
			zap.String("incoming_brand_id", incomingBrandID.String()))
	}
	if incomingModelID != nil && (vehicle.ModelID == nil || *vehicle.ModelID != *incomingModelID) {
		s.log.Warn("Vehicle model hint differs from stored record, keeping stored value",
			zap.String("plate_number", vehicle.PlateNumber),
			zap.String("incoming_model_id", incomingModelID.String()))
	}
}

// ==================== READ ====================

func (s *bookingService) GetBookings(ctx context.Context, status, serviceType string, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error) {
	filter := repository.BookingFilter{
		Status:      entity.BookingStatus(status),
		ServiceType: entity.ServiceType(serviceType),
	}
	offset := utils.CalculateOffset(page, perPage)

	bookings, err := s.repo.Booking.FindAll(ctx, filter, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, response.BookingToResponse(b))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id uuid.UUID) (*response.BookingDetailResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking),
		LaborCost:       booking.LaborCost,
		Discount:        booking.Discount,
		Memo:            booking.Memo,
	}

	if booking.OilTypeID != nil {
		v := booking.OilTypeID.String()
		detail.OilTypeID = &v
	}
	detail.OilQuantity = booking.OilQuantity
	if booking.OilFilterID != nil {
		v := booking.OilFilterID.String()
		detail.OilFilterID = &v
	}
	if booking.BatteryTypeID != nil {
		v := booking.BatteryTypeID.String()
		detail.BatteryTypeID = &v
	}

	customer, err := s.repo.Customer.FindByID(ctx, booking.CustomerID)
	if err != nil {
		s.log.Error("Failed to find booking customer", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking customer")
	}
	if customer != nil {
		c := response.CustomerToResponse(customer)
		detail.Customer = &c
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	if err != nil {
		s.log.Error("Failed to find booking vehicle", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking vehicle")
	}
	if vehicle != nil {
		v := response.VehicleToResponse(vehicle)
		detail.Vehicle = &v
	}

	lines, err := s.repo.BookingAccessory.FindByBookingID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking accessories", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking accessories")
	}

	for _, line := range lines {
		item := response.BookingAccessoryResponse{
			AccessoryID: line.AccessoryID.String(),
			Quantity:    line.Quantity,
			Price:       line.Price,
			LineTotal:   pricing.Round2(float64(line.Quantity) * line.Price),
		}
		accessory, err := s.repo.Accessory.FindByID(ctx, line.AccessoryID)
		if err == nil && accessory != nil {
			item.Name = accessory.Name
		}
		detail.Accessories = append(detail.Accessories, item)
	}

	return detail, nil
}

// ==================== STATUS ====================

// UpdateStatus is the single entry point of the booking lifecycle:
// pending -> completed | cancelled, terminal states reject any transition.
func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateBookingStatusRequest, updatedBy uuid.UUID) (*response.BookingResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	// 2. Terminal states are frozen
	if booking.Status.Terminal() {
		return nil, fmt.Errorf("cannot change status of a %s booking", booking.Status)
	}

	target := entity.BookingStatus(req.Status)

	if err := s.repo.Booking.UpdateStatus(ctx, id, target, updatedBy); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to update booking status")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)),
		zap.String("updated_by", updatedBy.String()))

	booking.Status = target
	booking.UpdatedBy = &updatedBy
	booking.UpdatedAt = time.Now()

	resp := response.BookingToResponse(booking)
	return &resp, nil
}
