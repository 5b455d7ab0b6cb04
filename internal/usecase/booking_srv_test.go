package usecase

import (
	"context"
	"testing"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/request"
	"garage-booking/pkg/database"
	"garage-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---------- transaction stubs ----------

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	database.PgxIface
	lastTx *fakeTx
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.lastTx = &fakeTx{}
	return db.lastTx, nil
}

// ---------- in-memory repositories ----------

type fakeCustomerRepo struct {
	repository.CustomerRepository
	byMobile map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byMobile: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range r.byMobile {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) FindByMobileTx(ctx context.Context, tx pgx.Tx, mobile string) (*entity.Customer, error) {
	return r.byMobile[mobile], nil
}

func (r *fakeCustomerRepo) CreateTx(ctx context.Context, tx pgx.Tx, customer *entity.Customer) (bool, error) {
	if _, exists := r.byMobile[customer.Mobile]; exists {
		return false, nil
	}
	r.byMobile[customer.Mobile] = customer
	return true, nil
}

type fakeVehicleRepo struct {
	repository.VehicleRepository
	byPlate map[string]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{byPlate: make(map[string]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	for _, v := range r.byPlate {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) FindByPlateTx(ctx context.Context, tx pgx.Tx, plate string) (*entity.Vehicle, error) {
	return r.byPlate[plate], nil
}

func (r *fakeVehicleRepo) CreateTx(ctx context.Context, tx pgx.Tx, vehicle *entity.Vehicle) (bool, error) {
	if _, exists := r.byPlate[vehicle.PlateNumber]; exists {
		return false, nil
	}
	r.byPlate[vehicle.PlateNumber] = vehicle
	return true, nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	byID      map[uuid.UUID]*entity.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.byID[id], nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, updatedBy uuid.UUID) error {
	b := r.byID[id]
	b.Status = status
	b.UpdatedBy = &updatedBy
	return nil
}

type fakeBookingAccessoryRepo struct {
	repository.BookingAccessoryRepository
	lines []*entity.BookingAccessory
}

func (r *fakeBookingAccessoryRepo) CreateBatchTx(ctx context.Context, tx pgx.Tx, lines []*entity.BookingAccessory) error {
	r.lines = append(r.lines, lines...)
	return nil
}

func (r *fakeBookingAccessoryRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingAccessory, error) {
	var out []*entity.BookingAccessory
	for _, l := range r.lines {
		if l.BookingID == bookingID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeOilTypeRepo struct {
	repository.OilTypeRepository
	byID map[uuid.UUID]*entity.OilType
}

func (r *fakeOilTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OilType, error) {
	return r.byID[id], nil
}

type fakeOilFilterRepo struct {
	repository.OilFilterRepository
	byID map[uuid.UUID]*entity.OilFilter
}

func (r *fakeOilFilterRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OilFilter, error) {
	return r.byID[id], nil
}

type fakeBatteryTypeRepo struct {
	repository.BatteryTypeRepository
	byID map[uuid.UUID]*entity.BatteryType
}

func (r *fakeBatteryTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BatteryType, error) {
	return r.byID[id], nil
}

type fakeAccessoryRepo struct {
	repository.AccessoryRepository
	byID map[uuid.UUID]*entity.Accessory
}

func (r *fakeAccessoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error) {
	return r.byID[id], nil
}

// ---------- fixture ----------

type bookingFixture struct {
	svc         BookingService
	db          *fakeDB
	customers   *fakeCustomerRepo
	vehicles    *fakeVehicleRepo
	bookings    *fakeBookingRepo
	lines       *fakeBookingAccessoryRepo
	oilTypes    *fakeOilTypeRepo
	oilFilters  *fakeOilFilterRepo
	batteries   *fakeBatteryTypeRepo
	accessories *fakeAccessoryRepo
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		db:          &fakeDB{},
		customers:   newFakeCustomerRepo(),
		vehicles:    newFakeVehicleRepo(),
		bookings:    newFakeBookingRepo(),
		lines:       &fakeBookingAccessoryRepo{},
		oilTypes:    &fakeOilTypeRepo{byID: make(map[uuid.UUID]*entity.OilType)},
		oilFilters:  &fakeOilFilterRepo{byID: make(map[uuid.UUID]*entity.OilFilter)},
		batteries:   &fakeBatteryTypeRepo{byID: make(map[uuid.UUID]*entity.BatteryType)},
		accessories: &fakeAccessoryRepo{byID: make(map[uuid.UUID]*entity.Accessory)},
	}

	repo := &repository.Repository{
		DB:               f.db,
		Customer:         f.customers,
		Vehicle:          f.vehicles,
		Booking:          f.bookings,
		BookingAccessory: f.lines,
		OilType:          f.oilTypes,
		OilFilter:        f.oilFilters,
		BatteryType:      f.batteries,
		Accessory:        f.accessories,
	}

	config := &utils.Config{
		VAT: utils.VATConfig{
			OilChange:          5,
			BatteryReplacement: 15,
			OtherService:       5,
		},
	}

	f.svc = NewBookingService(repo, config, zap.NewNop())
	return f
}

func validRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Customer: request.CustomerPayload{
			Name:   "Budi Santoso",
			Mobile: "081234567890",
		},
		Vehicle: request.VehiclePayload{
			PlateNumber: "B 1234 XYZ",
		},
		ServiceType: "other_service",
		ServiceDate: "2026-09-01",
		ServiceTime: "10:30",
		LaborCost:   50,
		Subtotal:    150,
		VATRate:     5,
		VATAmount:   7.14,
		TotalAmount: 150,
	}
}

// ---------- tests ----------

func TestCreateBookingResolvesIdentityOnce(t *testing.T) {
	f := newBookingFixture()
	staff := uuid.New()

	first, err := f.svc.CreateBooking(context.Background(), validRequest(), staff)
	require.NoError(t, err)

	second, err := f.svc.CreateBooking(context.Background(), validRequest(), staff)
	require.NoError(t, err)

	// Same mobile and plate: one customer row, one vehicle row, two bookings
	assert.Len(t, f.customers.byMobile, 1)
	assert.Len(t, f.vehicles.byPlate, 1)
	assert.Len(t, f.bookings.byID, 2)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.Equal(t, first.VehicleID, second.VehicleID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.BookingNumber, second.BookingNumber)
}

func TestCreateBookingStartsPending(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.CreateBooking(context.Background(), validRequest(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.True(t, f.db.lastTx.committed)
	assert.False(t, f.db.lastTx.rolledBack)
}

func TestCreateBookingRollsBackOnFailure(t *testing.T) {
	f := newBookingFixture()
	f.bookings.createErr = assert.AnError

	_, err := f.svc.CreateBooking(context.Background(), validRequest(), uuid.New())
	require.Error(t, err)

	assert.False(t, f.db.lastTx.committed)
	assert.True(t, f.db.lastTx.rolledBack)
	assert.Empty(t, f.bookings.byID)
}

func TestCreateBookingKeepsStoredVehicleRecord(t *testing.T) {
	f := newBookingFixture()

	storedBrand := uuid.New()
	f.vehicles.byPlate["B 1234 XYZ"] = &entity.Vehicle{
		Base:        entity.Base{ID: uuid.New()},
		CustomerID:  uuid.New(),
		BrandID:     &storedBrand,
		PlateNumber: "B 1234 XYZ",
	}

	req := validRequest()
	otherBrand := uuid.New().String()
	req.Vehicle.BrandID = &otherBrand

	resp, err := f.svc.CreateBooking(context.Background(), req, uuid.New())
	require.NoError(t, err)

	// Plate decides identity: the stored brand survives the conflicting hint
	vehicle := f.vehicles.byPlate["B 1234 XYZ"]
	assert.Equal(t, vehicle.ID.String(), resp.VehicleID)
	assert.Equal(t, storedBrand, *vehicle.BrandID)
}

func TestCreateBookingRejectsMissingFlowReference(t *testing.T) {
	f := newBookingFixture()

	req := validRequest()
	req.ServiceType = "oil_change"

	_, err := f.svc.CreateBooking(context.Background(), req, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oil_type_id is required")
}

func TestUpdateStatusLifecycle(t *testing.T) {
	f := newBookingFixture()
	staff := uuid.New()

	created, err := f.svc.CreateBooking(context.Background(), validRequest(), staff)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// pending -> completed is allowed
	updated, err := f.svc.UpdateStatus(context.Background(), id, &request.UpdateBookingStatusRequest{Status: "completed"}, staff)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, updated.Status)

	// terminal state rejects any further transition
	_, err = f.svc.UpdateStatus(context.Background(), id, &request.UpdateBookingStatusRequest{Status: "cancelled"}, staff)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot change status")

	// audit trail records the acting user
	assert.Equal(t, staff, *f.bookings.byID[id].UpdatedBy)
}

func TestUpdateStatusRejectsUnknownTarget(t *testing.T) {
	f := newBookingFixture()
	staff := uuid.New()

	created, err := f.svc.CreateBooking(context.Background(), validRequest(), staff)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), uuid.MustParse(created.ID), &request.UpdateBookingStatusRequest{Status: "pending"}, staff)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestQuoteOilChange(t *testing.T) {
	f := newBookingFixture()

	oilType := &entity.OilType{
		Base:          entity.Base{ID: uuid.New()},
		Name:          "Synthetic 5W-30",
		Price4L:       50,
		Price1L:       15,
		PricePerLiter: 10,
		Has4L:         true,
		Has1L:         true,
		HasBulk:       true,
	}
	f.oilTypes.byID[oilType.ID] = oilType

	filter := &entity.OilFilter{Base: entity.Base{ID: uuid.New()}, Name: "Standard", Price: 25}
	f.oilFilters.byID[filter.ID] = filter

	accessory := &entity.Accessory{Base: entity.Base{ID: uuid.New()}, Name: "Wiper blade", Price: 10}
	f.accessories.byID[accessory.ID] = accessory

	oilTypeID := oilType.ID.String()
	filterID := filter.ID.String()
	required := 5.5

	resp, err := f.svc.Quote(context.Background(), &request.QuoteRequest{
		ServiceType:   "oil_change",
		OilTypeID:     &oilTypeID,
		OilQuantity:   &required,
		UseSuggestion: true,
		OilFilterID:   &filterID,
		LaborCost:     50,
		Accessories: []request.QuoteAccessoryLine{
			{AccessoryID: accessory.ID.String(), Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 5.5L -> 1x4L + 2x1L, with the exact bulk quantity as alternative
	require.NotNil(t, resp.Suggestion)
	assert.Equal(t, 1, resp.Suggestion.Selection.Count4L)
	assert.Equal(t, 2, resp.Suggestion.Selection.Count1L)
	require.NotNil(t, resp.Suggestion.BulkAlternative)
	assert.Equal(t, 5.5, resp.Suggestion.BulkAlternative.BulkLiters)

	assert.Equal(t, 6.0, resp.OilQuantityTotal)
	assert.Equal(t, "0.5 extra", resp.QuantityStatus)
	assert.Equal(t, 80.0, resp.OilTotal)
	assert.Equal(t, 20.0, resp.AccessoriesTotal)

	// oil 80 + filter 25 + labor 50 + accessories 20 = 175, VAT 5% on top
	assert.Equal(t, 175.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 8.75, resp.Breakdown.VATAmount)
	assert.Equal(t, 183.75, resp.Breakdown.Total)
}

func TestQuoteOtherServiceExtractsVAT(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.Quote(context.Background(), &request.QuoteRequest{
		ServiceType: "other_service",
		PartsTotal:  100,
		LaborCost:   50,
		Discount:    20,
	})
	require.NoError(t, err)

	// Inclusive flow: 150 - 20 = 130, VAT extracted from the discounted total
	assert.Equal(t, 150.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 6.19, resp.Breakdown.VATAmount)
	assert.Equal(t, 123.81, resp.Breakdown.NetAmount)
	assert.Equal(t, 130.0, resp.Breakdown.Total)
}

func TestQuoteBatteryReplacement(t *testing.T) {
	f := newBookingFixture()

	battery := &entity.BatteryType{Base: entity.Base{ID: uuid.New()}, Name: "NS60", Price: 180}
	f.batteries.byID[battery.ID] = battery
	batteryID := battery.ID.String()

	resp, err := f.svc.Quote(context.Background(), &request.QuoteRequest{
		ServiceType:   "battery_replacement",
		BatteryTypeID: &batteryID,
		LaborCost:     50,
	})
	require.NoError(t, err)

	// battery 180 + labor 50 = 230, VAT 15% on top
	assert.Equal(t, 230.0, resp.Breakdown.Subtotal)
	assert.Equal(t, 34.5, resp.Breakdown.VATAmount)
	assert.Equal(t, 264.5, resp.Breakdown.Total)
}
