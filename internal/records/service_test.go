package records

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/internal/parties"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
)

func setupRecordsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS vehicles (
  id TEXT PRIMARY KEY,
  license_plate TEXT NOT NULL UNIQUE,
  car_category TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS washers (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  name TEXT,
  surname TEXT,
  contact TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  salary_percentage TEXT NOT NULL DEFAULT '0',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS companies (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  contact TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS discounts (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  percentage TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS wash_records (
  id TEXT PRIMARY KEY,
  vehicle_id TEXT NOT NULL,
  washer_id TEXT NOT NULL,
  company_id TEXT,
  discount_id TEXT,
  license_plate TEXT NOT NULL,
  company_name TEXT,
  washer_username TEXT NOT NULL,
  car_category TEXT NOT NULL,
  wash_type TEXT NOT NULL,
  discount_percentage TEXT NOT NULL DEFAULT '0',
  box_number INTEGER NOT NULL DEFAULT 0,
  original_price TEXT NOT NULL,
  discounted_price TEXT NOT NULL,
  washer_cut TEXT NOT NULL,
  start_time DATETIME NOT NULL,
  end_time DATETIME,
  payment_method TEXT,
  created_by_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

type stubPrices struct {
	matrix map[string]decimal.Decimal
}

func (s stubPrices) ResolveOriginalPrice(ctx context.Context, carCategory, washType string, override *float64) (decimal.Decimal, error) {
	if override != nil && *override >= 0 {
		return decimal.NewFromFloat(*override).Round(2), nil
	}
	if price, ok := s.matrix[carCategory+"/"+washType]; ok {
		return price, nil
	}
	return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodePricingNotFound, "no price configured for this combination")
}

type recordsPinVerifier struct {
	accept string
}

func (s recordsPinVerifier) Verify(candidate string) bool { return candidate == s.accept }

type fixture struct {
	db          *gorm.DB
	svc         Service
	partiesRepo parties.Repository
}

func newFixture(t *testing.T, matrix map[string]decimal.Decimal) *fixture {
	t.Helper()

	db := setupRecordsTestDB(t)
	partiesRepo := parties.NewRepository(db)
	svc, err := NewService(
		NewRepository(db),
		gormTxRunner{db: db},
		parties.NewResolver(partiesRepo),
		stubPrices{matrix: matrix},
		recordsPinVerifier{accept: "4321"},
	)
	require.NoError(t, err)
	return &fixture{db: db, svc: svc, partiesRepo: partiesRepo}
}

func (f *fixture) newWasher(t *testing.T, username string, salaryPct int64) *models.Washer {
	t.Helper()
	washer := &models.Washer{
		Username:         username,
		Active:           true,
		SalaryPercentage: decimal.NewFromInt(salaryPct),
	}
	require.NoError(t, f.partiesRepo.CreateWasher(context.Background(), washer))
	return washer
}

func (f *fixture) newCompanyWithDiscount(t *testing.T, name string, pct int64, active bool) (*models.Company, *models.Discount) {
	t.Helper()
	ctx := context.Background()
	company := &models.Company{Name: name}
	require.NoError(t, f.partiesRepo.CreateCompany(ctx, company))
	discount := &models.Discount{CompanyID: company.ID, Percentage: decimal.NewFromInt(pct), Active: active}
	require.NoError(t, f.partiesRepo.CreateDiscount(ctx, discount))
	return company, discount
}

func defaultMatrix() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"SEDAN/COMPLETE": decimal.NewFromInt(30),
		"SEDAN/CHEMICAL": decimal.NewFromInt(400),
	}
}

func TestCreateComputesPrices(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "COMPLETE",
		WasherUsername: "mike",
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)

	assert.True(t, record.OriginalPrice.Equal(decimal.NewFromInt(30)), "original %s", record.OriginalPrice)
	assert.True(t, record.DiscountedPrice.Equal(decimal.NewFromInt(30)), "discounted %s", record.DiscountedPrice)
	assert.True(t, record.WasherCut.Equal(decimal.NewFromInt(6)), "cut %s", record.WasherCut)
	assert.Nil(t, record.CompanyID)
	assert.Nil(t, record.DiscountID)
	assert.Equal(t, "mike", record.WasherUsername)
	assert.False(t, record.Finished())
	assert.False(t, record.Paid())
}

func TestCreateLinksActiveCompanyDiscount(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)
	company, discount := f.newCompanyWithDiscount(t, "Delta Logistics", 50, true)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:       "ABC-123",
		CarCategory:        "SEDAN",
		WashType:           "COMPLETE",
		WasherUsername:     "mike",
		CompanyID:          &company.ID,
		DiscountPercentage: 50,
		ActorID:            uuid.New(),
	})
	require.NoError(t, err)

	assert.True(t, record.DiscountedPrice.Equal(decimal.NewFromInt(15)), "discounted %s", record.DiscountedPrice)
	require.NotNil(t, record.DiscountID)
	assert.Equal(t, discount.ID, *record.DiscountID)
	require.NotNil(t, record.CompanyName)
	assert.Equal(t, "Delta Logistics", *record.CompanyName)
}

func TestCreateFailsWithoutPriceSource(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	_, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "MICROBUS",
		WashType:       "ENGINE",
		WasherUsername: "mike",
		ActorID:        uuid.New(),
	})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodePricingNotFound, appErr.Code())

	// Nothing half-committed: the new vehicle row was rolled back with it.
	var count int64
	require.NoError(t, f.db.Model(&models.Vehicle{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateUsesOverrideBeforeMatrix(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	override := 55.5
	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "CUSTOM",
		WasherUsername: "mike",
		PriceOverride:  &override,
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "55.5", record.OriginalPrice.String())
}

func TestCreateIgnoresDiscountWithoutCompany(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:       "ABC-123",
		CarCategory:        "SEDAN",
		WashType:           "COMPLETE",
		WasherUsername:     "mike",
		DiscountPercentage: 30,
		ActorID:            uuid.New(),
	})
	require.NoError(t, err)

	// Walk-in discounts carry the percentage but never a discount row.
	assert.Nil(t, record.DiscountID)
	assert.True(t, record.DiscountedPrice.Equal(decimal.NewFromInt(21)), "discounted %s", record.DiscountedPrice)
}

func TestCreateAutoCreatesWasher(t *testing.T) {
	f := newFixture(t, defaultMatrix())

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "COMPLETE",
		WasherUsername: "fresh-hire",
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)
	assert.True(t, record.WasherCut.IsZero())

	var washer models.Washer
	require.NoError(t, f.db.Where("username = ?", "fresh-hire").First(&washer).Error)
	assert.True(t, washer.Active)
}

func TestFinishIsIdempotent(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "COMPLETE",
		WasherUsername: "mike",
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)

	first, err := f.svc.Finish(context.Background(), record.ID)
	require.NoError(t, err)
	require.NotNil(t, first.EndTime)

	second, err := f.svc.Finish(context.Background(), record.ID)
	require.NoError(t, err)
	require.NotNil(t, second.EndTime)
	assert.WithinDuration(t, *first.EndTime, *second.EndTime, time.Second)
}

func TestPay(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "COMPLETE",
		WasherUsername: "mike",
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)

	t.Run("rejects non-admin callers", func(t *testing.T) {
		_, err := f.svc.Pay(context.Background(), PayInput{
			ID:        record.ID,
			Method:    enums.PaymentMethodCash,
			ActorRole: enums.RoleStaff,
		})
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())
	})

	t.Run("records the method for admins, even before finish", func(t *testing.T) {
		paid, err := f.svc.Pay(context.Background(), PayInput{
			ID:        record.ID,
			Method:    enums.PaymentMethodCard,
			ActorRole: enums.RoleAdmin,
		})
		require.NoError(t, err)
		require.NotNil(t, paid.PaymentMethod)
		assert.Equal(t, enums.PaymentMethodCard, *paid.PaymentMethod)
		assert.False(t, paid.Finished())
	})

	t.Run("rejects unknown records", func(t *testing.T) {
		_, err := f.svc.Pay(context.Background(), PayInput{
			ID:        uuid.New(),
			Method:    enums.PaymentMethodCash,
			ActorRole: enums.RoleAdmin,
		})
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
	})
}

func TestWasherCutIsSnapshotted(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	washer := f.newWasher(t, "mike", 20)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "COMPLETE",
		WasherUsername: "mike",
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)
	require.True(t, record.WasherCut.Equal(decimal.NewFromInt(6)))

	// Raising the commission later never rewrites history.
	require.NoError(t, f.partiesRepo.UpdateWasher(context.Background(), washer.ID, map[string]any{
		"salary_percentage": decimal.NewFromInt(50),
	}))

	reloaded, err := f.svc.Get(context.Background(), record.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.WasherCut.Equal(decimal.NewFromInt(6)), "cut %s", reloaded.WasherCut)
}

func TestUpdate(t *testing.T) {
	adminUpdate := func(id uuid.UUID) UpdateInput {
		return UpdateInput{
			ID:        id,
			ActorID:   uuid.New(),
			ActorRole: enums.RoleAdmin,
			MasterPin: "4321",
		}
	}

	t.Run("requires admin and the master pin", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())

		_, err := f.svc.Update(context.Background(), UpdateInput{
			ID:        uuid.New(),
			ActorRole: enums.RoleStaff,
			MasterPin: "4321",
		})
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())

		_, err = f.svc.Update(context.Background(), UpdateInput{
			ID:        uuid.New(),
			ActorRole: enums.RoleAdmin,
			MasterPin: "1111",
		})
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())
	})

	t.Run("reprices when the wash type changes", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)

		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "COMPLETE",
			WasherUsername: "mike",
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)

		input := adminUpdate(record.ID)
		chemical := "CHEMICAL"
		input.WashType = &chemical
		updated, err := f.svc.Update(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "CHEMICAL", updated.WashType)
		assert.True(t, updated.OriginalPrice.Equal(decimal.NewFromInt(400)), "original %s", updated.OriginalPrice)
		assert.True(t, updated.DiscountedPrice.Equal(decimal.NewFromInt(400)), "discounted %s", updated.DiscountedPrice)
		assert.True(t, updated.WasherCut.Equal(decimal.NewFromInt(80)), "cut %s", updated.WasherCut)
	})

	t.Run("keeps the manual price when only the discount changes", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)

		override := 55.0
		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "CUSTOM",
			WasherUsername: "mike",
			PriceOverride:  &override,
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)

		discount := 10.0
		input := adminUpdate(record.ID)
		input.DiscountPercentage = &discount
		updated, err := f.svc.Update(context.Background(), input)
		require.NoError(t, err)

		assert.True(t, updated.OriginalPrice.Equal(decimal.NewFromInt(55)), "original %s", updated.OriginalPrice)
		assert.Equal(t, "49.5", updated.DiscountedPrice.String())
		assert.True(t, updated.WasherCut.Equal(decimal.NewFromInt(11)), "cut %s", updated.WasherCut)
	})

	t.Run("still fails when a manually priced record moves to an unpriced combination", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)

		override := 55.0
		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "CUSTOM",
			WasherUsername: "mike",
			PriceOverride:  &override,
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)

		input := adminUpdate(record.ID)
		engine := "ENGINE"
		input.WashType = &engine
		_, err = f.svc.Update(context.Background(), input)
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodePricingNotFound, appErr.Code())
	})

	t.Run("uses the current commission of a swapped washer", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)
		replacement := f.newWasher(t, "anna", 40)

		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "COMPLETE",
			WasherUsername: "mike",
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)

		input := adminUpdate(record.ID)
		input.WasherID = &replacement.ID
		updated, err := f.svc.Update(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "anna", updated.WasherUsername)
		assert.True(t, updated.WasherCut.Equal(decimal.NewFromInt(12)), "cut %s", updated.WasherCut)
	})

	t.Run("re-resolves the vehicle when the plate changes", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)

		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "COMPLETE",
			WasherUsername: "mike",
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)

		input := adminUpdate(record.ID)
		newPlate := "XYZ-999"
		input.LicensePlate = &newPlate
		updated, err := f.svc.Update(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "XYZ-999", updated.LicensePlate)
		assert.NotEqual(t, record.VehicleID, updated.VehicleID)

		var vehicle models.Vehicle
		require.NoError(t, f.db.Where("license_plate = ?", "XYZ-999").First(&vehicle).Error)
		assert.Equal(t, "SEDAN", vehicle.CarCategory)
	})

	t.Run("un-pays and re-pays through the status toggles", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)

		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "COMPLETE",
			WasherUsername: "mike",
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)

		paidTrue := true
		input := adminUpdate(record.ID)
		input.IsPaid = &paidTrue
		updated, err := f.svc.Update(context.Background(), input)
		require.NoError(t, err)
		require.NotNil(t, updated.PaymentMethod)
		// No prior method, so the toggle defaults to cash.
		assert.Equal(t, enums.PaymentMethodCash, *updated.PaymentMethod)

		paidFalse := false
		input = adminUpdate(record.ID)
		input.IsPaid = &paidFalse
		updated, err = f.svc.Update(context.Background(), input)
		require.NoError(t, err)
		assert.Nil(t, updated.PaymentMethod)
	})

	t.Run("un-finishes when explicitly instructed", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())
		f.newWasher(t, "mike", 20)

		record, err := f.svc.Create(context.Background(), CreateInput{
			LicensePlate:   "ABC-123",
			CarCategory:    "SEDAN",
			WashType:       "COMPLETE",
			WasherUsername: "mike",
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)
		_, err = f.svc.Finish(context.Background(), record.ID)
		require.NoError(t, err)

		finishedFalse := false
		input := adminUpdate(record.ID)
		input.IsFinished = &finishedFalse
		updated, err := f.svc.Update(context.Background(), input)
		require.NoError(t, err)
		assert.Nil(t, updated.EndTime)
	})

	t.Run("returns not found for unknown records", func(t *testing.T) {
		f := newFixture(t, defaultMatrix())

		_, err := f.svc.Update(context.Background(), adminUpdate(uuid.New()))
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
	})
}

func TestDelete(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)

	record, err := f.svc.Create(context.Background(), CreateInput{
		LicensePlate:   "ABC-123",
		CarCategory:    "SEDAN",
		WashType:       "COMPLETE",
		WasherUsername: "mike",
		ActorID:        uuid.New(),
	})
	require.NoError(t, err)

	t.Run("requires admin and the master pin", func(t *testing.T) {
		err := f.svc.Delete(context.Background(), DeleteInput{
			ID:        record.ID,
			ActorRole: enums.RoleStaff,
			MasterPin: "4321",
		})
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeForbidden, appErr.Code())
	})

	t.Run("hard-deletes and then reports not found", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(context.Background(), DeleteInput{
			ID:        record.ID,
			ActorRole: enums.RoleAdmin,
			MasterPin: "4321",
		}))

		err := f.svc.Delete(context.Background(), DeleteInput{
			ID:        record.ID,
			ActorRole: enums.RoleAdmin,
			MasterPin: "4321",
		})
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
	})
}

func TestListFiltersAndPaginates(t *testing.T) {
	f := newFixture(t, defaultMatrix())
	f.newWasher(t, "mike", 20)
	ctx := context.Background()

	plates := []string{"AA-111-AA", "AA-222-BB", "CC-333-CC"}
	ids := make([]uuid.UUID, 0, len(plates))
	for _, plate := range plates {
		record, err := f.svc.Create(ctx, CreateInput{
			LicensePlate:   plate,
			CarCategory:    "SEDAN",
			WashType:       "COMPLETE",
			WasherUsername: "mike",
			ActorID:        uuid.New(),
		})
		require.NoError(t, err)
		ids = append(ids, record.ID)
		time.Sleep(5 * time.Millisecond)
	}
	_, err := f.svc.Finish(ctx, ids[0])
	require.NoError(t, err)

	t.Run("filters by finished state", func(t *testing.T) {
		finished := true
		page, err := f.svc.List(ctx, ListInput{Filter: ListFilter{Finished: &finished}})
		require.NoError(t, err)
		require.Len(t, page.Records, 1)
		assert.Equal(t, ids[0], page.Records[0].ID)
	})

	t.Run("filters by plate fragment, case-insensitive", func(t *testing.T) {
		page, err := f.svc.List(ctx, ListInput{Filter: ListFilter{PlateQuery: "aa-"}})
		require.NoError(t, err)
		assert.Len(t, page.Records, 2)
	})

	t.Run("pages newest-first with a cursor", func(t *testing.T) {
		first, err := f.svc.List(ctx, ListInput{Limit: 2})
		require.NoError(t, err)
		require.Len(t, first.Records, 2)
		require.NotEmpty(t, first.NextCursor)

		second, err := f.svc.List(ctx, ListInput{Limit: 2, Cursor: first.NextCursor})
		require.NoError(t, err)
		require.Len(t, second.Records, 1)
		assert.Empty(t, second.NextCursor)
	})
}
