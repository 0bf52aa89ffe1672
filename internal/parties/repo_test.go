package parties

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db/models"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
)

func setupPartiesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	vehicles := `
CREATE TABLE IF NOT EXISTS vehicles (
  id TEXT PRIMARY KEY,
  license_plate TEXT NOT NULL UNIQUE,
  car_category TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	washers := `
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
);`
	companies := `
CREATE TABLE IF NOT EXISTS companies (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  contact TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	discounts := `
CREATE TABLE IF NOT EXISTS discounts (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  percentage TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(vehicles).Error)
	require.NoError(t, db.Exec(washers).Error)
	require.NoError(t, db.Exec(companies).Error)
	require.NoError(t, db.Exec(discounts).Error)
	return db
}

func TestResolveVehicleFindOrCreate(t *testing.T) {
	db := setupPartiesTestDB(t)
	res := NewResolver(NewRepository(db))
	ctx := context.Background()

	first, err := res.ResolveVehicle(ctx, "AA-001-BB", "SEDAN")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, "SEDAN", first.CarCategory)

	// Same plate resolves to the same row.
	second, err := res.ResolveVehicle(ctx, "AA-001-BB", "SEDAN")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Vehicle{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveVehicleSyncsCategory(t *testing.T) {
	db := setupPartiesTestDB(t)
	res := NewResolver(NewRepository(db))
	ctx := context.Background()

	first, err := res.ResolveVehicle(ctx, "CC-777-DD", "SEDAN")
	require.NoError(t, err)

	second, err := res.ResolveVehicle(ctx, "CC-777-DD", "BIG_JEEP")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "BIG_JEEP", second.CarCategory)

	var stored models.Vehicle
	require.NoError(t, db.Where("id = ?", first.ID).First(&stored).Error)
	assert.Equal(t, "BIG_JEEP", stored.CarCategory)
}

func TestResolveVehicleDistinguishesPlates(t *testing.T) {
	db := setupPartiesTestDB(t)
	res := NewResolver(NewRepository(db))
	ctx := context.Background()

	a, err := res.ResolveVehicle(ctx, "AA-001-BB", "SEDAN")
	require.NoError(t, err)
	b, err := res.ResolveVehicle(ctx, "AA-001-BC", "SEDAN")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestResolveWasher(t *testing.T) {
	t.Run("prefers the id", func(t *testing.T) {
		db := setupPartiesTestDB(t)
		repo := NewRepository(db)
		res := NewResolver(repo)
		ctx := context.Background()

		existing := &models.Washer{Username: "giorgi", Active: true, SalaryPercentage: decimal.NewFromInt(30)}
		require.NoError(t, repo.CreateWasher(ctx, existing))

		got, err := res.ResolveWasher(ctx, &existing.ID, "somebody-else")
		require.NoError(t, err)
		assert.Equal(t, "giorgi", got.Username)
	})

	t.Run("falls back to the username", func(t *testing.T) {
		db := setupPartiesTestDB(t)
		repo := NewRepository(db)
		res := NewResolver(repo)
		ctx := context.Background()

		existing := &models.Washer{Username: "nino", Active: true, SalaryPercentage: decimal.NewFromInt(25)}
		require.NoError(t, repo.CreateWasher(ctx, existing))

		got, err := res.ResolveWasher(ctx, nil, "nino")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
		assert.True(t, got.SalaryPercentage.Equal(decimal.NewFromInt(25)))
	})

	t.Run("auto-creates an unknown username with zero commission", func(t *testing.T) {
		db := setupPartiesTestDB(t)
		res := NewResolver(NewRepository(db))
		ctx := context.Background()

		got, err := res.ResolveWasher(ctx, nil, "levani")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, got.ID)
		assert.True(t, got.Active)
		assert.True(t, got.SalaryPercentage.IsZero())

		var stored models.Washer
		require.NoError(t, db.Where("username = ?", "levani").First(&stored).Error)
		assert.Equal(t, got.ID, stored.ID)
	})

	t.Run("rejects a missing id and username", func(t *testing.T) {
		db := setupPartiesTestDB(t)
		res := NewResolver(NewRepository(db))

		_, err := res.ResolveWasher(context.Background(), nil, "  ")
		require.Error(t, err)
	})
}

// racingPartiesRepo simulates a concurrent writer: the lookup misses but the
// insert then trips the unique index.
type racingPartiesRepo struct {
	Repository
	createErr error
}

func (r *racingPartiesRepo) WithTx(tx *gorm.DB) Repository { return r }

func (r *racingPartiesRepo) FindVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *racingPartiesRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return r.createErr
}

func (r *racingPartiesRepo) FindWasherByUsername(ctx context.Context, username string) (*models.Washer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *racingPartiesRepo) CreateWasher(ctx context.Context, washer *models.Washer) error {
	return r.createErr
}

func TestResolverMapsRacingDuplicateToConflict(t *testing.T) {
	repo := &racingPartiesRepo{
		createErr: errors.New(`pq: duplicate key value violates unique constraint "idx_vehicles_license_plate"`),
	}
	res := NewResolver(repo)
	ctx := context.Background()

	t.Run("vehicle plate", func(t *testing.T) {
		_, err := res.ResolveVehicle(ctx, "AA-001-BB", "SEDAN")
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
	})

	t.Run("washer username", func(t *testing.T) {
		_, err := res.ResolveWasher(ctx, nil, "giorgi")
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
	})
}

func TestCompanySnapshot(t *testing.T) {
	db := setupPartiesTestDB(t)
	repo := NewRepository(db)
	res := NewResolver(repo)
	ctx := context.Background()

	company := &models.Company{Name: "Delta Logistics"}
	require.NoError(t, repo.CreateCompany(ctx, company))

	name := res.CompanySnapshot(ctx, &company.ID)
	require.NotNil(t, name)
	assert.Equal(t, "Delta Logistics", *name)

	assert.Nil(t, res.CompanySnapshot(ctx, nil))

	unknown := uuid.New()
	assert.Nil(t, res.CompanySnapshot(ctx, &unknown))
}

func TestResolveDiscountID(t *testing.T) {
	db := setupPartiesTestDB(t)
	repo := NewRepository(db)
	res := NewResolver(repo)
	ctx := context.Background()

	company := &models.Company{Name: "Delta Logistics"}
	require.NoError(t, repo.CreateCompany(ctx, company))

	active := &models.Discount{CompanyID: company.ID, Percentage: decimal.NewFromInt(20), Active: true}
	require.NoError(t, repo.CreateDiscount(ctx, active))
	inactive := &models.Discount{CompanyID: company.ID, Percentage: decimal.NewFromInt(50), Active: false}
	require.NoError(t, repo.CreateDiscount(ctx, inactive))

	t.Run("matches an active discount exactly", func(t *testing.T) {
		got := res.ResolveDiscountID(ctx, &company.ID, decimal.NewFromInt(20))
		require.NotNil(t, got)
		assert.Equal(t, active.ID, *got)
	})

	t.Run("ignores inactive discounts", func(t *testing.T) {
		assert.Nil(t, res.ResolveDiscountID(ctx, &company.ID, decimal.NewFromInt(50)))
	})

	t.Run("ignores percentages without a configured tier", func(t *testing.T) {
		assert.Nil(t, res.ResolveDiscountID(ctx, &company.ID, decimal.NewFromInt(15)))
	})

	t.Run("requires a company and a positive percentage", func(t *testing.T) {
		assert.Nil(t, res.ResolveDiscountID(ctx, nil, decimal.NewFromInt(20)))
		assert.Nil(t, res.ResolveDiscountID(ctx, &company.ID, decimal.Zero))
	})
}

func TestSearchVehiclesMatchesPlateFragment(t *testing.T) {
	db := setupPartiesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for _, plate := range []string{"AA-123-BB", "aa-124-bb", "ZZ-999-ZZ"} {
		require.NoError(t, repo.CreateVehicle(ctx, &models.Vehicle{LicensePlate: plate, CarCategory: "SEDAN"}))
	}

	found, err := repo.SearchVehicles(ctx, "a-12", 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
}
