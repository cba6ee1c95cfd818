package postgres

import (
	"testing"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndOfDay(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	cases := []struct {
		name  string
		input time.Time
	}{
		{
			name:  "midnight UTC",
			input: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "midday with nanoseconds",
			input: time.Date(2025, 3, 14, 12, 34, 56, 789, time.UTC),
		},
		{
			name:  "non-UTC location",
			input: time.Date(2025, 12, 31, 8, 0, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := endOfDay(tc.input)

			assert.Equal(t, tc.input.Year(), got.Year())
			assert.Equal(t, tc.input.Month(), got.Month())
			assert.Equal(t, tc.input.Day(), got.Day())
			assert.Equal(t, 23, got.Hour())
			assert.Equal(t, 59, got.Minute())
			assert.Equal(t, 59, got.Second())
			assert.Equal(t, int(999*time.Millisecond), got.Nanosecond())
			assert.Equal(t, tc.input.Location(), got.Location())
			assert.True(t, got.After(tc.input) || got.Equal(tc.input))
		})
	}
}

func TestPatchColumns(t *testing.T) {
	t.Parallel()

	t.Run("empty patch yields no columns", func(t *testing.T) {
		t.Parallel()

		columns := patchColumns(&entity.DevicePatch{})
		assert.Empty(t, columns)
	})

	t.Run("only set fields appear", func(t *testing.T) {
		t.Parallel()

		saleDate := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		patch := &entity.DevicePatch{
			Status:    entity.Set(entity.StatusSold),
			SalePrice: entity.Set(ptr(549.0)),
			SaleDate:  entity.Set(&saleDate),
		}

		columns := patchColumns(patch)

		require.Len(t, columns, 3)
		assert.Equal(t, "SOLD", columns["status"])
		assert.Equal(t, ptr(549.0), columns["sale_price"])
		assert.Equal(t, &saleDate, columns["sale_date"])
	})

	t.Run("explicit null maps to nil column value", func(t *testing.T) {
		t.Parallel()

		patch := &entity.DevicePatch{
			IMEI:    entity.Set[*string](nil),
			Defects: entity.Set[*string](nil),
		}

		columns := patchColumns(patch)

		require.Len(t, columns, 2)
		imei, ok := columns["imei"]
		require.True(t, ok)
		assert.Nil(t, imei)
		defects, ok := columns["defects"]
		require.True(t, ok)
		assert.Nil(t, defects)
	})

	t.Run("status is stored as its string form", func(t *testing.T) {
		t.Parallel()

		patch := &entity.DevicePatch{Status: entity.Set(entity.StatusRepair)}

		columns := patchColumns(patch)

		assert.Equal(t, "REPAIR", columns["status"])
	})
}

func TestConstraintClassification(t *testing.T) {
	t.Parallel()

	t.Run("imei unique index violation", func(t *testing.T) {
		t.Parallel()

		err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_devices_imei" (SQLSTATE 23505)`)

		assert.True(t, isUniqueConstraintViolation(err))
		assert.True(t, isUniqueViolationOn(err, "imei"))
	})

	t.Run("primary key violation is not an imei violation", func(t *testing.T) {
		t.Parallel()

		err := errors.New(`ERROR: duplicate key value violates unique constraint "devices_pkey" (SQLSTATE 23505)`)

		assert.True(t, isUniqueConstraintViolation(err))
		assert.False(t, isUniqueViolationOn(err, "imei"))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection refused")

		assert.False(t, isUniqueConstraintViolation(err))
		assert.False(t, isUniqueViolationOn(err, "imei"))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		t.Parallel()

		err := errors.New(`ERROR: insert or update on table "devices" violates foreign key constraint "fk_users_devices" (SQLSTATE 23503)`)

		assert.True(t, isForeignKeyConstraintViolation(err))
		assert.False(t, isUniqueConstraintViolation(err))
	})

	t.Run("not null violation", func(t *testing.T) {
		t.Parallel()

		err := errors.New(`ERROR: null value in column "model" of relation "devices" violates not-null constraint (SQLSTATE 23502)`)

		assert.True(t, isNotNullConstraintViolation(err))
	})
}

func TestDeviceModelRoundTrip(t *testing.T) {
	t.Parallel()

	imei := "356938035643809"
	saleDate := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	salePrice := 480.0
	buyer := "Max Mustermann"

	device := &entity.Device{
		ID:            "IP15P-0042",
		Model:         "iPhone 15 Pro",
		Storage:       "256GB",
		Color:         "Natural Titanium",
		Condition:     "Sehr gut",
		Status:        entity.StatusSold,
		IMEI:          &imei,
		PurchaseDate:  time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		PurchasePrice: 390,
		ShippingBuy:   5.99,
		RepairCost:    0,
		SalePrice:     &salePrice,
		SalesFees:     12.5,
		SaleDate:      &saleDate,
		BuyerName:     &buyer,
		IsDiffTax:     true,
		Documents:     []entity.Document{},
	}

	got := toDeviceDomain(fromDeviceDomain(device))

	assert.Equal(t, device, got)
}

func TestDeviceFiltersValidation(t *testing.T) {
	t.Parallel()

	// The sale-date filter semantics live in SQL, but the filter container
	// itself must keep distinguishing an absent bound from a zero one.
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	status := entity.StatusStock

	filters := &repository.DeviceFilters{
		DateFrom: &from,
		DateType: repository.DateFieldSale,
		Status:   &status,
	}

	assert.Nil(t, filters.DateTo)
	assert.Equal(t, repository.DateFieldSale, filters.DateType)
	assert.Equal(t, entity.StatusStock, *filters.Status)
}

func ptr[T any](v T) *T {
	return &v
}
