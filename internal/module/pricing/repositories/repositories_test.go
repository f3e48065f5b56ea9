package repositories_test

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"wirpackens-service/internal/module/pricing/models/entity"
	"wirpackens-service/internal/module/pricing/repositories"
	"wirpackens-service/internal/pkg/errors"
	log_internal "wirpackens-service/internal/pkg/log"
	"wirpackens-service/internal/pkg/memstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "service_type", "room_count", "square_meters", "floor_count",
	"express_service", "weekend_service", "disposal_service",
	"base_price", "additional_price", "total_price", "created_at"}

func setup(t *testing.T) (repositories.Repositories, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repositories.New(sqlx.NewDb(db, "postgres"), log_internal.Nop()), mock
}

func TestInsertPriceCalculation(t *testing.T) {
	repo, mock := setup(t)
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	calc := entity.PriceCalculation{
		ServiceType:     "household",
		RoomCount:       3,
		SquareMeters:    80,
		WeekendService:  true,
		BasePrice:       200000,
		AdditionalPrice: 30000,
		TotalPrice:      230000,
	}

	testCases := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO price_calculations")).
					WithArgs("household", 3, 80, 0, false, true, false, int64(200000), int64(30000), int64(230000)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))
			},
		},
		{
			name: "database error",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO price_calculations")).
					WillReturnError(stderrors.New("connection reset"))
			},
			expectedErr: errors.InternalServerError("error insert price calculation"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			got, err := repo.InsertPriceCalculation(context.Background(), calc)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, now, got.CreatedAt)
			assert.Equal(t, int64(230000), got.TotalPrice)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPriceCalculationByID(t *testing.T) {
	repo, mock := setup(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM price_calculations WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "office", 2, 50, 0, false, false, false, 150000, 0, 150000, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM price_calculations WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(columns))

	calc, found, err := repo.FindPriceCalculationByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "office", calc.ServiceType)

	_, found, err = repo.FindPriceCalculationByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPriceCalculations(t *testing.T) {
	repo, mock := setup(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "moving", 4, 90, 3, false, false, true, 108000, 111600, 219600, now).
			AddRow(1, "office", 2, 50, 0, false, false, false, 150000, 0, 150000, now.Add(-time.Hour)))

	calcs, err := repo.ListPriceCalculations(context.Background())
	require.NoError(t, err)
	require.Len(t, calcs, 2)
	assert.Equal(t, int64(2), calcs[0].ID)
	assert.Equal(t, 3, calcs[0].FloorCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryRepositories(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store := memstore.New[entity.PriceCalculation]().WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})
	repo := repositories.NewMemory(store)
	ctx := context.Background()

	first, err := repo.InsertPriceCalculation(ctx, entity.PriceCalculation{ServiceType: "office", ID: 99})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.InsertPriceCalculation(ctx, entity.PriceCalculation{ServiceType: "messie"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))

	got, found, err := repo.FindPriceCalculationByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "office", got.ServiceType)

	list, err := repo.ListPriceCalculations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
}
