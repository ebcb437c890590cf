package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"superdaily/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestBuildInsert(t *testing.T) {
	got := BuildInsert("bookings", []string{"user_id", "service_id", "created_at"})
	assert.Equal(t, "INSERT INTO `bookings` (`user_id`,`service_id`,`created_at`) VALUES (?,?,?)", got)
}

func TestBookingRepository_Insert(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewBookingRepository(gormDB, "bookings")

	row := model.BookingRow{
		{Column: "user_id", Value: model.IntValue(7)},
		{Column: "final_amount", Value: model.StringValue("499.00")},
		{Column: "address_details", Value: model.NullValue()},
		{Column: "maid_notes", Value: model.BoolValue(true)},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `bookings` (`user_id`,`final_amount`,`address_details`,`maid_notes`) VALUES (?,?,?,?)")).
		WithArgs(int64(7), "499.00", nil, true).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Insert(context.Background(), row)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_InsertError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewBookingRepository(gormDB, "bookings")

	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnError(errors.New("Unknown column 'maid_id'"))

	_, err := repo.Insert(context.Background(), model.BookingRow{{Column: "maid_id", Value: model.IntValue(1)}})
	assert.EqualError(t, err, "Unknown column 'maid_id'")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_InsertNoColumns(t *testing.T) {
	gormDB, _ := newMockDB(t)
	repo := NewBookingRepository(gormDB, "bookings")

	_, err := repo.Insert(context.Background(), nil)
	assert.Error(t, err)
}

func TestProductRepository_ListAll(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewProductRepository(gormDB)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "image"}).
		AddRow(int64(1), "Floor cleaner", "120.00", "uploads/products/a.png").
		AddRow(int64(2), "Mop", "80.50", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products`")).WillReturnRows(rows)

	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	id, ok := products[0].Get("id")
	require.True(t, ok)
	assert.Equal(t, "1", *id)

	image, ok := products[0].Get("image")
	require.True(t, ok)
	assert.Equal(t, "uploads/products/a.png", *image)

	image, ok = products[1].Get("image")
	require.True(t, ok)
	assert.Nil(t, image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListAllEmpty(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewProductRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_ListAllError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewProductRepository(gormDB)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("Table 'superdaily2.products' doesn't exist"))

	products, err := repo.ListAll(context.Background())
	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestUserRepository_FindByPhone(t *testing.T) {
	userColumns := []string{"id", "name", "email", "phone", "password", "role", "is_active"}
	query := regexp.QuoteMeta("SELECT `id`,`name`,`email`,`phone`,`password`,`role`,`is_active` FROM `users` WHERE phone = ?")

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		wantErr  error
		wantName *string
		wantFlag *int
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(userColumns).
				AddRow(int64(3), "Asha", "asha@example.com", "9876543210", "$2y$10$hash", "customer", int64(1)),
			wantName: strPtr("Asha"),
			wantFlag: intPtr(1),
		},
		{
			name: "null columns",
			rows: sqlmock.NewRows(userColumns).
				AddRow(int64(4), nil, nil, "9876543210", "$2y$10$hash", nil, nil),
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows(userColumns),
			wantErr: gorm.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := newMockDB(t)
			repo := NewUserRepository(gormDB)
			mock.ExpectQuery(query).WillReturnRows(tt.rows)

			user, err := repo.FindByPhone(context.Background(), "9876543210")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "9876543210", user.Phone)
			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, tt.wantFlag, user.IsActive)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProductRepository_FirstOrCreateExisting(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewProductRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `products` WHERE name = ?")).
		WithArgs("Mop").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(1)))

	err := repo.FirstOrCreate(context.Background(), &model.ProductRecord{Name: "Mop"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
