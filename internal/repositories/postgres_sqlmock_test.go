package repositories_test

import (
	"context"
	"errors"
	"testing"

	"afiyazone/internal/database"
	"afiyazone/internal/models"
	"afiyazone/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockPostgres(t *testing.T) (*repositories.GORMOrderRepository, *repositories.GORMNotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := database.OpenDialector(postgres.New(postgres.Config{Conn: sqlDB}), gormlogger.Silent)
	require.NoError(t, err)
	return repositories.NewGORMOrderRepository(db), repositories.NewGORMNotificationRepository(db), mock
}

func TestOrderRepository_Postgres_UpdateStatusNotFound(t *testing.T) {
	orders, _, mock := setupMockPostgres(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := orders.UpdateStatus(context.Background(), "missing", models.OrderStatusShipped, "admin-1")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Postgres_ListByUserError(t *testing.T) {
	orders, _, mock := setupMockPostgres(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnError(errors.New("connection reset"))

	_, err := orders.ListByUser(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list orders for user u1")
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Postgres_CountUnread(t *testing.T) {
	_, notifications, mock := setupMockPostgres(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs("u1", false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := notifications.CountUnread(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Postgres_LockByID(t *testing.T) {
	orders, _, mock := setupMockPostgres(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "order_number", "status"}).
			AddRow("o1", "u1", "AFZ-1-1", models.OrderStatusPending))

	order, err := orders.LockByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Postgres_LockByIDNotFound(t *testing.T) {
	orders, _, mock := setupMockPostgres(t)

	mock.ExpectQuery(`FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := orders.LockByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
