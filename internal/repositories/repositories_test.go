package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"afiyazone/internal/database"
	"afiyazone/internal/models"
	"afiyazone/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, repo repositories.UserRepository, email, role string) *models.User {
	t.Helper()
	user := &models.User{FirstName: "Test", LastName: "User", Email: email, Password: "hash", Phone: "1", Role: role}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func newOrder(userID, number string) *models.Order {
	return &models.Order{
		UserID:        userID,
		OrderNumber:   number,
		PaymentMethod: models.PaymentCashOnDelivery,
		Items:         []models.OrderItem{{ProductID: "p-1", Name: "Vitamin C", Price: 10, Quantity: 2}},
		Subtotal:      20,
		Total:         20,
		CreatedBy:     &userID,
	}
}

func TestUserRepository_EmailIsNormalized(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMUserRepository(setupDB(t))

	user := createUser(t, repo, "  Jane.Doe@Example.COM ", "")
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)

	found, err := repo.GetByEmail(ctx, "JANE.DOE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestUserRepository_ListAdminIDs(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMUserRepository(setupDB(t))

	ids, err := repo.ListAdminIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	admin1 := createUser(t, repo, "a1@example.com", models.RoleAdmin)
	createUser(t, repo, "u1@example.com", models.RoleUser)
	admin2 := createUser(t, repo, "a2@example.com", models.RoleAdmin)

	ids, err = repo.ListAdminIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{admin1.ID, admin2.ID}, ids)
}

func TestUserRepository_UpdateKeepsEmail(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMUserRepository(setupDB(t))
	user := createUser(t, repo, "keep@example.com", "")

	user.FirstName = "Changed"
	user.Email = "other@example.com"
	user.Notifications = models.NotificationPreferences{}
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Changed", stored.FirstName)
	assert.Equal(t, "keep@example.com", stored.Email)
	assert.False(t, stored.Notifications.OrderUpdates)

	err = repo.Update(ctx, &models.User{ID: "missing"})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestUserRepository_DeleteKeepsOrders(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	user := createUser(t, users, "leaver@example.com", "")
	require.NoError(t, orders.Create(ctx, newOrder(user.ID, "AFZ-1-1")))

	require.NoError(t, users.Delete(ctx, user.ID))
	_, err := users.GetByID(ctx, user.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	// The order survives and still points at the removed user.
	remaining, err := orders.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, user.ID, remaining[0].UserID)

	err = users.Delete(ctx, user.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	orders := repositories.NewGORMOrderRepository(db)
	user := createUser(t, users, "buyer@example.com", "")

	order := newOrder(user.ID, "AFZ-100-7")
	require.NoError(t, orders.Create(ctx, order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Vitamin C", stored.Items[0].Name)
	require.NotNil(t, stored.User)
	assert.Equal(t, "buyer@example.com", stored.User.Email)
	require.NotNil(t, stored.Creator)
	assert.Nil(t, stored.Updater)

	_, err = orders.GetForUser(ctx, order.ID, "someone-else")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	exists, err := orders.ExistsByNumber(ctx, "AFZ-100-7")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = orders.ExistsByNumber(ctx, "AFZ-100-8")
	require.NoError(t, err)
	assert.False(t, exists)

	// Order numbers are unique.
	assert.Error(t, orders.Create(ctx, newOrder(user.ID, "AFZ-100-7")))
}

func TestOrderRepository_SearchByNumber(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	orders := repositories.NewGORMOrderRepository(db)

	require.NoError(t, orders.Create(ctx, newOrder("u1", "AFZ-1700000000000-12")))
	require.NoError(t, orders.Create(ctx, newOrder("u1", "AFZ-1700000000001-999")))
	require.NoError(t, orders.Create(ctx, newOrder("u2", "XYZ-1700000000002-5")))

	found, err := orders.SearchByNumber(ctx, "afz-17")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = orders.SearchByNumber(ctx, "999")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "AFZ-1700000000001-999", found[0].OrderNumber)

	found, err = orders.SearchByNumber(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOrderRepository_UpdateStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	orders := repositories.NewGORMOrderRepository(db)
	admin := createUser(t, users, "admin@example.com", models.RoleAdmin)

	order := newOrder("u1", "AFZ-2-2")
	require.NoError(t, orders.Create(ctx, order))

	require.NoError(t, repositories.NewGORMStore(db).Transaction(ctx, func(repos repositories.Repositories) error {
		locked, err := repos.Orders.LockByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, locked.Status)
		return nil
	}))

	require.NoError(t, orders.UpdateStatus(ctx, order.ID, models.OrderStatusShipped, admin.ID))
	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
	require.NotNil(t, stored.Updater)
	assert.Equal(t, admin.ID, stored.Updater.ID)

	err = orders.UpdateStatus(ctx, "missing", models.OrderStatusShipped, admin.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	require.NoError(t, orders.Delete(ctx, order.ID))
	_, err = orders.GetByID(ctx, order.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items)

	err = orders.Delete(ctx, order.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestNotificationRepository_ReadState(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMNotificationRepository(setupDB(t))

	require.NoError(t, repo.CreateMany(ctx, []models.Notification{
		{UserID: "u1", Type: models.NotificationOrderCreated, Title: "Order Created", Message: "first"},
		{UserID: "u1", Type: models.NotificationOrderStatusChanged, Title: "Order Status Updated", Message: "second"},
		{UserID: "u2", Type: models.NotificationNewOrderAdmin, Title: "New Order", Message: "admin"},
	}))
	require.NoError(t, repo.CreateMany(ctx, nil))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	count, err := repo.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// u2 cannot touch u1's notification.
	_, err = repo.MarkRead(ctx, list[0].ID, "u2")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	read, err := repo.MarkRead(ctx, list[0].ID, "u1")
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	require.NotNil(t, read.ReadAt)
	assert.WithinDuration(t, time.Now(), *read.ReadAt, time.Minute)

	changed, err := repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	changed, err = repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, changed)

	count, err = repo.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountUnread(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestProductRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMProductRepository(setupDB(t))

	products := []models.Product{
		{Name: models.LocalizedText{En: "Vitamin C", Ar: "فيتامين سي"}, Category: "supplements", Price: 30, Rating: 4.5, IsFeatured: true},
		{Name: models.LocalizedText{En: "Rose Cream", Ar: "كريم الورد"}, Category: "cosmetics", Price: 55, Rating: 3.9},
		{Name: models.LocalizedText{En: "Pulse Oximeter", Ar: "جهاز قياس"}, Category: "medical", Price: 89.99, Rating: 4.8},
	}
	for i := range products {
		require.NoError(t, repo.Create(ctx, &products[i]))
	}

	all, err := repo.List(ctx, repositories.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Pulse Oximeter", all[0].Name.En)

	minPrice, maxPrice := 40.0, 60.0
	ranged, err := repo.List(ctx, repositories.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "Rose Cream", ranged[0].Name.En)

	featured, err := repo.List(ctx, repositories.ProductFilter{Featured: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)

	searched, err := repo.List(ctx, repositories.ProductFilter{Search: "vitamin"})
	require.NoError(t, err)
	require.Len(t, searched, 1)

	cheapest, err := repo.List(ctx, repositories.ProductFilter{SortBy: repositories.SortPriceLowHigh})
	require.NoError(t, err)
	assert.Equal(t, 30.0, cheapest[0].Price)

	byCategory, err := repo.List(ctx, repositories.ProductFilter{Category: "medical"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
}

func TestProductRepository_Ratings(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMProductRepository(setupDB(t))
	product := &models.Product{Name: models.LocalizedText{En: "Honey", Ar: "عسل"}, Category: "herbal", Price: 12}
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.UpsertRating(ctx, &models.ProductRating{ProductID: product.ID, UserID: "u1", Rating: 2}))
	require.NoError(t, repo.UpsertRating(ctx, &models.ProductRating{ProductID: product.ID, UserID: "u2", Rating: 5}))
	require.NoError(t, repo.UpsertRating(ctx, &models.ProductRating{ProductID: product.ID, UserID: "u1", Rating: 4}))

	ratings, err := repo.ListRatings(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)

	require.NoError(t, repo.SetRating(ctx, product.ID, 4.5))
	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, stored.Rating)
	assert.Len(t, stored.Ratings, 2)

	require.NoError(t, repo.Delete(ctx, product.ID))
	ratings, err = repo.ListRatings(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestStatisticsRepository_Counts(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	orders := repositories.NewGORMOrderRepository(db)
	stats := repositories.NewGORMStatisticsRepository(db)

	empty, err := stats.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Revenue)
	assert.Equal(t, int64(0), empty.OrdersByStatus[models.OrderStatusPending])

	user := createUser(t, users, "stats@example.com", "")
	first := newOrder(user.ID, "AFZ-3-1")
	second := newOrder(user.ID, "AFZ-3-2")
	second.Total = 35.5
	require.NoError(t, orders.Create(ctx, first))
	require.NoError(t, orders.Create(ctx, second))
	require.NoError(t, orders.UpdateStatus(ctx, second.ID, models.OrderStatusDelivered, user.ID))

	counts, err := stats.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Users)
	assert.Equal(t, int64(2), counts.Orders)
	assert.Equal(t, int64(0), counts.Products)
	assert.InDelta(t, 55.5, counts.Revenue, 0.0001)
	assert.Equal(t, int64(1), counts.OrdersByStatus[models.OrderStatusPending])
	assert.Equal(t, int64(1), counts.OrdersByStatus[models.OrderStatusDelivered])
	assert.Equal(t, int64(0), counts.OrdersByStatus[models.OrderStatusCancelled])
}

func TestGORMStore_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	store := repositories.NewGORMStore(db)

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(repos repositories.Repositories) error {
		if err := repos.Orders.Create(ctx, newOrder("u1", "AFZ-4-4")); err != nil {
			return err
		}
		if err := repos.Notifications.CreateMany(ctx, []models.Notification{
			{UserID: "u1", Type: models.NotificationOrderCreated, Title: "t", Message: "m"},
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := store.Repositories().Orders.ExistsByNumber(ctx, "AFZ-4-4")
	require.NoError(t, err)
	assert.False(t, exists)

	unread, err := store.Repositories().Notifications.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestTeamAndMessageRepositories(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	team := repositories.NewGORMTeamRepository(db)
	messages := repositories.NewGORMMessageRepository(db)

	active := &models.TeamMember{Name: models.LocalizedText{En: "Dr. Sara", Ar: "د. سارة"}, Image: "sara.jpg", Department: "medical", Order: 2, IsActive: true}
	hidden := &models.TeamMember{Name: models.LocalizedText{En: "Omar", Ar: "عمر"}, Image: "omar.jpg", Department: "support", Order: 1}
	require.NoError(t, team.Create(ctx, active))
	require.NoError(t, team.Create(ctx, hidden))

	visible, err := team.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)

	all, err := team.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Omar", all[0].Name.En)

	hidden.IsActive = true
	require.NoError(t, team.Update(ctx, hidden))
	visible, err = team.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	require.NoError(t, team.Delete(ctx, hidden.ID))
	assert.True(t, errors.Is(team.Delete(ctx, hidden.ID), repositories.ErrNotFound))

	msg := &models.Message{Name: "Ali", Email: "ali@example.com", Message: "Hello"}
	require.NoError(t, messages.Create(ctx, msg))
	assert.Equal(t, models.MessageStatusNew, msg.Status)
	list, err := messages.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
