package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderServiceFixture struct {
	db    *gorm.DB
	svc   *OrderService
	carts *CartService
	user  models.User
	books []models.Book
}

func setupOrderServiceTest(t *testing.T) *orderServiceFixture {
	t.Helper()
	db := setupServiceDB(t)

	user := models.User{
		Email:           "buyer@example.com",
		PasswordHash:    "x",
		Status:          "active",
		ShippingAddress: "1 Library Lane",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	cart := models.ShoppingCart{UserID: user.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	books := []models.Book{
		{
			Title:  "The Go Programming Language",
			Author: "Alan A. A. Donovan",
			ISBN:   "9780134190440",
			Price:  models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
		},
		{
			Title:  "Kafka on the Shore",
			Author: "Haruki Murakami",
			ISBN:   "9781400079278",
			Price:  models.NewMoneyFromDecimal(decimal.NewFromFloat(16.99)),
		},
	}
	for i := range books {
		if err := db.Create(&books[i]).Error; err != nil {
			t.Fatalf("create book failed: %v", err)
		}
	}

	cartRepo := repository.NewCartRepository(db)
	bookRepo := repository.NewBookRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &orderServiceFixture{
		db:    db,
		svc:   NewOrderService(orderRepo, cartRepo, userRepo, nil),
		carts: NewCartService(cartRepo, bookRepo),
		user:  user,
		books: books,
	}
}

func TestCreateOrderSnapshotsPricesAndClearsCart(t *testing.T) {
	f := setupOrderServiceTest(t)

	if _, err := f.carts.AddItem(f.user.ID, AddItemInput{BookID: f.books[0].ID, Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := f.carts.AddItem(f.user.ID, AddItemInput{BookID: f.books[1].ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	order, err := f.svc.CreateOrder(f.user.ID, CreateOrderInput{})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 2 x 39.99 + 1 x 16.99
	if got := order.Total.String(); got != "96.97" {
		t.Fatalf("total want 96.97, got %s", got)
	}
	if order.Status != "created" {
		t.Fatalf("status want created, got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "BS") || len(order.OrderNo) != 22 {
		t.Fatalf("unexpected order number %q", order.OrderNo)
	}
	if order.ShippingAddress != "1 Library Lane" {
		t.Fatalf("shipping address should fall back to profile, got %q", order.ShippingAddress)
	}
	if len(order.Items) != 2 {
		t.Fatalf("want 2 order items, got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.Title == "" {
			t.Fatalf("order item should snapshot title")
		}
	}

	cart, err := f.carts.GetByUserID(f.user.ID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart should be emptied after checkout, got %d items", len(cart.Items))
	}
}

func TestCreateOrderSnapshotSurvivesPriceChange(t *testing.T) {
	f := setupOrderServiceTest(t)

	if _, err := f.carts.AddItem(f.user.ID, AddItemInput{BookID: f.books[1].ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := f.svc.CreateOrder(f.user.ID, CreateOrderInput{ShippingAddress: "2 Harbor Road"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ShippingAddress != "2 Harbor Road" {
		t.Fatalf("explicit shipping address should win, got %q", order.ShippingAddress)
	}

	// 改价不影响历史订单
	f.books[1].Price = models.NewMoneyFromDecimal(decimal.NewFromFloat(99.00))
	if err := f.db.Save(&f.books[1]).Error; err != nil {
		t.Fatalf("update book price failed: %v", err)
	}

	reloaded, err := f.svc.GetByIDForUser(f.user.ID, order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if len(reloaded.Items) != 1 {
		t.Fatalf("want 1 order item, got %d", len(reloaded.Items))
	}
	if got := reloaded.Items[0].Price.String(); got != "16.99" {
		t.Fatalf("snapshot price want 16.99, got %s", got)
	}
	if got := reloaded.Total.String(); got != "16.99" {
		t.Fatalf("total want 16.99, got %s", got)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := setupOrderServiceTest(t)

	_, err := f.svc.CreateOrder(f.user.ID, CreateOrderInput{})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
	var count int64
	if err := f.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no order should be written, got %d", count)
	}
}

func TestOrderOwnershipIsolation(t *testing.T) {
	f := setupOrderServiceTest(t)

	if _, err := f.carts.AddItem(f.user.ID, AddItemInput{BookID: f.books[0].ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := f.svc.CreateOrder(f.user.ID, CreateOrderInput{})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 他人的订单与不存在的订单同样按未找到处理
	_, err = f.svc.GetByIDForUser(f.user.ID+1, order.ID)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound for other user, got %v", err)
	}
	_, err = f.svc.GetItemForUser(f.user.ID, order.ID, 424242)
	if !errors.Is(err, ErrOrderItemNotFound) {
		t.Fatalf("want ErrOrderItemNotFound, got %v", err)
	}
}

func TestUpdateStatusCanonicalizesCase(t *testing.T) {
	f := setupOrderServiceTest(t)

	if _, err := f.carts.AddItem(f.user.ID, AddItemInput{BookID: f.books[0].ID, Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	order, err := f.svc.CreateOrder(f.user.ID, CreateOrderInput{})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := f.svc.UpdateStatus(order.ID, "  DELIVERED ")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != "delivered" {
		t.Fatalf("status want delivered, got %s", updated.Status)
	}

	_, err = f.svc.UpdateStatus(order.ID, "shipped")
	if !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("want ErrInvalidOrderStatus, got %v", err)
	}
	_, err = f.svc.UpdateStatus(order.ID+100, "pending")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestListAdminRejectsUnknownStatusFilter(t *testing.T) {
	f := setupOrderServiceTest(t)

	_, _, err := f.svc.ListAdmin(repository.OrderListFilter{Page: 1, PageSize: 10, Status: "refunded"})
	if !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("want ErrInvalidOrderStatus, got %v", err)
	}

	orders, total, err := f.svc.ListAdmin(repository.OrderListFilter{Page: 1, PageSize: 10, Status: "Created"})
	if err != nil {
		t.Fatalf("list admin failed: %v", err)
	}
	if total != 0 || len(orders) != 0 {
		t.Fatalf("want empty result, got total=%d len=%d", total, len(orders))
	}
}
