package service

import (
	"errors"
	"testing"

	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/repository"

	"github.com/shopspring/decimal"
)

func setupCartServiceTest(t *testing.T) (*CartService, *models.ShoppingCart, *models.Book) {
	t.Helper()
	db := setupServiceDB(t)

	user := models.User{Email: "buyer@example.com", PasswordHash: "x", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	cart := models.ShoppingCart{UserID: user.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	book := models.Book{
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
		ISBN:   "9780134190440",
		Price:  models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
	}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	svc := NewCartService(repository.NewCartRepository(db), repository.NewBookRepository(db))
	return svc, &cart, &book
}

func TestCartAddItemDefaultsQuantityToOne(t *testing.T) {
	svc, cart, book := setupCartServiceTest(t)

	item, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity want 1, got %d", item.Quantity)
	}
	if item.Book == nil || item.Book.ID != book.ID {
		t.Fatalf("expected book attached to created item")
	}
}

func TestCartAddItemDuplicateRejected(t *testing.T) {
	svc, cart, book := setupCartServiceTest(t)

	if _, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID, Quantity: 1})
	if !errors.Is(err, ErrDuplicateCartItem) {
		t.Fatalf("want ErrDuplicateCartItem, got %v", err)
	}

	// 数量调整只能走 UpdateItemQuantity
	fetched, err := svc.GetByUserID(cart.UserID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(fetched.Items) != 1 || fetched.Items[0].Quantity != 2 {
		t.Fatalf("cart should keep single row with original quantity, got %+v", fetched.Items)
	}
}

func TestCartAddItemUnknownBook(t *testing.T) {
	svc, cart, _ := setupCartServiceTest(t)

	_, err := svc.AddItem(cart.UserID, AddItemInput{BookID: 9999})
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("want ErrBookNotFound, got %v", err)
	}
}

func TestCartAddItemNegativeQuantity(t *testing.T) {
	svc, cart, book := setupCartServiceTest(t)

	_, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID, Quantity: -3})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
}

func TestCartUpdateItemQuantity(t *testing.T) {
	svc, cart, book := setupCartServiceTest(t)

	item, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	updated, err := svc.UpdateItemQuantity(cart.UserID, item.ID, UpdateItemInput{Quantity: 5})
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("quantity want 5, got %d", updated.Quantity)
	}

	_, err = svc.UpdateItemQuantity(cart.UserID, item.ID, UpdateItemInput{Quantity: 0})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
	_, err = svc.UpdateItemQuantity(cart.UserID, item.ID+100, UpdateItemInput{Quantity: 2})
	if !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("want ErrCartItemNotFound, got %v", err)
	}
}

func TestCartRemoveItemIdempotent(t *testing.T) {
	svc, cart, book := setupCartServiceTest(t)

	item, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if err := svc.RemoveItem(cart.UserID, item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	// 重复删除同一条目不报错
	if err := svc.RemoveItem(cart.UserID, item.ID); err != nil {
		t.Fatalf("repeated remove should be a no-op, got %v", err)
	}
	if err := svc.RemoveItem(cart.UserID, 9999); err != nil {
		t.Fatalf("removing unknown item should be a no-op, got %v", err)
	}

	fetched, err := svc.GetByUserID(cart.UserID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(fetched.Items) != 0 {
		t.Fatalf("cart should be empty, got %d items", len(fetched.Items))
	}
}

func TestCartClear(t *testing.T) {
	svc, cart, book := setupCartServiceTest(t)

	if _, err := svc.AddItem(cart.UserID, AddItemInput{BookID: book.ID, Quantity: 3}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.Clear(cart.UserID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	fetched, err := svc.GetByUserID(cart.UserID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(fetched.Items) != 0 {
		t.Fatalf("cart should be empty after clear, got %d items", len(fetched.Items))
	}
}

func TestCartMissingForUser(t *testing.T) {
	svc, _, _ := setupCartServiceTest(t)

	_, err := svc.GetByUserID(4242)
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("want ErrCartNotFound, got %v", err)
	}
}
