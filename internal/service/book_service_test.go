package service

import (
	"errors"
	"testing"

	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupBookServiceTest(t *testing.T) (*BookService, *CategoryService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	return NewBookService(repository.NewBookRepository(db), categoryRepo),
		NewCategoryService(categoryRepo), db
}

func TestBookCreateValidation(t *testing.T) {
	books, _, _ := setupBookServiceTest(t)

	_, err := books.Create(BookInput{Title: "  ", Author: "A", ISBN: "1"})
	if !errors.Is(err, ErrBookFieldsRequired) {
		t.Fatalf("want ErrBookFieldsRequired, got %v", err)
	}

	_, err = books.Create(BookInput{
		Title:  "Kafka on the Shore",
		Author: "Haruki Murakami",
		ISBN:   "9781400079278",
		Price:  decimal.NewFromFloat(-1),
	})
	if !errors.Is(err, ErrInvalidBookPrice) {
		t.Fatalf("want ErrInvalidBookPrice, got %v", err)
	}

	_, err = books.Create(BookInput{
		Title:       "Kafka on the Shore",
		Author:      "Haruki Murakami",
		ISBN:        "9781400079278",
		Price:       decimal.NewFromFloat(16.99),
		CategoryIDs: []uint{42},
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound for unknown category, got %v", err)
	}
}

func TestBookCreateDuplicateISBN(t *testing.T) {
	books, _, _ := setupBookServiceTest(t)

	input := BookInput{
		Title:  "Kafka on the Shore",
		Author: "Haruki Murakami",
		ISBN:   "9781400079278",
		Price:  decimal.NewFromFloat(16.99),
	}
	created, err := books.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input.Title = "Another Title"
	if _, err := books.Create(input); !errors.Is(err, ErrISBNExists) {
		t.Fatalf("want ErrISBNExists, got %v", err)
	}

	// 更新回自身的 ISBN 不算冲突
	if _, err := books.Update(created.ID, BookInput{
		Title:  "Kafka on the Shore (paperback)",
		Author: "Haruki Murakami",
		ISBN:   "9781400079278",
		Price:  decimal.NewFromFloat(14.99),
	}); err != nil {
		t.Fatalf("update with own isbn failed: %v", err)
	}
}

func TestBookUpdateReplacesCategories(t *testing.T) {
	books, categories, _ := setupBookServiceTest(t)

	fiction, err := categories.Create(CategoryInput{Name: "Fiction"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	tech, err := categories.Create(CategoryInput{Name: "Technology"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	book, err := books.Create(BookInput{
		Title:       "Kafka on the Shore",
		Author:      "Haruki Murakami",
		ISBN:        "9781400079278",
		Price:       decimal.NewFromFloat(16.99),
		CategoryIDs: []uint{fiction.ID},
	})
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	updated, err := books.Update(book.ID, BookInput{
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Price:       decimal.NewFromFloat(16.99),
		CategoryIDs: []uint{tech.ID},
	})
	if err != nil {
		t.Fatalf("update book failed: %v", err)
	}
	if len(updated.Categories) != 1 || updated.Categories[0].ID != tech.ID {
		t.Fatalf("categories should be replaced, got %+v", updated.Categories)
	}
}

func TestBookSoftDelete(t *testing.T) {
	books, _, db := setupBookServiceTest(t)

	book, err := books.Create(BookInput{
		Title:  "Kafka on the Shore",
		Author: "Haruki Murakami",
		ISBN:   "9781400079278",
		Price:  decimal.NewFromFloat(16.99),
	})
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	if err := books.Delete(book.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := books.GetByID(book.ID); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("deleted book should be hidden, got %v", err)
	}
	if err := books.Delete(book.ID); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("second delete want ErrBookNotFound, got %v", err)
	}

	// 软删除仅打标，行仍在表里
	var count int64
	if err := db.Unscoped().Model(&models.Book{}).Where("id = ?", book.ID).Count(&count).Error; err != nil {
		t.Fatalf("count unscoped failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("row should survive soft delete, got count=%d", count)
	}
}

func TestCategorySoftDeleteKeepsBooks(t *testing.T) {
	books, categories, _ := setupBookServiceTest(t)

	fiction, err := categories.Create(CategoryInput{Name: "Fiction"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	book, err := books.Create(BookInput{
		Title:       "Kafka on the Shore",
		Author:      "Haruki Murakami",
		ISBN:        "9781400079278",
		Price:       decimal.NewFromFloat(16.99),
		CategoryIDs: []uint{fiction.ID},
	})
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	if err := categories.Delete(fiction.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if _, err := categories.GetByID(fiction.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("deleted category should be hidden, got %v", err)
	}
	if _, _, err := books.ListByCategory(fiction.ID, 1, 20); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("listing by deleted category want ErrCategoryNotFound, got %v", err)
	}

	// 分类下的图书不受影响
	fetched, err := books.GetByID(book.ID)
	if err != nil {
		t.Fatalf("book should survive category delete: %v", err)
	}
	if fetched.ISBN != book.ISBN {
		t.Fatalf("unexpected book %+v", fetched)
	}
}

func TestCategoryNameRequired(t *testing.T) {
	_, categories, _ := setupBookServiceTest(t)

	if _, err := categories.Create(CategoryInput{Name: "   "}); !errors.Is(err, ErrCategoryNameEmpty) {
		t.Fatalf("want ErrCategoryNameEmpty, got %v", err)
	}
	if _, err := categories.Update(42, CategoryInput{Name: "X"}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound, got %v", err)
	}
}
