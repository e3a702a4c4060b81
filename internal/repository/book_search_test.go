package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bookstore-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupBookSearchTest(t *testing.T) *GormBookRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Book{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	fiction := models.Category{Name: "Fiction"}
	tech := models.Category{Name: "Technology"}
	if err := db.Create(&fiction).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(&tech).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	books := []models.Book{
		{
			Title:      "The Go Programming Language",
			Author:     "Alan A. A. Donovan",
			ISBN:       "9780134190440",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
			Categories: []models.Category{tech},
		},
		{
			Title:      "Kafka on the Shore",
			Author:     "Haruki Murakami",
			ISBN:       "9781400079278",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(16.99)),
			Categories: []models.Category{fiction},
		},
		{
			Title:      "Norwegian Wood",
			Author:     "Haruki Murakami",
			ISBN:       "9780375704024",
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(14.00)),
			Categories: []models.Category{fiction},
		},
	}
	for i := range books {
		if err := db.Create(&books[i]).Error; err != nil {
			t.Fatalf("create book failed: %v", err)
		}
	}

	return NewBookRepository(db)
}

func TestBookSearchEmptyFilterReturnsAll(t *testing.T) {
	repo := setupBookSearchTest(t)

	filter := BookSearchFilter{}
	if !filter.IsEmpty() {
		t.Fatalf("expected empty filter")
	}
	books, total, err := repo.Search(filter, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 3 || len(books) != 3 {
		t.Fatalf("want all 3 books, got total=%d len=%d", total, len(books))
	}
}

func TestBookSearchConjunction(t *testing.T) {
	repo := setupBookSearchTest(t)

	// 作者命中两本，叠加价格区间后只剩一本
	min := decimal.NewFromFloat(15.00)
	max := decimal.NewFromFloat(20.00)
	books, total, err := repo.Search(BookSearchFilter{
		Authors:  []string{"Haruki Murakami"},
		PriceMin: &min,
		PriceMax: &max,
	}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(books) != 1 {
		t.Fatalf("want 1 book, got total=%d len=%d", total, len(books))
	}
	if books[0].ISBN != "9781400079278" {
		t.Fatalf("want Kafka on the Shore, got %s", books[0].Title)
	}
}

func TestBookSearchPriceRangeInclusive(t *testing.T) {
	repo := setupBookSearchTest(t)

	// 区间为闭区间，边界价格也应命中
	min := decimal.NewFromFloat(14.00)
	max := decimal.NewFromFloat(16.99)
	books, total, err := repo.Search(BookSearchFilter{PriceMin: &min, PriceMax: &max}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 || len(books) != 2 {
		t.Fatalf("want both boundary books, got total=%d len=%d", total, len(books))
	}
}

func TestBookSearchTitleJoinsValuesWithComma(t *testing.T) {
	repo := setupBookSearchTest(t)

	// 多个 title 值用逗号拼接后做包含匹配，拼接串匹配不到任何书名
	_, total, err := repo.Search(BookSearchFilter{
		Titles: []string{"Go", "Wood"},
	}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("joined title pattern should match nothing, got total=%d", total)
	}

	books, total, err := repo.Search(BookSearchFilter{Titles: []string{"Wood"}}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || books[0].Title != "Norwegian Wood" {
		t.Fatalf("want Norwegian Wood, got total=%d", total)
	}
}

func TestBookSearchByCategory(t *testing.T) {
	repo := setupBookSearchTest(t)

	var fiction models.Category
	if err := repo.db.Where("name = ?", "Fiction").First(&fiction).Error; err != nil {
		t.Fatalf("load category failed: %v", err)
	}

	books, total, err := repo.Search(BookSearchFilter{CategoryIDs: []uint{fiction.ID}}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 || len(books) != 2 {
		t.Fatalf("want 2 fiction books, got total=%d len=%d", total, len(books))
	}
	for _, book := range books {
		if book.Author != "Haruki Murakami" {
			t.Fatalf("unexpected book in fiction category: %s", book.Title)
		}
	}
}

func TestBookSearchISBNAndCoverImage(t *testing.T) {
	repo := setupBookSearchTest(t)

	books, total, err := repo.Search(BookSearchFilter{
		ISBNs: []string{"9780134190440", "9780375704024"},
	}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 || len(books) != 2 {
		t.Fatalf("want 2 books by isbn, got total=%d len=%d", total, len(books))
	}

	_, total, err = repo.Search(BookSearchFilter{CoverImages: []string{"missing.jpg"}}, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("want no cover image match, got total=%d", total)
	}
}
