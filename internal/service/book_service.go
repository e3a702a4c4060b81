package service

import (
	"strings"

	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/repository"

	"github.com/shopspring/decimal"
)

// BookService 图书服务
type BookService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
}

// NewBookService 创建图书服务
func NewBookService(bookRepo repository.BookRepository, categoryRepo repository.CategoryRepository) *BookService {
	return &BookService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

// BookInput 创建/更新图书的输入
type BookInput struct {
	Title       string          `json:"title" binding:"required"`
	Author      string          `json:"author" binding:"required"`
	ISBN        string          `json:"isbn" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CoverImage  string          `json:"cover_image"`
	CategoryIDs []uint          `json:"category_ids"`
}

// List 图书列表
func (s *BookService) List(filter repository.BookListFilter) ([]models.Book, int64, error) {
	return s.bookRepo.List(filter)
}

// Search 按组合条件搜索图书
// 空条件返回未过滤的分页目录
func (s *BookService) Search(filter repository.BookSearchFilter, page, pageSize int) ([]models.Book, int64, error) {
	return s.bookRepo.Search(filter, page, pageSize)
}

// GetByID 获取图书详情
func (s *BookService) GetByID(id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// ListByCategory 获取某分类下的图书
func (s *BookService) ListByCategory(categoryID uint, page, pageSize int) ([]models.Book, int64, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, 0, err
	}
	if category == nil {
		return nil, 0, ErrCategoryNotFound
	}
	return s.bookRepo.List(repository.BookListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
	})
}

// Create 创建图书
func (s *BookService) Create(input BookInput) (*models.Book, error) {
	if err := validateBookInput(&input); err != nil {
		return nil, err
	}

	count, err := s.bookRepo.CountByISBN(input.ISBN, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrISBNExists
	}

	categories, err := s.resolveCategories(input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       input.Title,
		Author:      input.Author,
		ISBN:        input.ISBN,
		Price:       models.NewMoneyFromDecimal(input.Price),
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Categories:  categories,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update 更新图书
func (s *BookService) Update(id uint, input BookInput) (*models.Book, error) {
	if err := validateBookInput(&input); err != nil {
		return nil, err
	}

	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	count, err := s.bookRepo.CountByISBN(input.ISBN, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrISBNExists
	}

	categories, err := s.resolveCategories(input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	book.Title = input.Title
	book.Author = input.Author
	book.ISBN = input.ISBN
	book.Price = models.NewMoneyFromDecimal(input.Price)
	book.Description = input.Description
	book.CoverImage = input.CoverImage
	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}
	if err := s.bookRepo.ReplaceCategories(book, categories); err != nil {
		return nil, err
	}
	book.Categories = categories
	return book, nil
}

// Delete 删除图书（软删除）
func (s *BookService) Delete(id uint) error {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	return s.bookRepo.Delete(id)
}

// resolveCategories 解析分类引用，未知 ID 返回未找到
func (s *BookService) resolveCategories(ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	categories, err := s.categoryRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(dedupeIDs(ids)) {
		return nil, ErrCategoryNotFound
	}
	return categories, nil
}

func validateBookInput(input *BookInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Author = strings.TrimSpace(input.Author)
	input.ISBN = strings.TrimSpace(input.ISBN)
	if input.Title == "" || input.Author == "" || input.ISBN == "" {
		return ErrBookFieldsRequired
	}
	if input.Price.IsNegative() {
		return ErrInvalidBookPrice
	}
	return nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
