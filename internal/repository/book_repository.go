package repository

import (
	"errors"

	"github.com/bookstore-next/internal/models"

	"gorm.io/gorm"
)

// BookRepository 图书数据访问接口
type BookRepository interface {
	List(filter BookListFilter) ([]models.Book, int64, error)
	Search(filter BookSearchFilter, page, pageSize int) ([]models.Book, int64, error)
	GetByID(id uint) (*models.Book, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	ReplaceCategories(book *models.Book, categories []models.Category) error
	Delete(id uint) error
	CountByISBN(isbn string, excludeID *uint) (int64, error)
	ListByIDs(ids []uint) ([]models.Book, error)
	WithTx(tx *gorm.DB) *GormBookRepository
}

// GormBookRepository GORM 实现
type GormBookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓库
func NewBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// WithTx 绑定事务
func (r *GormBookRepository) WithTx(tx *gorm.DB) *GormBookRepository {
	if tx == nil {
		return r
	}
	return &GormBookRepository{db: tx}
}

// List 图书列表
func (r *GormBookRepository) List(filter BookListFilter) ([]models.Book, int64, error) {
	query := r.db.Model(&models.Book{})

	if filter.CategoryID != 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM book_categories WHERE book_categories.book_id = books.id AND book_categories.category_id = ?)",
			filter.CategoryID,
		)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		operator := likeOperator(r.db)
		query = query.Where("books.title "+operator+" ? OR books.author "+operator+" ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if filter.WithCategory {
		query = query.Preload("Categories")
	}

	var books []models.Book
	if err := query.Order("books.id DESC").Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// Search 按组合条件搜索图书
func (r *GormBookRepository) Search(filter BookSearchFilter, page, pageSize int) ([]models.Book, int64, error) {
	query := r.db.Model(&models.Book{}).Scopes(filter.Scopes()...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	var books []models.Book
	if err := query.Preload("Categories").Order("books.id ASC").Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// GetByID 根据 ID 获取图书（带分类）
func (r *GormBookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.Preload("Categories").First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

// Create 创建图书（含分类关联）
func (r *GormBookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// Update 更新图书基础字段
func (r *GormBookRepository) Update(book *models.Book) error {
	return r.db.Omit("Categories").Save(book).Error
}

// ReplaceCategories 覆盖图书的分类关联
func (r *GormBookRepository) ReplaceCategories(book *models.Book, categories []models.Category) error {
	return r.db.Model(book).Association("Categories").Replace(categories)
}

// Delete 删除图书（软删除）
func (r *GormBookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Book{}, id).Error
}

// CountByISBN 统计 ISBN 数量（用于唯一性校验）
func (r *GormBookRepository) CountByISBN(isbn string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Book{}).Where("isbn = ?", isbn)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByIDs 批量获取图书
func (r *GormBookRepository) ListByIDs(ids []uint) ([]models.Book, error) {
	if len(ids) == 0 {
		return []models.Book{}, nil
	}
	var books []models.Book
	if err := r.db.Where("id IN ?", ids).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
