package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bookstore-next/internal/http/response"
	"github.com/bookstore-next/internal/repository"
	"github.com/bookstore-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// 搜索接口允许的查询参数全集，未知参数直接拒绝
var allowedBookSearchParams = map[string]struct{}{
	"author":      {},
	"title":       {},
	"isbn":        {},
	"category_id": {},
	"cover_image": {},
	"price_min":   {},
	"price_max":   {},
	"page":        {},
	"page_size":   {},
	"lang":        {},
}

// GetBooks 图书列表
func (h *Handler) GetBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.BookListFilter{
		Page:         page,
		PageSize:     pageSize,
		WithCategory: true,
	}
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || categoryID == 0 {
			respondError(c, response.CodeBadRequest, "error.category_id_invalid", nil)
			return
		}
		filter.CategoryID = uint(categoryID)
	}

	books, total, err := h.BookService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, books, response.BuildPagination(page, pageSize, total))
}

// SearchBooks 组合条件搜索图书
// 所有条件取交集，空条件集退化为分页目录
func (h *Handler) SearchBooks(c *gin.Context) {
	for key := range c.Request.URL.Query() {
		if _, ok := allowedBookSearchParams[key]; !ok {
			respondError(c, response.CodeBadRequest, "error.search_param_unknown", nil)
			return
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.BookSearchFilter{
		Authors:     compactQueryValues(c.QueryArray("author")),
		Titles:      compactQueryValues(c.QueryArray("title")),
		ISBNs:       compactQueryValues(c.QueryArray("isbn")),
		CoverImages: compactQueryValues(c.QueryArray("cover_image")),
	}

	for _, raw := range c.QueryArray("category_id") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || categoryID == 0 {
			respondError(c, response.CodeBadRequest, "error.category_id_invalid", nil)
			return
		}
		filter.CategoryIDs = append(filter.CategoryIDs, uint(categoryID))
	}

	priceMin, ok := parsePriceParam(c, "price_min")
	if !ok {
		return
	}
	priceMax, ok := parsePriceParam(c, "price_max")
	if !ok {
		return
	}
	if priceMin != nil && priceMax != nil && priceMin.GreaterThan(*priceMax) {
		respondError(c, response.CodeBadRequest, "error.price_range_invalid", nil)
		return
	}
	filter.PriceMin = priceMin
	filter.PriceMax = priceMax

	books, total, err := h.BookService.Search(filter, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, books, response.BuildPagination(page, pageSize, total))
}

// GetBook 图书详情
func (h *Handler) GetBook(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookID == 0 {
		respondError(c, response.CodeBadRequest, "error.book_id_invalid", nil)
		return
	}

	book, err := h.BookService.GetByID(uint(bookID))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, response.CodeNotFound, "error.book_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.Success(c, book)
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetCategoryBooks 某分类下的图书
func (h *Handler) GetCategoryBooks(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		respondError(c, response.CodeBadRequest, "error.category_id_invalid", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	books, total, err := h.BookService.ListByCategory(uint(categoryID), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.book_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, books, response.BuildPagination(page, pageSize, total))
}

func compactQueryValues(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		result = append(result, value)
	}
	return result
}

func parsePriceParam(c *gin.Context, key string) (*decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		respondError(c, response.CodeBadRequest, "error.price_range_invalid", nil)
		return nil, false
	}
	return &value, true
}
