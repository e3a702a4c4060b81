package public

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/bookstore-next/internal/http/response"
	"github.com/bookstore-next/internal/repository"
	"github.com/bookstore-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrder 从购物车创建订单
// 请求体可为空，收货地址缺省时回退到用户档案地址
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req service.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.CreateOrder(uid, req)
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}

	response.Success(c, order)
}

// ListOrders 获取订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListForUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   strings.TrimSpace(c.Query("status")),
		OrderNo:  strings.TrimSpace(c.Query("order_no")),
	})
	if err != nil {
		respondOrderReadError(c, err)
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetByIDForUser(uid, orderID)
	if err != nil {
		respondOrderReadError(c, err)
		return
	}

	response.Success(c, order)
}

// ListOrderItems 获取订单项列表
func (h *Handler) ListOrderItems(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	items, err := h.OrderService.ListItemsForUser(uid, orderID)
	if err != nil {
		respondOrderReadError(c, err)
		return
	}

	response.Success(c, gin.H{"items": items})
}

// GetOrderItem 获取单个订单项
func (h *Handler) GetOrderItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.order_item_id_invalid", nil)
		return
	}

	item, err := h.OrderService.GetItemForUser(uid, orderID, uint(itemID))
	if err != nil {
		respondOrderReadError(c, err)
		return
	}

	response.Success(c, item)
}

func parseOrderID(c *gin.Context) (uint, bool) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.order_id_invalid", nil)
		return 0, false
	}
	return uint(orderID), true
}
