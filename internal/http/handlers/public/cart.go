package public

import (
	"errors"
	"strconv"

	"github.com/bookstore-next/internal/http/response"
	"github.com/bookstore-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	cart, err := h.CartService.GetByUserID(uid)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			respondError(c, response.CodeNotFound, "error.cart_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	response.Success(c, cart)
}

// AddCartItem 添加购物车项
// 同一本书重复添加返回冲突
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req service.AddItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.CartService.AddItem(uid, req)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, item)
}

// UpdateCartItem 修改购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_id_invalid", nil)
		return
	}

	var req service.UpdateItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	item, err := h.CartService.UpdateItemQuantity(uid, uint(itemID), req)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, item)
}

// DeleteCartItem 删除购物车项
// 条目不存在时同样返回成功
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_id_invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}
