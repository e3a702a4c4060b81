package public

import (
	"errors"

	handlershared "github.com/bookstore-next/internal/http/handlers/shared"
	"github.com/bookstore-next/internal/http/response"
	"github.com/bookstore-next/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.cart_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrBookNotFound, code: response.CodeNotFound, key: "error.book_not_found"},
	{target: service.ErrDuplicateCartItem, code: response.CodeConflict, key: "error.cart_item_duplicate"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.cart_not_found"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrBookNotFound, code: response.CodeNotFound, key: "error.book_not_found"},
}

var orderReadErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderItemNotFound, code: response.CodeNotFound, key: "error.order_item_not_found"},
	{target: service.ErrInvalidOrderStatus, code: response.CodeBadRequest, key: "error.order_status_invalid"},
}

func respondCartMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "error.order_create_failed")
}

func respondOrderReadError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderReadErrorRules, response.CodeInternal, "error.order_fetch_failed")
}
