package service

import (
	"strings"

	"github.com/bookstore-next/internal/constants"
)

// canonicalizeOrderStatus 规范化订单状态
// 去空白并小写后与封闭状态集比对，不在集合内返回 ErrInvalidOrderStatus
func canonicalizeOrderStatus(status string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	for _, candidate := range constants.OrderStatuses {
		if normalized == candidate {
			return normalized, nil
		}
	}
	return "", ErrInvalidOrderStatus
}
