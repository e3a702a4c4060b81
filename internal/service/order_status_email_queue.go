package service

import (
	"strings"

	"github.com/bookstore-next/internal/queue"
	"github.com/bookstore-next/internal/repository"
)

// enqueueOrderStatusEmailTaskIfEligible 决定是否入队订单状态邮件任务。
// 返回值 skipped 表示任务被跳过（例如收件邮箱缺失）。
func enqueueOrderStatusEmailTaskIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, orderID uint, status string) (skipped bool, err error) {
	if queueClient == nil || orderID == 0 {
		return true, nil
	}
	if orderRepo == nil {
		if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
			OrderID: orderID,
			Status:  strings.TrimSpace(status),
		}); err != nil {
			return false, err
		}
		return false, nil
	}

	receiverEmail, lookupErr := orderRepo.ResolveReceiverEmailByOrderID(orderID)
	if lookupErr == nil && strings.TrimSpace(receiverEmail) == "" {
		return true, nil
	}

	if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  strings.TrimSpace(status),
	}); err != nil {
		return false, err
	}
	return false, nil
}
