package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bookstore-next/internal/constants"
	"github.com/bookstore-next/internal/logger"
	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/queue"
	"github.com/bookstore-next/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// CreateOrderInput 下单输入
// 收货地址可选，缺省时使用用户档案中的地址
type CreateOrderInput struct {
	ShippingAddress string `json:"shipping_address"`
}

// CreateOrder 从购物车创建订单
// 读取购物车、按当前书价快照订单项、累加总价、写入订单并清空购物车，
// 全部在同一事务内完成，任一步失败则整体回滚
func (s *OrderService) CreateOrder(userID uint, input CreateOrderInput) (*models.Order, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	shippingAddress := strings.TrimSpace(input.ShippingAddress)
	if shippingAddress == "" {
		shippingAddress = user.ShippingAddress
	}

	var order *models.Order
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		cart, err := cartRepo.GetByUserID(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		if len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		total := models.Money{}
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, cartItem := range cart.Items {
			if cartItem.Book == nil {
				return ErrBookNotFound
			}
			items = append(items, models.OrderItem{
				BookID:   cartItem.BookID,
				Title:    cartItem.Book.Title,
				Price:    cartItem.Book.Price,
				Quantity: cartItem.Quantity,
			})
			total = total.Add(cartItem.Book.Price.MulInt(cartItem.Quantity))
		}

		order = &models.Order{
			OrderNo:         generateOrderNo(),
			UserID:          userID,
			Status:          constants.OrderStatusCreated,
			ShippingAddress: shippingAddress,
			Total:           total,
		}
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		order.Items = items

		return cartRepo.ClearByCart(cart.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.queueClient != nil && s.queueClient.Enabled() {
		skipped, enqueueErr := enqueueOrderStatusEmailTaskIfEligible(s.orderRepo, s.queueClient, order.ID, order.Status)
		if enqueueErr != nil {
			logger.Warnw("order_enqueue_status_email_failed",
				"order_id", order.ID,
				"error", enqueueErr)
		} else if !skipped {
			logger.Infow("order_status_email_enqueued",
				"order_id", order.ID,
				"status", order.Status)
		}
	}

	return order, nil
}

// GetByIDForUser 获取用户自己的订单详情
// 订单不存在与属于他人统一按未找到处理
func (s *OrderService) GetByIDForUser(userID uint, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForUser 用户订单列表
func (s *OrderService) ListForUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" {
		status, err := canonicalizeOrderStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = status
	}
	return s.orderRepo.ListByUser(filter)
}

// ListItemsForUser 获取订单的订单项
func (s *OrderService) ListItemsForUser(userID uint, orderID uint) ([]models.OrderItem, error) {
	order, err := s.GetByIDForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	return order.Items, nil
}

// GetItemForUser 获取订单中的单个订单项
func (s *OrderService) GetItemForUser(userID uint, orderID uint, itemID uint) (*models.OrderItem, error) {
	order, err := s.GetByIDForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			return &order.Items[i], nil
		}
	}
	return nil, ErrOrderItemNotFound
}

// GetByIDAdmin 管理端获取订单详情
func (s *OrderService) GetByIDAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" {
		status, err := canonicalizeOrderStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = status
	}
	return s.orderRepo.ListAdmin(filter)
}

// UpdateStatus 管理端更新订单状态
// 状态不区分大小写，必须落在封闭状态集内
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	canonical, err := canonicalizeOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if order.Status != canonical {
		updates := map[string]interface{}{
			"updated_at": time.Now(),
		}
		if err := s.orderRepo.UpdateStatus(order.ID, canonical, updates); err != nil {
			return nil, err
		}
		order.Status = canonical

		if s.queueClient != nil && s.queueClient.Enabled() {
			if _, enqueueErr := enqueueOrderStatusEmailTaskIfEligible(s.orderRepo, s.queueClient, order.ID, canonical); enqueueErr != nil {
				logger.Warnw("order_enqueue_status_email_failed",
					"order_id", order.ID,
					"error", enqueueErr)
			}
		}
	}

	return order, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("BS%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
