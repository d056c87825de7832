package service

import (
	"context"
	"strings"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/queue"

	"gorm.io/gorm"
)

// orderStatusSuccessors 订单状态流转表，未出现的状态为终态
var orderStatusSuccessors = map[string][]string{
	constants.OrderStatusPending:       {constants.OrderStatusConfirmed, constants.OrderStatusCancelled},
	constants.OrderStatusConfirmed:     {constants.OrderStatusPacking, constants.OrderStatusCancelled},
	constants.OrderStatusPacking:       {constants.OrderStatusShipping},
	constants.OrderStatusShipping:      {constants.OrderStatusCompleted, constants.OrderStatusRequestRefund},
	constants.OrderStatusRequestRefund: {constants.OrderStatusRefunded},
}

var knownOrderStatuses = map[string]struct{}{
	constants.OrderStatusPending:       {},
	constants.OrderStatusConfirmed:     {},
	constants.OrderStatusPacking:       {},
	constants.OrderStatusShipping:      {},
	constants.OrderStatusCompleted:     {},
	constants.OrderStatusCancelled:     {},
	constants.OrderStatusRequestRefund: {},
	constants.OrderStatusRefunded:      {},
}

// IsKnownOrderStatus 是否为合法订单状态
func IsKnownOrderStatus(status string) bool {
	_, ok := knownOrderStatuses[status]
	return ok
}

// IsTerminalOrderStatus 终态不可再流转
func IsTerminalOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusCancelled, constants.OrderStatusCompleted, constants.OrderStatusRefunded:
		return true
	}
	return false
}

// NextOrderStatuses 当前状态允许的后继
func NextOrderStatuses(status string) []string {
	return append([]string(nil), orderStatusSuccessors[status]...)
}

// CanTransitOrderStatus 判断 from → to 是否允许
func CanTransitOrderStatus(from, to string) bool {
	for _, next := range orderStatusSuccessors[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition 变更订单状态并追加流转记录
func (s *OrderService) Transition(ctx context.Context, orderID uint, newStatus, actor, comment string) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	target := strings.ToUpper(strings.TrimSpace(newStatus))
	if strings.TrimSpace(actor) == "" {
		actor = constants.ActorSystem
	}

	var oldStatus string
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if IsTerminalOrderStatus(order.Status) || !IsKnownOrderStatus(target) {
			return ErrInvalidTransition
		}
		if !CanTransitOrderStatus(order.Status, target) {
			return ErrInvalidTransition
		}
		oldStatus = order.Status
		if err := orderRepo.UpdateStatus(order.ID, target); err != nil {
			return err
		}
		return s.trackingRepo.WithTx(tx).Create(&models.OrderTrackingLog{
			OrderID:   order.ID,
			OldStatus: oldStatus,
			NewStatus: target,
			ChangedAt: time.Now(),
			ChangedBy: actor,
			Comment:   strings.TrimSpace(comment),
		})
	})
	if err != nil {
		if isOrderRuleError(err) {
			return nil, err
		}
		logger.Errorw("order_transition_failed",
			"order_id", orderID,
			"target_status", target,
			"error", err,
		)
		return nil, ErrOrderUpdateFailed
	}

	s.enqueueStatusEmail(orderID, oldStatus, target)

	order, err := s.orderRepo.WithTx(dbWithContext(ctx)).GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// History 订单流转记录（从早到晚）
func (s *OrderService) History(ctx context.Context, orderID uint) ([]models.OrderTrackingLog, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	return s.trackingRepo.WithTx(dbWithContext(ctx)).ListByOrder(orderID)
}

// CancelByUser 顾客取消自己的待确认/已确认订单
func (s *OrderService) CancelByUser(ctx context.Context, identity Identity, orderID uint, reason string) (*models.Order, error) {
	order, err := s.GetConfirmation(ctx, identity, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPending && order.Status != constants.OrderStatusConfirmed {
		return nil, ErrInvalidTransition
	}
	return s.Transition(ctx, order.ID, constants.OrderStatusCancelled, identity.Actor(), reason)
}

// RequestRefund 顾客对配送中订单申请退款
func (s *OrderService) RequestRefund(ctx context.Context, identity Identity, orderID uint, reason string) (*models.Order, error) {
	order, err := s.GetConfirmation(ctx, identity, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusShipping {
		return nil, ErrInvalidTransition
	}
	return s.Transition(ctx, order.ID, constants.OrderStatusRequestRefund, identity.Actor(), reason)
}

// enqueueStatusEmail 状态邮件尽力投递，失败只记录日志
func (s *OrderService) enqueueStatusEmail(orderID uint, oldStatus, status string) {
	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID:   orderID,
		OldStatus: oldStatus,
		Status:    status,
	}); err != nil {
		logger.Warnw("order_enqueue_status_email_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
	}
}
