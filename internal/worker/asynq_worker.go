package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shoestore/internal/logger"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/provider"
	"github.com/shoestore/internal/queue"
	"github.com/shoestore/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreatedEmail, c.handleOrderCreatedEmail)
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskVerifyCodeEmail, c.handleVerifyCodeEmail)
}

func (c *Consumer) handleOrderCreatedEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_created_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderCreatedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_email_unmarshal_failed", "error", err)
		return err
	}
	order, locale, err := c.loadOrderForEmail(payload.OrderID)
	if err != nil || order == nil {
		return err
	}
	err = c.EmailService.SendOrderCreated(ctx, order, locale)
	return c.finishEmail("worker_order_created_email", order, err)
}

func (c *Consumer) handleOrderStatusEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	order, locale, err := c.loadOrderForEmail(payload.OrderID)
	if err != nil || order == nil {
		return err
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	err = c.EmailService.SendOrderStatus(ctx, order, payload.OldStatus, status, locale)
	return c.finishEmail("worker_order_status_email", order, err)
}

func (c *Consumer) handleVerifyCodeEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_verify_code_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.VerifyCodeEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_verify_code_email_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.Email) == "" || strings.TrimSpace(payload.Code) == "" {
		logger.Debugw("worker_verify_code_email_skip_invalid_payload", "email", payload.Email)
		return nil
	}
	err := c.EmailService.SendVerifyCode(ctx, payload.Email, payload.Code, payload.Purpose, payload.Locale)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrEmailDisabled), errors.Is(err, service.ErrEmailInvalid):
		logger.Debugw("worker_verify_code_email_skip", "email", payload.Email, "reason", err.Error())
		return nil
	default:
		logger.Warnw("worker_verify_code_email_send_failed", "email", payload.Email, "purpose", payload.Purpose, "error", err)
		return err
	}
}

// loadOrderForEmail 读取订单与收件人语言；订单不存在或无收件邮箱时返回 nil
func (c *Consumer) loadOrderForEmail(orderID uint) (*models.Order, string, error) {
	if orderID == 0 {
		logger.Debugw("worker_order_email_skip_invalid_payload", "order_id", orderID)
		return nil, "", nil
	}
	order, err := c.OrderRepo.GetByID(orderID)
	if err != nil {
		logger.Warnw("worker_order_email_fetch_order_failed", "order_id", orderID, "error", err)
		return nil, "", err
	}
	if order == nil {
		logger.Debugw("worker_order_email_skip_order_not_found", "order_id", orderID)
		return nil, "", nil
	}

	locale := ""
	if order.UserID != 0 && c.UserRepo != nil {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return nil, "", err
		}
		if user != nil {
			locale = strings.TrimSpace(user.Locale)
			if strings.TrimSpace(order.RecipientEmail) == "" {
				order.RecipientEmail = strings.TrimSpace(user.Email)
			}
		}
	}
	if strings.TrimSpace(order.RecipientEmail) == "" {
		logger.Debugw("worker_order_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil, "", nil
	}
	return order, locale, nil
}

// finishEmail 邮件未启用或地址非法不重试，其他失败交给队列重试
func (c *Consumer) finishEmail(event string, order *models.Order, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrEmailDisabled), errors.Is(err, service.ErrEmailInvalid):
		logger.Debugw(event+"_skip", "order_id", order.ID, "order_no", order.OrderNo, "reason", err.Error())
		return nil
	default:
		logger.Warnw(event+"_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", order.RecipientEmail,
			"error", err,
		)
		return err
	}
}
