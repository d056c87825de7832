package queue

import (
	"encoding/json"

	"github.com/shoestore/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreatedEmail 下单成功邮件任务
	TaskOrderCreatedEmail = constants.TaskOrderCreatedEmail
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskVerifyCodeEmail 验证码邮件任务
	TaskVerifyCodeEmail = constants.TaskVerifyCodeEmail
)

// OrderCreatedEmailPayload 下单成功邮件任务载荷
type OrderCreatedEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID   uint   `json:"order_id"`
	OldStatus string `json:"old_status"`
	Status    string `json:"status"`
}

// VerifyCodeEmailPayload 验证码邮件任务载荷
type VerifyCodeEmailPayload struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	Code    string `json:"code"`
	Locale  string `json:"locale"`
}

// NewOrderCreatedEmailTask 创建下单成功邮件任务
func NewOrderCreatedEmailTask(payload OrderCreatedEmailPayload) (*asynq.Task, error) {
	return newJSONTask(TaskOrderCreatedEmail, payload)
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	return newJSONTask(TaskOrderStatusEmail, payload)
}

// NewVerifyCodeEmailTask 创建验证码邮件任务
func NewVerifyCodeEmailTask(payload VerifyCodeEmailPayload) (*asynq.Task, error) {
	return newJSONTask(TaskVerifyCodeEmail, payload)
}

func newJSONTask(taskType string, payload interface{}) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body), nil
}
