package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/shoestore/internal/config"
	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/provider"
	"github.com/shoestore/internal/queue"
	"github.com/shoestore/internal/repository"
	"github.com/shoestore/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	c := &provider.Container{
		OrderRepo:    repository.NewOrderRepository(db),
		UserRepo:     repository.NewUserRepository(db),
		EmailService: service.NewEmailService(&config.EmailConfig{Enabled: false}),
	}
	return NewConsumer(c), db
}

func newTask(t *testing.T, taskType string, payload interface{}) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(taskType, body)
}

func TestHandlersRejectBrokenPayload(t *testing.T) {
	consumer, _ := setupConsumer(t)
	broken := asynq.NewTask(queue.TaskOrderStatusEmail, []byte("{"))
	if err := consumer.handleOrderStatusEmail(context.Background(), broken); err == nil {
		t.Fatalf("expected unmarshal error")
	}
	broken = asynq.NewTask(queue.TaskOrderCreatedEmail, []byte("{"))
	if err := consumer.handleOrderCreatedEmail(context.Background(), broken); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestHandlersSkipMissingOrder(t *testing.T) {
	consumer, _ := setupConsumer(t)
	task := newTask(t, queue.TaskOrderStatusEmail, queue.OrderStatusEmailPayload{OrderID: 404, Status: constants.OrderStatusConfirmed})
	if err := consumer.handleOrderStatusEmail(context.Background(), task); err != nil {
		t.Fatalf("missing order should be skipped, got %v", err)
	}
	task = newTask(t, queue.TaskOrderCreatedEmail, queue.OrderCreatedEmailPayload{})
	if err := consumer.handleOrderCreatedEmail(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
}

func TestHandlersSkipWhenEmailDisabled(t *testing.T) {
	consumer, db := setupConsumer(t)
	user := &models.User{Email: "buyer@example.com", PasswordHash: "x", Status: constants.UserStatusActive, Locale: constants.LocaleEnUS}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	order := &models.Order{
		OrderNo:          "SS-W-1",
		UserID:           user.ID,
		SourceType:       constants.OrderTypeCart,
		RecipientName:    "A",
		RecipientPhone:   "0900",
		RecipientAddress: "HCM",
		PaymentMethod:    constants.PaymentMethodCOD,
		Status:           constants.OrderStatusPending,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	loaded, locale, err := consumer.loadOrderForEmail(order.ID)
	if err != nil || loaded == nil {
		t.Fatalf("load order failed: %v", err)
	}
	if loaded.RecipientEmail != "buyer@example.com" || locale != constants.LocaleEnUS {
		t.Fatalf("receiver should fall back to the account: %q %q", loaded.RecipientEmail, locale)
	}

	task := newTask(t, queue.TaskOrderCreatedEmail, queue.OrderCreatedEmailPayload{OrderID: order.ID})
	if err := consumer.handleOrderCreatedEmail(context.Background(), task); err != nil {
		t.Fatalf("disabled email should not retry, got %v", err)
	}
	task = newTask(t, queue.TaskVerifyCodeEmail, queue.VerifyCodeEmailPayload{Email: "buyer@example.com", Code: "123456", Purpose: constants.VerifyPurposeRegister})
	if err := consumer.handleVerifyCodeEmail(context.Background(), task); err != nil {
		t.Fatalf("disabled email should not retry, got %v", err)
	}
}
