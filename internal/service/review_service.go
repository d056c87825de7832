package service

import (
	"context"
	"strings"
	"time"

	"github.com/shoestore/internal/constants"
	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"gorm.io/gorm"
)

// ReviewItemInput 单个订单项评价
type ReviewItemInput struct {
	OrderItemID uint
	Rating      int
	Comment     string
}

// ReviewForm 订单评价表单
type ReviewForm struct {
	OrderID uint
	Items   []ReviewItemInput
}

// ShoesReviews 鞋款评价列表与均分
type ShoesReviews struct {
	ShoesID       uint            `json:"shoes_id"`
	AverageRating float64         `json:"average_rating"`
	Total         int64           `json:"total"`
	Reviews       []models.Review `json:"reviews"`
}

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, orderRepo: orderRepo}
}

// SubmitReview 提交订单评价，订单需属于本人且已完成，每个订单项只能评价一次
func (s *ReviewService) SubmitReview(ctx context.Context, identity Identity, form ReviewForm) ([]models.Review, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	if len(form.Items) == 0 {
		return nil, ErrBusinessRuleViolation
	}
	for _, item := range form.Items {
		if item.Rating < constants.ReviewRatingMin || item.Rating > constants.ReviewRatingMax {
			return nil, ErrRatingInvalid
		}
	}

	created := make([]models.Review, 0, len(form.Items))
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).GetByIDAndUser(form.OrderID, identity.UserID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status != constants.OrderStatusCompleted {
			return ErrReviewNotAllowed
		}
		orderItems := make(map[uint]models.OrderItem, len(order.Items))
		for _, item := range order.Items {
			orderItems[item.ID] = item
		}

		reviewRepo := s.reviewRepo.WithTx(tx)
		now := time.Now()
		for _, input := range form.Items {
			orderItem, ok := orderItems[input.OrderItemID]
			if !ok {
				return ErrReviewNotAllowed
			}
			exists, err := reviewRepo.ExistsByOrderItem(orderItem.ID)
			if err != nil {
				return err
			}
			if exists {
				return ErrReviewExists
			}
			review := models.Review{
				UserID:      identity.UserID,
				OrderID:     order.ID,
				OrderItemID: orderItem.ID,
				ShoesID:     orderItem.ShoesID,
				Rating:      input.Rating,
				Comment:     strings.TrimSpace(input.Comment),
				CreatedAt:   now,
			}
			if err := reviewRepo.Create(&review); err != nil {
				return err
			}
			created = append(created, review)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListReviews 鞋款评价与均分
func (s *ReviewService) ListReviews(shoesID uint) (*ShoesReviews, error) {
	reviews, err := s.reviewRepo.ListByShoes(shoesID)
	if err != nil {
		return nil, err
	}
	avg, total, err := s.reviewRepo.AverageByShoes(shoesID)
	if err != nil {
		return nil, err
	}
	return &ShoesReviews{
		ShoesID:       shoesID,
		AverageRating: avg,
		Total:         total,
		Reviews:       reviews,
	}, nil
}
