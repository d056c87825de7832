package service

import (
	"context"
	"strings"

	"github.com/shoestore/internal/models"
	"github.com/shoestore/internal/repository"

	"gorm.io/gorm"
)

// AddressInput 收货地址输入
type AddressInput struct {
	RecipientName string
	Phone         string
	Street        string
	Ward          string
	District      string
	City          string
	IsDefault     bool
}

// AddressService 收货地址服务
type AddressService struct {
	repo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(repo repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// List 当前用户地址（默认地址在前）
func (s *AddressService) List(ctx context.Context, identity Identity) ([]models.Address, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	return s.repo.WithTx(dbWithContext(ctx)).ListByUser(identity.UserID)
}

// Create 新增地址；首个地址或标记默认时设为默认
func (s *AddressService) Create(ctx context.Context, identity Identity, input AddressInput) (*models.Address, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	address := &models.Address{
		UserID:        identity.UserID,
		RecipientName: strings.TrimSpace(input.RecipientName),
		Phone:         strings.TrimSpace(input.Phone),
		Street:        strings.TrimSpace(input.Street),
		Ward:          strings.TrimSpace(input.Ward),
		District:      strings.TrimSpace(input.District),
		City:          strings.TrimSpace(input.City),
		IsDefault:     input.IsDefault,
	}
	if address.RecipientName == "" || address.Phone == "" || address.Street == "" {
		return nil, ErrRecipientRequired
	}
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.ListByUser(identity.UserID)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			address.IsDefault = true
		}
		if address.IsDefault {
			if err := repo.ClearDefault(identity.UserID); err != nil {
				return err
			}
		}
		return repo.Create(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// SetDefault 设为默认地址
func (s *AddressService) SetDefault(ctx context.Context, identity Identity, addressID uint) (*models.Address, error) {
	if !identity.Authenticated() {
		return nil, ErrUnauthorized
	}
	var address *models.Address
	err := dbWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		found, err := repo.GetByIDAndUser(addressID, identity.UserID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrAddressNotFound
		}
		if err := repo.ClearDefault(identity.UserID); err != nil {
			return err
		}
		found.IsDefault = true
		address = found
		return repo.Update(found)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Delete 删除本人地址
func (s *AddressService) Delete(ctx context.Context, identity Identity, addressID uint) error {
	if !identity.Authenticated() {
		return ErrUnauthorized
	}
	repo := s.repo.WithTx(dbWithContext(ctx))
	address, err := repo.GetByIDAndUser(addressID, identity.UserID)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrAddressNotFound
	}
	return repo.Delete(address.ID, identity.UserID)
}
