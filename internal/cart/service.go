package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
)

// Service exposes the per-user cart operations.
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, req AddRequest) (*ItemDTO, error)
	Get(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error
}

type service struct {
	db *db.Client
}

// NewService constructs a cart service backed by the provided client.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: client}, nil
}

// Add upserts the (user, product) row: a repeat add increments the stored
// quantity instead of inserting a second row. No stock check is performed.
func (s *service) Add(ctx context.Context, userID uuid.UUID, req AddRequest) (*ItemDTO, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if err := s.ensureProductExists(ctx, req.ProductID); err != nil {
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	err := s.db.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).
		Create(item).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert cart item")
	}

	var stored models.CartItem
	err = s.db.DB().WithContext(ctx).
		Preload("Product.Type").
		First(&stored, "user_id = ? AND product_id = ?", userID, req.ProductID).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart item")
	}
	dto := fromModel(&stored)
	return &dto, nil
}

// Get returns the user's cart with products preloaded, newest first.
func (s *service) Get(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	var items []models.CartItem
	err := s.db.DB().WithContext(ctx).
		Preload("Product.Type").
		Order("created_at DESC").
		Find(&items, "user_id = ?", userID).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, fromModel(&items[i]))
	}
	return dtos, nil
}

// Remove deletes the (user, product) row. Removing an absent pair succeeds.
func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	err := s.db.DB().WithContext(ctx).
		Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	return nil
}

func (s *service) ensureProductExists(ctx context.Context, productID uuid.UUID) error {
	var product models.Product
	err := s.db.DB().WithContext(ctx).First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	return nil
}
