package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
)

// Service records purchase intents. Rows are append-only: there is no
// payment flow, status lifecycle, or stock decrement.
type Service interface {
	Buy(ctx context.Context, userID uuid.UUID, req BuyRequest) (*DTO, error)
	List(ctx context.Context, userID uuid.UUID) ([]DTO, error)
}

type service struct {
	db *db.Client
}

// NewService constructs a purchase service backed by the provided client.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: client}, nil
}

func (s *service) Buy(ctx context.Context, userID uuid.UUID, req BuyRequest) (*DTO, error) {
	for field, value := range map[string]string{
		"place": req.Place,
		"state": req.State,
		"city":  req.City,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, field+" is required")
		}
	}

	var product models.Product
	err := s.db.DB().WithContext(ctx).First(&product, "id = ?", req.ProductID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	purchase := &models.Purchase{
		UserID:    userID,
		ProductID: req.ProductID,
		Place:     strings.TrimSpace(req.Place),
		State:     strings.TrimSpace(req.State),
		City:      strings.TrimSpace(req.City),
	}
	if err := s.db.DB().WithContext(ctx).Create(purchase).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create purchase")
	}
	purchase.Product = &product
	dto := fromModel(purchase)
	return &dto, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]DTO, error) {
	var purchases []models.Purchase
	err := s.db.DB().WithContext(ctx).
		Preload("Product.Type").
		Order("created_at DESC").
		Find(&purchases, "user_id = ?", userID).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list purchases")
	}
	dtos := make([]DTO, 0, len(purchases))
	for i := range purchases {
		dtos = append(dtos, fromModel(&purchases[i]))
	}
	return dtos, nil
}
