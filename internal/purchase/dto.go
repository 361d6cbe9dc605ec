package purchase

import (
	"time"

	"github.com/google/uuid"

	"github.com/weavemart/weavemart-backend/pkg/db/models"
)

// BuyRequest records where a product should be delivered.
type BuyRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Place     string    `json:"place" validate:"required"`
	State     string    `json:"state" validate:"required"`
	City      string    `json:"city" validate:"required"`
}

// ProductSummary is the slim product projection embedded in purchases.
type ProductSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// DTO is one purchase record.
type DTO struct {
	ID        uuid.UUID       `json:"id"`
	Place     string          `json:"place"`
	State     string          `json:"state"`
	City      string          `json:"city"`
	CreatedAt time.Time       `json:"createdAt"`
	Product   *ProductSummary `json:"product,omitempty"`
}

func fromModel(purchase *models.Purchase) DTO {
	dto := DTO{
		ID:        purchase.ID,
		Place:     purchase.Place,
		State:     purchase.State,
		City:      purchase.City,
		CreatedAt: purchase.CreatedAt,
	}
	if purchase.Product != nil {
		summary := &ProductSummary{
			ID:   purchase.Product.ID,
			Name: purchase.Product.Name,
		}
		if purchase.Product.Type != nil {
			summary.Type = purchase.Product.Type.Name
		}
		dto.Product = summary
	}
	return dto
}
