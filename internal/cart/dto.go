package cart

import (
	"github.com/google/uuid"

	"github.com/weavemart/weavemart-backend/pkg/db/models"
)

// AddRequest adds a product to the caller's cart. Quantity defaults to 1.
type AddRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// RemoveRequest drops a product from the caller's cart.
type RemoveRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// ProductSummary is the slim product projection embedded in cart items.
type ProductSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

// ItemDTO is one cart line.
type ItemDTO struct {
	ID       uuid.UUID       `json:"id"`
	Quantity int             `json:"quantity"`
	Product  *ProductSummary `json:"product,omitempty"`
}

func fromModel(item *models.CartItem) ItemDTO {
	dto := ItemDTO{
		ID:       item.ID,
		Quantity: item.Quantity,
	}
	if item.Product != nil {
		summary := &ProductSummary{
			ID:   item.Product.ID,
			Name: item.Product.Name,
		}
		if item.Product.Type != nil {
			summary.Type = item.Product.Type.Name
		}
		if item.Product.Description != nil {
			summary.Description = *item.Product.Description
		}
		dto.Product = summary
	}
	return dto
}
