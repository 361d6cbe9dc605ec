package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductType is the seeded catalog of product categories.
type ProductType struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (t *ProductType) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Product represents a seller listing. (name, seller_id) is a soft natural
// key: uploads reuse an existing row instead of creating a duplicate, but no
// unique constraint enforces it.
type Product struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Name          string             `gorm:"column:name;not null;index:idx_products_name_seller"`
	Description   *string            `gorm:"column:description"`
	ProductTypeID uuid.UUID          `gorm:"column:product_type_id;type:uuid;not null"`
	SellerID      uuid.UUID          `gorm:"column:seller_id;type:uuid;not null;index:idx_products_name_seller"`
	Type          *ProductType       `gorm:"foreignKey:ProductTypeID"`
	Variations    []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
