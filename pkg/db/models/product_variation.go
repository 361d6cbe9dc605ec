package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductVariation belongs to exactly one Product. Stock is the sum of its
// per-size quantities.
type ProductVariation struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	ProductID uuid.UUID        `gorm:"column:product_id;type:uuid;not null;index"`
	Color     string           `gorm:"column:color;not null"`
	MRP       *decimal.Decimal `gorm:"column:mrp;type:numeric(12,2)"`
	Sizes     []VariationSize  `gorm:"foreignKey:VariationID;constraint:OnDelete:CASCADE"`
	Images    []ProductImage   `gorm:"foreignKey:VariationID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (v *ProductVariation) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// Size is the seeded catalog of named garment sizes.
type Size struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (s *Size) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// VariationSize joins a variation to a size with a stocked quantity.
type VariationSize struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	VariationID uuid.UUID `gorm:"column:variation_id;type:uuid;not null;index"`
	SizeID      uuid.UUID `gorm:"column:size_id;type:uuid;not null"`
	Quantity    int       `gorm:"column:quantity;not null"`
	Size        *Size     `gorm:"foreignKey:SizeID"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (vs *VariationSize) BeforeCreate(*gorm.DB) error {
	if vs.ID == uuid.Nil {
		vs.ID = uuid.New()
	}
	return nil
}
