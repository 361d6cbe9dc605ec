package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageType is the seeded, enumerated set of image slot names
// (FRONT/BACK/LEFT/RIGHT/TOP/BOTTOM/DETAIL/OTHER).
type ImageType struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (t *ImageType) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ProductImage groups the Image rows for one variation.
type ProductImage struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	VariationID uuid.UUID `gorm:"column:variation_id;type:uuid;not null;index"`
	Images      []Image   `gorm:"foreignKey:ProductImageID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (p *ProductImage) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Image records one hosted picture: URL plus the host-assigned public id.
type Image struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ProductImageID uuid.UUID  `gorm:"column:product_image_id;type:uuid;not null;index"`
	URL            string     `gorm:"column:url;not null"`
	PublicID       string     `gorm:"column:public_id;not null"`
	ImageTypeID    uuid.UUID  `gorm:"column:image_type_id;type:uuid;not null"`
	ImageType      *ImageType `gorm:"foreignKey:ImageTypeID"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (i *Image) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
