package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SizeQuantity pairs a catalog size id with the stocked quantity.
type SizeQuantity struct {
	SizeID   uuid.UUID `json:"sizeId" validate:"required"`
	Quantity int       `json:"quantity"`
}

// UploadRequest is the seller-facing upload payload. Image fields carry
// base64 data URIs; detail and other slots accept any number of payloads.
type UploadRequest struct {
	ProductName       string           `json:"productName" validate:"required"`
	ProductType       string           `json:"productType" validate:"required"`
	Description       *string          `json:"description"`
	Color             string           `json:"color" validate:"required"`
	MRP               *decimal.Decimal `json:"mrp"`
	Sizes             []SizeQuantity   `json:"sizes"`
	ExistingProductID *uuid.UUID       `json:"existingProductId"`
	FrontImage        string           `json:"frontImage"`
	BackImage         string           `json:"backImage"`
	LeftImage         string           `json:"leftImage"`
	RightImage        string           `json:"rightImage"`
	TopImage          string           `json:"topImage"`
	BottomImage       string           `json:"bottomImage"`
	DetailImages      []string         `json:"detailImages"`
	OtherImages       []string         `json:"otherImages"`
}

// UploadResponse identifies the rows created by a successful upload.
type UploadResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	VariationID uuid.UUID `json:"variationId"`
}

// ImageGroup flattens a variation's images by semantic slot.
type ImageGroup struct {
	Front   string   `json:"front"`
	Back    string   `json:"back"`
	Left    string   `json:"left"`
	Right   string   `json:"right"`
	Top     string   `json:"top"`
	Bottom  string   `json:"bottom"`
	Details []string `json:"details"`
	Others  []string `json:"others"`
}

// ProductView is the flattened read projection for listings and detail pages.
type ProductView struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	MRP         *decimal.Decimal `json:"mrp"`
	Stock       int              `json:"stock"`
	Images      ImageGroup       `json:"images"`
}

// ProductSummary lists what the upload form needs to offer reuse of an
// existing product.
type ProductSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// LookupItem is a seeded (id, name) catalog row.
type LookupItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ExistingResponse backs the upload form: reusable products plus the seeded
// product type and size catalogs.
type ExistingResponse struct {
	Products []ProductSummary `json:"products"`
	Types    []LookupItem     `json:"types"`
	Sizes    []LookupItem     `json:"sizes"`
}
