package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	"github.com/weavemart/weavemart-backend/pkg/enums"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
	"github.com/weavemart/weavemart-backend/pkg/storage/cloudinary"
)

// Service exposes the catalog operations used by the products controller.
type Service interface {
	Upload(ctx context.Context, sellerID uuid.UUID, req UploadRequest) (*UploadResponse, error)
	ListProducts(ctx context.Context) ([]ProductView, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListExisting(ctx context.Context) (*ExistingResponse, error)
}

type imageHost interface {
	Upload(ctx context.Context, dataURI string) (*cloudinary.UploadResult, error)
}

type service struct {
	db     *db.Client
	images imageHost
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	DB     *db.Client
	Images imageHost
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if params.Images == nil {
		return nil, fmt.Errorf("image host is required")
	}
	return &service{db: params.DB, images: params.Images}, nil
}

type slotPayload struct {
	slot    enums.ImageSlot
	payload string
}

// Upload runs the whole multi-row write in one transaction. Any failure,
// including an image host error, rolls back every row created so far.
func (s *service) Upload(ctx context.Context, sellerID uuid.UUID, req UploadRequest) (*UploadResponse, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if strings.TrimSpace(req.Color) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "color is required")
	}
	if len(req.Sizes) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one size is required")
	}
	for _, size := range req.Sizes {
		if size.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "size quantity cannot be negative")
		}
	}
	slots, err := collectSlots(req)
	if err != nil {
		return nil, err
	}

	var resp *UploadResponse
	if err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		product, err := s.resolveProduct(ctx, repo, name, sellerID, req)
		if err != nil {
			return err
		}

		variation := &models.ProductVariation{
			ProductID: product.ID,
			Color:     strings.TrimSpace(req.Color),
			MRP:       req.MRP,
		}
		if err := repo.CreateVariation(ctx, variation); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create variation")
		}

		for _, size := range req.Sizes {
			if _, err := repo.FindSizeByID(ctx, size.SizeID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "unknown size")
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup size")
			}
			row := &models.VariationSize{
				VariationID: variation.ID,
				SizeID:      size.SizeID,
				Quantity:    size.Quantity,
			}
			if err := repo.CreateVariationSize(ctx, row); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create variation size")
			}
		}

		group := &models.ProductImage{VariationID: variation.ID}
		if err := repo.CreateProductImage(ctx, group); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create image group")
		}

		for _, slot := range slots {
			uploaded, err := s.images.Upload(ctx, slot.payload)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload image")
			}
			imageType, err := repo.FindImageTypeByName(ctx, slot.slot.String())
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeValidation, "unknown image type")
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup image type")
			}
			image := &models.Image{
				ProductImageID: group.ID,
				URL:            uploaded.URL,
				PublicID:       uploaded.PublicID,
				ImageTypeID:    imageType.ID,
			}
			if err := repo.CreateImage(ctx, image); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create image")
			}
		}

		resp = &UploadResponse{ProductID: product.ID, VariationID: variation.ID}
		return nil
	}); err != nil {
		return nil, err
	}
	return resp, nil
}

// resolveProduct reuses an existing product for the (name, seller) pair,
// falls back to the caller-supplied id, and creates a fresh row otherwise.
func (s *service) resolveProduct(ctx context.Context, repo *Repository, name string, sellerID uuid.UUID, req UploadRequest) (*models.Product, error) {
	product, err := repo.FindProductByNameAndSeller(ctx, name, sellerID)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	if req.ExistingProductID != nil {
		product, err := repo.FindProductByID(ctx, *req.ExistingProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
		}
		return product, nil
	}

	productType, err := repo.FindProductTypeByName(ctx, req.ProductType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown product type")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product type")
	}

	var description *string
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed != "" {
			description = &trimmed
		}
	}
	created := &models.Product{
		Name:          name,
		Description:   description,
		ProductTypeID: productType.ID,
		SellerID:      sellerID,
	}
	if err := repo.CreateProduct(ctx, created); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return created, nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductView, error) {
	repo := NewRepository(s.db.DB())
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, buildProductView(&products[i]))
	}
	return views, nil
}

func (s *service) GetProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	repo := NewRepository(s.db.DB())
	product, err := repo.GetProductDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	view := buildProductView(product)
	return &view, nil
}

func (s *service) ListExisting(ctx context.Context) (*ExistingResponse, error) {
	repo := NewRepository(s.db.DB())

	products, err := repo.ListProductSummaries(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	types, err := repo.ListProductTypes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list product types")
	}
	sizes, err := repo.ListSizes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list sizes")
	}

	resp := &ExistingResponse{
		Products: make([]ProductSummary, 0, len(products)),
		Types:    make([]LookupItem, 0, len(types)),
		Sizes:    make([]LookupItem, 0, len(sizes)),
	}
	for i := range products {
		summary := ProductSummary{ID: products[i].ID, Name: products[i].Name}
		if products[i].Type != nil {
			summary.Type = products[i].Type.Name
		}
		resp.Products = append(resp.Products, summary)
	}
	for _, t := range types {
		resp.Types = append(resp.Types, LookupItem{ID: t.ID, Name: t.Name})
	}
	for _, size := range sizes {
		resp.Sizes = append(resp.Sizes, LookupItem{ID: size.ID, Name: size.Name})
	}
	return resp, nil
}

// collectSlots assembles the per-slot payload list. Front and back are
// mandatory; detail and other slots may repeat.
func collectSlots(req UploadRequest) ([]slotPayload, error) {
	if strings.TrimSpace(req.FrontImage) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "front image is required")
	}
	if strings.TrimSpace(req.BackImage) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "back image is required")
	}

	slots := []slotPayload{
		{slot: enums.ImageSlotFront, payload: req.FrontImage},
		{slot: enums.ImageSlotBack, payload: req.BackImage},
	}
	optional := []slotPayload{
		{slot: enums.ImageSlotLeft, payload: req.LeftImage},
		{slot: enums.ImageSlotRight, payload: req.RightImage},
		{slot: enums.ImageSlotTop, payload: req.TopImage},
		{slot: enums.ImageSlotBottom, payload: req.BottomImage},
	}
	for _, candidate := range optional {
		if strings.TrimSpace(candidate.payload) != "" {
			slots = append(slots, candidate)
		}
	}
	for _, payload := range req.DetailImages {
		if strings.TrimSpace(payload) != "" {
			slots = append(slots, slotPayload{slot: enums.ImageSlotDetail, payload: payload})
		}
	}
	for _, payload := range req.OtherImages {
		if strings.TrimSpace(payload) != "" {
			slots = append(slots, slotPayload{slot: enums.ImageSlotOther, payload: payload})
		}
	}
	return slots, nil
}
