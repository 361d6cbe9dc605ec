package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	"github.com/weavemart/weavemart-backend/pkg/enums"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
	"github.com/weavemart/weavemart-backend/pkg/storage/cloudinary"
)

type catalogFixture struct {
	client  *db.Client
	service Service
	images  *fakeImageHost
	sizeS   uuid.UUID
	sizeM   uuid.UUID
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.User{},
		&models.ProductType{},
		&models.Product{},
		&models.ProductVariation{},
		&models.Size{},
		&models.VariationSize{},
		&models.ImageType{},
		&models.ProductImage{},
		&models.Image{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	client, err := db.NewWithConn(conn)
	if err != nil {
		t.Fatalf("wrap client: %v", err)
	}

	fixture := &catalogFixture{client: client, images: &fakeImageHost{}}

	for _, slot := range enums.AllImageSlots() {
		if err := conn.Create(&models.ImageType{Name: slot.String()}).Error; err != nil {
			t.Fatalf("seed image type %s: %v", slot, err)
		}
	}
	if err := conn.Create(&models.ProductType{Name: "SAREE"}).Error; err != nil {
		t.Fatalf("seed product type: %v", err)
	}
	sizeS := &models.Size{Name: "S"}
	sizeM := &models.Size{Name: "M"}
	if err := conn.Create(sizeS).Error; err != nil {
		t.Fatalf("seed size: %v", err)
	}
	if err := conn.Create(sizeM).Error; err != nil {
		t.Fatalf("seed size: %v", err)
	}
	fixture.sizeS = sizeS.ID
	fixture.sizeM = sizeM.ID

	svc, err := NewService(ServiceParams{DB: client, Images: fixture.images})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	fixture.service = svc
	return fixture
}

func (f *catalogFixture) validUpload() UploadRequest {
	mrp := decimal.NewFromInt(1499)
	return UploadRequest{
		ProductName: "Banarasi Silk",
		ProductType: "saree",
		Color:       "Maroon",
		MRP:         &mrp,
		Sizes: []SizeQuantity{
			{SizeID: f.sizeS, Quantity: 2},
			{SizeID: f.sizeM, Quantity: 3},
		},
		FrontImage: "data:image/png;base64,front",
		BackImage:  "data:image/png;base64,back",
	}
}

func (f *catalogFixture) countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	if err := f.client.DB().Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func TestUploadCreatesFullTree(t *testing.T) {
	f := newCatalogFixture(t)
	sellerID := uuid.New()

	resp, err := f.service.Upload(context.Background(), sellerID, f.validUpload())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	view, err := f.service.GetProductByID(context.Background(), resp.ProductID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if view.Name != "Banarasi Silk" || view.Type != "SAREE" {
		t.Fatalf("unexpected projection %+v", view)
	}
	if view.Color != "Maroon" {
		t.Fatalf("expected color Maroon, got %q", view.Color)
	}
	if view.MRP == nil || !view.MRP.Equal(decimal.NewFromInt(1499)) {
		t.Fatalf("unexpected mrp %v", view.MRP)
	}
	if view.Stock != 5 {
		t.Fatalf("expected stock 5 from quantities 2+3, got %d", view.Stock)
	}
	if view.Images.Front == "" || view.Images.Back == "" {
		t.Fatalf("expected hosted front and back urls, got %+v", view.Images)
	}

	if got := f.countRows(t, &models.VariationSize{}); got != 2 {
		t.Fatalf("expected 2 variation size rows, got %d", got)
	}
}

func TestUploadMissingBackImageRollsBack(t *testing.T) {
	f := newCatalogFixture(t)

	req := f.validUpload()
	req.BackImage = ""

	_, err := f.service.Upload(context.Background(), uuid.New(), req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	for _, model := range []any{
		&models.Product{},
		&models.ProductVariation{},
		&models.VariationSize{},
		&models.ProductImage{},
		&models.Image{},
	} {
		if got := f.countRows(t, model); got != 0 {
			t.Fatalf("expected no %T rows after failed upload, got %d", model, got)
		}
	}
}

func TestUploadHostFailureRollsBackEverything(t *testing.T) {
	f := newCatalogFixture(t)
	f.images.failAfter = 1

	_, err := f.service.Upload(context.Background(), uuid.New(), f.validUpload())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}

	for _, model := range []any{&models.Product{}, &models.ProductVariation{}, &models.Image{}} {
		if got := f.countRows(t, model); got != 0 {
			t.Fatalf("expected no %T rows after host failure, got %d", model, got)
		}
	}
}

func TestUploadUnknownSizeIsNotFound(t *testing.T) {
	f := newCatalogFixture(t)

	req := f.validUpload()
	req.Sizes = []SizeQuantity{{SizeID: uuid.New(), Quantity: 1}}

	_, err := f.service.Upload(context.Background(), uuid.New(), req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown size, got %v", err)
	}
	if got := f.countRows(t, &models.Product{}); got != 0 {
		t.Fatalf("expected rollback, found %d product rows", got)
	}
}

func TestUploadNegativeQuantityRejected(t *testing.T) {
	f := newCatalogFixture(t)

	req := f.validUpload()
	req.Sizes[0].Quantity = -1

	_, err := f.service.Upload(context.Background(), uuid.New(), req)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadReusesProductForSameNameAndSeller(t *testing.T) {
	f := newCatalogFixture(t)
	sellerID := uuid.New()

	first, err := f.service.Upload(context.Background(), sellerID, f.validUpload())
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}

	second := f.validUpload()
	second.Color = "Teal"
	resp, err := f.service.Upload(context.Background(), sellerID, second)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	if resp.ProductID != first.ProductID {
		t.Fatal("expected second upload to reuse the existing product")
	}
	if got := f.countRows(t, &models.Product{}); got != 1 {
		t.Fatalf("expected one product row, got %d", got)
	}
	if got := f.countRows(t, &models.ProductVariation{}); got != 2 {
		t.Fatalf("expected two variations, got %d", got)
	}
}

func TestListProductsFlattensImagesBySlot(t *testing.T) {
	f := newCatalogFixture(t)

	req := f.validUpload()
	req.DetailImages = []string{"data:image/png;base64,d1", "data:image/png;base64,d2"}
	if _, err := f.service.Upload(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("upload: %v", err)
	}

	views, err := f.service.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one product, got %d", len(views))
	}
	if len(views[0].Images.Details) != 2 {
		t.Fatalf("expected two detail images, got %d", len(views[0].Images.Details))
	}
}

func TestListExistingReturnsLookups(t *testing.T) {
	f := newCatalogFixture(t)

	if _, err := f.service.Upload(context.Background(), uuid.New(), f.validUpload()); err != nil {
		t.Fatalf("upload: %v", err)
	}

	resp, err := f.service.ListExisting(context.Background())
	if err != nil {
		t.Fatalf("list existing: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].Type != "SAREE" {
		t.Fatalf("unexpected product summaries %+v", resp.Products)
	}
	if len(resp.Types) != 1 || len(resp.Sizes) != 2 {
		t.Fatalf("expected seeded lookups, got %d types and %d sizes", len(resp.Types), len(resp.Sizes))
	}
}

func TestGetProductByIDUnknown(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.service.GetProductByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

// fakeImageHost hands out deterministic urls and can be told to fail after
// serving a number of uploads.
type fakeImageHost struct {
	uploads   int
	failAfter int
}

func (f *fakeImageHost) Upload(ctx context.Context, dataURI string) (*cloudinary.UploadResult, error) {
	if f.failAfter > 0 && f.uploads >= f.failAfter {
		return nil, errors.New("image host unavailable")
	}
	f.uploads++
	return &cloudinary.UploadResult{
		URL:      fmt.Sprintf("https://cdn.example.com/img-%d.png", f.uploads),
		PublicID: fmt.Sprintf("weavemart/img-%d", f.uploads),
	}, nil
}
