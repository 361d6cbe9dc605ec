package catalog

import (
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	"github.com/weavemart/weavemart-backend/pkg/enums"
)

// buildProductView flattens a product into the listing projection. Products
// with no variations or images degrade to empty defaults instead of erroring.
func buildProductView(product *models.Product) ProductView {
	view := ProductView{
		ID:   product.ID,
		Name: product.Name,
		Images: ImageGroup{
			Details: []string{},
			Others:  []string{},
		},
	}
	if product.Type != nil {
		view.Type = product.Type.Name
	}
	if product.Description != nil {
		view.Description = *product.Description
	}
	if len(product.Variations) == 0 {
		return view
	}

	variation := product.Variations[0]
	view.Color = variation.Color
	view.MRP = variation.MRP
	for _, size := range variation.Sizes {
		view.Stock += size.Quantity
	}
	for _, group := range variation.Images {
		for _, image := range group.Images {
			assignImageSlot(&view.Images, image)
		}
	}
	return view
}

func assignImageSlot(group *ImageGroup, image models.Image) {
	if image.ImageType == nil {
		group.Others = append(group.Others, image.URL)
		return
	}
	switch enums.ImageSlot(image.ImageType.Name) {
	case enums.ImageSlotFront:
		group.Front = image.URL
	case enums.ImageSlotBack:
		group.Back = image.URL
	case enums.ImageSlotLeft:
		group.Left = image.URL
	case enums.ImageSlotRight:
		group.Right = image.URL
	case enums.ImageSlotTop:
		group.Top = image.URL
	case enums.ImageSlotBottom:
		group.Bottom = image.URL
	case enums.ImageSlotDetail:
		group.Details = append(group.Details, image.URL)
	default:
		group.Others = append(group.Others, image.URL)
	}
}
