package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
	"github.com/weavemart/weavemart-backend/pkg/pagination"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// Service exposes the contact form and its admin listing.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*DTO, error)
	ListAll(ctx context.Context, params pagination.Params) (*ListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*DTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	db *db.Client
}

// NewService constructs a contact service backed by the provided client.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: client}, nil
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*DTO, error) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must be 10 to 15 digits")
	}

	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Phone:   req.Phone,
		Message: strings.TrimSpace(req.Message),
		Subject: strings.TrimSpace(req.Subject),
		City:    strings.TrimSpace(req.City),
		State:   strings.TrimSpace(req.State),
		Company: strings.TrimSpace(req.Company),
	}
	if req.GSTPan != nil {
		trimmed := strings.TrimSpace(*req.GSTPan)
		if trimmed != "" {
			contact.GSTPan = &trimmed
		}
	}
	if err := s.db.DB().WithContext(ctx).Create(contact).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contact")
	}
	dto := fromModel(contact)
	return &dto, nil
}

// ListAll pages through leads newest first.
func (s *service) ListAll(ctx context.Context, params pagination.Params) (*ListResponse, error) {
	params = pagination.Normalize(params)

	var total int64
	if err := s.db.DB().WithContext(ctx).Model(&models.Contact{}).Count(&total).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count contacts")
	}

	var contacts []models.Contact
	err := s.db.DB().WithContext(ctx).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contacts")
	}

	items := make([]DTO, 0, len(contacts))
	for i := range contacts {
		items = append(items, fromModel(&contacts[i]))
	}
	return &ListResponse{
		Items:      items,
		Pagination: pagination.NewPage(params, total),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*DTO, error) {
	contact, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := fromModel(contact)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*DTO, error) {
	contact, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must be 10 to 15 digits")
		}
		updates["phonenumber"] = *req.Phone
	}
	if req.Message != nil {
		updates["message"] = strings.TrimSpace(*req.Message)
	}
	if req.Subject != nil {
		updates["subject"] = strings.TrimSpace(*req.Subject)
	}
	if req.City != nil {
		updates["city"] = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		updates["state"] = strings.TrimSpace(*req.State)
	}
	if req.Company != nil {
		updates["company"] = strings.TrimSpace(*req.Company)
	}
	if req.GSTPan != nil {
		updates["gst_pan"] = strings.TrimSpace(*req.GSTPan)
	}

	if len(updates) > 0 {
		err := s.db.DB().WithContext(ctx).
			Model(&models.Contact{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update contact")
		}
		contact, err = s.load(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	dto := fromModel(contact)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	err := s.db.DB().WithContext(ctx).Delete(&models.Contact{}, "id = ?", id).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete contact")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.DB().WithContext(ctx).First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "contact not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load contact")
	}
	return &contact, nil
}
