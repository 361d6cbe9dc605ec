package contact

import (
	"time"

	"github.com/google/uuid"

	"github.com/weavemart/weavemart-backend/pkg/db/models"
	"github.com/weavemart/weavemart-backend/pkg/pagination"
)

// SubmitRequest is the public contact form payload.
type SubmitRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Message string  `json:"message" validate:"required"`
	Subject string  `json:"subject"`
	City    string  `json:"city" validate:"required"`
	State   string  `json:"state" validate:"required"`
	Company string  `json:"company" validate:"required"`
	GSTPan  *string `json:"gstPan"`
}

// UpdateRequest patches a stored lead. Nil fields are left untouched.
type UpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Subject *string `json:"subject"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Company *string `json:"company"`
	GSTPan  *string `json:"gstPan"`
}

// DTO is the stored lead returned to callers.
type DTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Subject   string    `json:"subject"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Company   string    `json:"company"`
	GSTPan    *string   `json:"gstPan,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse pairs one page of leads with navigation metadata.
type ListResponse struct {
	Items      []DTO           `json:"items"`
	Pagination pagination.Page `json:"pagination"`
}

func fromModel(contact *models.Contact) DTO {
	return DTO{
		ID:        contact.ID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Message:   contact.Message,
		Subject:   contact.Subject,
		City:      contact.City,
		State:     contact.State,
		Company:   contact.Company,
		GSTPan:    contact.GSTPan,
		CreatedAt: contact.CreatedAt,
	}
}
