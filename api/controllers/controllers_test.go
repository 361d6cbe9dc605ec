package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/weavemart/weavemart-backend/api/middleware"
	internalauth "github.com/weavemart/weavemart-backend/internal/auth"
	"github.com/weavemart/weavemart-backend/internal/cart"
	"github.com/weavemart/weavemart-backend/internal/catalog"
	"github.com/weavemart/weavemart-backend/internal/contact"
	"github.com/weavemart/weavemart-backend/internal/users"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
	"github.com/weavemart/weavemart-backend/pkg/pagination"
)

type stubAuthService struct {
	internalauth.Service
	loginFn func(ctx context.Context, req internalauth.LoginRequest) (*internalauth.TokenResponse, error)
}

func (s stubAuthService) Login(ctx context.Context, req internalauth.LoginRequest) (*internalauth.TokenResponse, error) {
	return s.loginFn(ctx, req)
}

func TestAuthLoginWritesTokenEnvelope(t *testing.T) {
	svc := stubAuthService{
		loginFn: func(ctx context.Context, req internalauth.LoginRequest) (*internalauth.TokenResponse, error) {
			if req.Email != "buyer@example.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			return &internalauth.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         &users.UserDTO{Email: req.Email},
			}, nil
		},
	}

	body := `{"email":"buyer@example.com","password":"secret-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data internalauth.TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "access" || envelope.Data.User == nil {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestAuthLoginMapsUnauthorized(t *testing.T) {
	svc := stubAuthService{
		loginFn: func(ctx context.Context, req internalauth.LoginRequest) (*internalauth.TokenResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	body := `{"email":"buyer@example.com","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "invalid credentials") {
		t.Fatalf("expected generic message, got %s", resp.Body.String())
	}
}

type stubContactService struct {
	contact.Service
	submitFn func(ctx context.Context, req contact.SubmitRequest) (*contact.DTO, error)
	listFn   func(ctx context.Context, params pagination.Params) (*contact.ListResponse, error)
}

func (s stubContactService) Submit(ctx context.Context, req contact.SubmitRequest) (*contact.DTO, error) {
	return s.submitFn(ctx, req)
}

func (s stubContactService) ListAll(ctx context.Context, params pagination.Params) (*contact.ListResponse, error) {
	return s.listFn(ctx, params)
}

func TestContactSubmitReturns200(t *testing.T) {
	svc := stubContactService{
		submitFn: func(ctx context.Context, req contact.SubmitRequest) (*contact.DTO, error) {
			return &contact.DTO{ID: uuid.New(), Name: req.Name}, nil
		},
	}

	body := `{"name":"Asha","phone":"9876543210","message":"hi","city":"Surat","state":"Gujarat","company":"Asha Traders"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit", strings.NewReader(body))
	resp := httptest.NewRecorder()
	ContactSubmit(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestContactListAllForwardsPageParam(t *testing.T) {
	svc := stubContactService{
		listFn: func(ctx context.Context, params pagination.Params) (*contact.ListResponse, error) {
			if params.Page != 3 {
				t.Fatalf("expected page 3, got %d", params.Page)
			}
			if params.PageSize != 50 {
				t.Fatalf("expected page size 50, got %d", params.PageSize)
			}
			return &contact.ListResponse{Items: []contact.DTO{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact/all?page=3", nil)
	resp := httptest.NewRecorder()
	ContactListAll(svc, 50, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

type stubCatalogService struct {
	catalog.Service
	detailFn func(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error)
}

func (s stubCatalogService) GetProductByID(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error) {
	return s.detailFn(ctx, id)
}

func TestProductDetailRejectsBadID(t *testing.T) {
	svc := stubCatalogService{
		detailFn: func(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error) {
			t.Fatal("service must not be called for malformed ids")
			return nil, nil
		},
	}

	router := chi.NewRouter()
	router.Get("/api/products/{productId}", ProductDetail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

type stubCartService struct {
	cart.Service
	getFn func(ctx context.Context, userID uuid.UUID) ([]cart.ItemDTO, error)
}

func (s stubCartService) Get(ctx context.Context, userID uuid.UUID) ([]cart.ItemDTO, error) {
	return s.getFn(ctx, userID)
}

func TestCartGetRequiresAuthenticatedUser(t *testing.T) {
	svc := stubCartService{
		getFn: func(ctx context.Context, userID uuid.UUID) ([]cart.ItemDTO, error) {
			return []cart.ItemDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp := httptest.NewRecorder()
	CartGet(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user context, got %d", resp.Code)
	}

	userID := uuid.New()
	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp = httptest.NewRecorder()
	CartGet(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with user context, got %d", resp.Code)
	}
}
