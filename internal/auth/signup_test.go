package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgAuth "github.com/weavemart/weavemart-backend/pkg/auth"
	"github.com/weavemart/weavemart-backend/pkg/db"
	"github.com/weavemart/weavemart-backend/pkg/db/models"
	"github.com/weavemart/weavemart-backend/pkg/enums"
	pkgerrors "github.com/weavemart/weavemart-backend/pkg/errors"
)

func newSignupTestDB(t *testing.T) *db.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	client, err := db.NewWithConn(conn)
	if err != nil {
		t.Fatalf("wrap client: %v", err)
	}
	return client
}

func newSignupTestService(t *testing.T) (SignupService, *db.Client) {
	t.Helper()
	client := newSignupTestDB(t)
	svc, err := NewSignupService(SignupServiceParams{
		DB:             client,
		SessionManager: newStubSessionManager(),
		JWTConfig:      testJWTConfig,
	})
	if err != nil {
		t.Fatalf("build signup service: %v", err)
	}
	return svc, client
}

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Email:    "buyer@example.com",
		Password: "super-secret-1",
		Name:     "Buyer",
		Role:     string(enums.UserRoleRetailer),
		Phone:    "9876543210",
	}
}

func TestSignupCreatesUserAndMintsTokens(t *testing.T) {
	svc, client := newSignupTestService(t)

	resp, err := svc.Signup(context.Background(), validSignupRequest())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.Role != enums.UserRoleRetailer {
		t.Fatalf("expected retailer role claim, got %s", claims.Role)
	}
	if resp.RefreshToken == "" {
		t.Fatal("expected refresh token")
	}
	if resp.User == nil || resp.User.ID != claims.UserID {
		t.Fatalf("user projection does not match claims: %+v", resp.User)
	}

	var stored models.User
	if err := client.DB().First(&stored, "email = ?", "buyer@example.com").Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.PasswordHash == "super-secret-1" {
		t.Fatal("password stored in plaintext")
	}
}

func TestSignupNormalizesEmailAndRejectsDuplicates(t *testing.T) {
	svc, _ := newSignupTestService(t)

	first := validSignupRequest()
	first.Email = "  Buyer@Example.COM "
	if _, err := svc.Signup(context.Background(), first); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	second := validSignupRequest()
	_, err := svc.Signup(context.Background(), second)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}

func TestSignupCompanyRequiredForBusinessRoles(t *testing.T) {
	svc, _ := newSignupTestService(t)

	for _, role := range []enums.UserRole{enums.UserRoleCorporate, enums.UserRoleSeller} {
		req := validSignupRequest()
		req.Email = fmt.Sprintf("%s@example.com", role)
		req.Role = string(role)
		req.Company = nil

		_, err := svc.Signup(context.Background(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("role %s: expected validation error, got %v", role, err)
		}
	}

	company := "Weave Traders"
	req := validSignupRequest()
	req.Email = "seller-with-company@example.com"
	req.Role = string(enums.UserRoleSeller)
	req.Company = &company
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("seller with company: %v", err)
	}
}

func TestSignupRejectsInvalidRoleAndPhone(t *testing.T) {
	svc, _ := newSignupTestService(t)

	badRole := validSignupRequest()
	badRole.Role = "WHOLESALER"
	_, err := svc.Signup(context.Background(), badRole)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad role, got %v", err)
	}

	badPhone := validSignupRequest()
	badPhone.Phone = "98-76-54"
	_, err = svc.Signup(context.Background(), badPhone)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad phone, got %v", err)
	}
}
