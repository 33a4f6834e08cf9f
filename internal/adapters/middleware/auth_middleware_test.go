package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/middleware"
)

func generateTestKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return privateKey, &privateKey.PublicKey
}

func createTestToken(privateKey *rsa.PrivateKey, role string, expired bool) string {
	exp := time.Now().Add(time.Hour)
	if expired {
		exp = time.Now().Add(-time.Hour)
	}

	claims := jwt.MapClaims{
		"sub":   "user-123",
		"email": "student@university.edu",
		"name":  "Student User",
		"role":  role,
		"exp":   exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, _ := token.SignedString(privateKey)
	return tokenString
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequireRole_NoAuthHeader(t *testing.T) {
	_, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	handler := m.RequireRole([]string{"student"}, okHandler)

	req := httptest.NewRequest("GET", "/student/state", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_InvalidHeaderFormat(t *testing.T) {
	_, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	handler := m.RequireRole([]string{"student"}, okHandler)

	req := httptest.NewRequest("GET", "/student/state", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_InvalidToken(t *testing.T) {
	_, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	handler := m.RequireRole([]string{"student"}, okHandler)

	req := httptest.NewRequest("GET", "/student/state", nil)
	req.Header.Set("Authorization", "Bearer invalid.token.here")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_ExpiredToken(t *testing.T) {
	privateKey, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	handler := m.RequireRole([]string{"student"}, okHandler)

	req := httptest.NewRequest("GET", "/student/state", nil)
	req.Header.Set("Authorization", "Bearer "+createTestToken(privateKey, "student", true))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	privateKey, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	handler := m.RequireRole([]string{"admin"}, okHandler)

	req := httptest.NewRequest("GET", "/admin/state", nil)
	req.Header.Set("Authorization", "Bearer "+createTestToken(privateKey, "student", false))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_ValidToken(t *testing.T) {
	privateKey, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	var gotUserID, gotRole, gotName string
	handler := m.RequireRole([]string{"student"}, func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(middleware.UserIDKey).(string)
		gotRole, _ = r.Context().Value(middleware.RoleKey).(string)
		gotName, _ = r.Context().Value(middleware.UserNameKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/student/state", nil)
	req.Header.Set("Authorization", "Bearer "+createTestToken(privateKey, "student", false))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "user-123" {
		t.Errorf("expected user id on context, got %q", gotUserID)
	}
	if gotRole != "student" {
		t.Errorf("expected role on context, got %q", gotRole)
	}
	if gotName != "Student User" {
		t.Errorf("expected name on context, got %q", gotName)
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	privateKey, publicKey := generateTestKeys(t)
	m := middleware.NewAuthMiddleware(publicKey)

	handler := m.RequireRole([]string{"admin", "student"}, okHandler)

	req := httptest.NewRequest("GET", "/student/state", nil)
	req.Header.Set("Authorization", "Bearer "+createTestToken(privateKey, "student", false))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
