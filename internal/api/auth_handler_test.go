package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cvmaker/internal/auth"
)

func newTestAuthService(t *testing.T) *auth.AuthService {
	t.Helper()
	svc, err := auth.NewAuthService("test-secret-test-secret-test-1234", time.Hour)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestRegisterAndLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	svc := newTestAuthService(t)
	h := NewAuthHandler(db, svc, nil)

	body := []byte(`{"username":"janis","password":"correct horse"}`)
	c, w := newCVContext(t, http.MethodPost, "/v1/auth/register", body, 0)
	h.Register(c)
	c.Writer.WriteHeaderNow()
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	c, w = newCVContext(t, http.MethodPost, "/v1/auth/login", body, 0)
	h.Login(c)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp tokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token type = %q", resp.TokenType)
	}
	claims, err := svc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token must validate: %v", err)
	}
	if claims.UserID == 0 {
		t.Error("token must carry the user id")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	h := NewAuthHandler(db, newTestAuthService(t), nil)

	body := []byte(`{"username":"janis","password":"correct horse"}`)
	c, _ := newCVContext(t, http.MethodPost, "/v1/auth/register", body, 0)
	h.Register(c)

	c, w := newCVContext(t, http.MethodPost, "/v1/auth/register", body, 0)
	h.Register(c)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate username must conflict, got %d", w.Code)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(newTestDB(t), newTestAuthService(t), nil)

	c, w := newCVContext(t, http.MethodPost, "/v1/auth/register", []byte(`{"username":"janis","password":"short"}`), 0)
	h.Register(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password must be rejected, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	h := NewAuthHandler(db, newTestAuthService(t), nil)

	c, _ := newCVContext(t, http.MethodPost, "/v1/auth/register", []byte(`{"username":"janis","password":"correct horse"}`), 0)
	h.Register(c)

	c, w := newCVContext(t, http.MethodPost, "/v1/auth/login", []byte(`{"username":"janis","password":"wrong horse!"}`), 0)
	h.Login(c)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password must be unauthorized, got %d", w.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(newTestDB(t), newTestAuthService(t), nil)

	c, w := newCVContext(t, http.MethodPost, "/v1/auth/login", []byte(`{"username":"nobody","password":"irrelevant1"}`), 0)
	h.Login(c)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user must be unauthorized, got %d", w.Code)
	}
}
