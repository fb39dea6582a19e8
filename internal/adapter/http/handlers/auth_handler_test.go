package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecopontos_arapiraca/internal/adapter/http/handlers/mocks"
	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("email in use gets 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Register(gomock.Any(), gomock.Any(), entities.RoleUser).
			Return(entities.User{}, usecase.ErrEmailInUse)

		r := gin.New()
		r.POST("/auth/register", h.Register)

		body := `{"name":"Maria","email":"maria@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created without password in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Register(gomock.Any(), usecase.RegisterCommand{
			Name: "Maria", Email: "maria@example.com", Password: "secret1",
		}, entities.RoleUser).Return(entities.User{ID: "u1", Name: "Maria", Role: entities.RoleUser, Approved: true}, nil)

		r := gin.New()
		r.POST("/auth/register", h.Register)

		body := `{"name":"Maria","email":"maria@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, leaked := resp["password"]; leaked {
			t.Fatal("password must never appear in responses")
		}
	})
}

func TestAuthHandler_RegisterEnterprise(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non admin gets 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/register-enterprise", actorMiddleware("u1", entities.RoleUser), h.RegisterEnterprise)

		body := `{"name":"Recicla","email":"recicla@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register-enterprise", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin creates approved enterprise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().RegisterEnterprise(gomock.Any(), gomock.Any()).
			Return(entities.User{ID: "e1", Role: entities.RoleEnterprise, Approved: true}, nil)

		r := gin.New()
		r.POST("/auth/register-enterprise", actorMiddleware("adm", entities.RoleAdmin), h.RegisterEnterprise)

		body := `{"name":"Recicla","email":"recicla@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register-enterprise", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad credentials gets 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "maria@example.com", "wrong").
			Return("", entities.User{}, usecase.ErrInvalidCredentials)

		r := gin.New()
		r.POST("/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"maria@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success answers token and user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "maria@example.com", "secret1").
			Return("token-abc", entities.User{ID: "u1", Role: entities.RoleUser}, nil)

		r := gin.New()
		r.POST("/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"maria@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["access_token"] != "token-abc" {
			t.Fatalf("unexpected token: %v", resp["access_token"])
		}
	})
}
