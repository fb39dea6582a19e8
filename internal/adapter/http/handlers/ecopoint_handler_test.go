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

func actorMiddleware(id string, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("role", string(role))
		c.Next()
	}
}

func validEcoPointBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"title":              "Ecoponto Centro",
		"cnpj":               "12.345.678/0001-95",
		"opening_hours":      "08:00-18:00",
		"interval":           "12:00-13:00",
		"accepted_materials": []string{"vidro"},
		"address":            "Rua A, 123",
		"coordinates":        "-9.741951520552348,-36.660397991379185",
	})
	return body
}

func TestEcoPointHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		r := gin.New()
		r.POST("/ecopoints", actorMiddleware("company-1", entities.RoleEnterprise), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ecopoints", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		r := gin.New()
		r.POST("/ecopoints", actorMiddleware("company-1", entities.RoleEnterprise), h.Create)

		body, _ := json.Marshal(map[string]interface{}{
			"title":              "Ecoponto Centro",
			"cnpj":               "12.345.678/0001-95",
			"opening_hours":      "08:00-18:00",
			"interval":           "12:00-13:00",
			"accepted_materials": []string{"vidro"},
			"address":            "Rua A, 123",
			"coordinates":        "not-a-coordinate",
		})
		req := httptest.NewRequest(http.MethodPost, "/ecopoints", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non enterprise gets 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.EcoPoint{}, usecase.ErrOnlyEnterprises)

		r := gin.New()
		r.POST("/ecopoints", actorMiddleware("user-1", entities.RoleUser), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ecopoints", bytes.NewBuffer(validEcoPointBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("cnpj rejected gets 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.EcoPoint{}, usecase.ErrCnpjRejected)

		r := gin.New()
		r.POST("/ecopoints", actorMiddleware("company-1", entities.RoleEnterprise), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ecopoints", bytes.NewBuffer(validEcoPointBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("registry rate limited gets 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.EcoPoint{}, usecase.ErrRegistryRateLimited)

		r := gin.New()
		r.POST("/ecopoints", actorMiddleware("company-1", entities.RoleEnterprise), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ecopoints", bytes.NewBuffer(validEcoPointBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), entities.Actor{ID: "company-1", Role: entities.RoleEnterprise}).
			Return(entities.EcoPoint{ID: "eco-1", CompanyID: "company-1", Title: "Ecoponto Centro"}, nil)

		r := gin.New()
		r.POST("/ecopoints", actorMiddleware("company-1", entities.RoleEnterprise), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/ecopoints", bytes.NewBuffer(validEcoPointBody()))
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
		if resp["id"] != "eco-1" || resp["company_id"] != "company-1" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestEcoPointHandler_FindByCnpj(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing record answers null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().FindByCnpj(gomock.Any(), "12345678000195").
			Return(entities.EcoPoint{}, false, nil)

		r := gin.New()
		r.GET("/ecopoints/cnpj/:cnpj", h.FindByCnpj)

		req := httptest.NewRequest(http.MethodGet, "/ecopoints/cnpj/12345678000195", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != "null" {
			t.Fatalf("expected null body, got %q", got)
		}
	})
}

func TestEcoPointHandler_Remove(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not owner gets 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().RemoveWithPermission(gomock.Any(), "eco-1", "intruder").
			Return(usecase.ErrNotEcoPointOwner)

		r := gin.New()
		r.DELETE("/ecopoints/:id", actorMiddleware("intruder", entities.RoleEnterprise), h.Remove)

		req := httptest.NewRequest(http.MethodDelete, "/ecopoints/eco-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing gets 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEcoPointUseCase(ctrl)
		h := NewEcoPointHandler(uc)

		uc.EXPECT().RemoveWithPermission(gomock.Any(), "missing", "company-1").
			Return(usecase.ErrEcoPointNotFound)

		r := gin.New()
		r.DELETE("/ecopoints/:id", actorMiddleware("company-1", entities.RoleEnterprise), h.Remove)

		req := httptest.NewRequest(http.MethodDelete, "/ecopoints/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
