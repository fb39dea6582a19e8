package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCnpj(t *testing.T) {
	assert.Equal(t, "12345678000195", NormalizeCnpj("12.345.678/0001-95"))
	assert.Equal(t, "12345678000195", NormalizeCnpj("12345678000195"))
	assert.Equal(t, "", NormalizeCnpj("abc"))
	// Normalizing twice is the same as normalizing once.
	assert.Equal(t, NormalizeCnpj("12.345.678/0001-95"), NormalizeCnpj(NormalizeCnpj("12.345.678/0001-95")))
}

func TestReceitaWSClient_Validate(t *testing.T) {
	t.Run("short input fails before any network call", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "123.456.789-09")
		require.ErrorIs(t, err, interfaces.ErrCnpjFormat)
		assert.False(t, called, "registry must not be hit for malformed input")
	})

	t.Run("valid lookup answers payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cnpj/12345678000195", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"OK","nome":"Recicla LTDA","cnpj":"12.345.678/0001-95"}`))
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		payload, err := client.Validate(context.Background(), "12.345.678/0001-95")
		require.NoError(t, err)
		assert.Equal(t, "Recicla LTDA", payload["nome"])
	})

	t.Run("status ERROR means invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ERROR","message":"CNPJ inválido"}`))
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "12345678000195")
		require.ErrorIs(t, err, interfaces.ErrCnpjNotFoundOrInvalid)
	})

	t.Run("400 means invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "12345678000195")
		require.ErrorIs(t, err, interfaces.ErrCnpjNotFoundOrInvalid)
	})

	t.Run("429 means rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "12345678000195")
		require.ErrorIs(t, err, interfaces.ErrCnpjRateLimited)
	})

	t.Run("other statuses are transient registry errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "12345678000195")
		var regErr *interfaces.RegistryError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, http.StatusInternalServerError, regErr.StatusCode)
	})

	t.Run("unreachable registry is a transient error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "12345678000195")
		var regErr *interfaces.RegistryError
		require.ErrorAs(t, err, &regErr)
	})

	t.Run("malformed body is a transient error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := NewReceitaWSClient(srv.URL, nil)
		_, err := client.Validate(context.Background(), "12345678000195")
		var regErr *interfaces.RegistryError
		require.ErrorAs(t, err, &regErr)
	})
}
