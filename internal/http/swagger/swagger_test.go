package swagger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/supplier-catalog/api-contract"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/swagger"
)

func TestSwaggerDocsRoute(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	r := chi.NewRouter()
	require.NoError(t, swagger.Register(r, doc))

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp
	}

	t.Run("Should get docs successfully", func(t *testing.T) {
		resp := get("/docs")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, resp.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, resp.Body.String(), "<title>Supplier Catalog API</title>")
		assert.Contains(t, resp.Body.String(), swagger.SpecYAMLURL)
	})

	t.Run("Should get openapi.yml successfully", func(t *testing.T) {
		resp := get(swagger.SpecYAMLURL)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/yaml")
		assert.Contains(t, resp.Body.String(), "operationId: GetFeed")
	})

	t.Run("Should get openapi.json successfully", func(t *testing.T) {
		resp := get(swagger.SpecJSONURL)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

		var spec struct {
			OpenAPI string         `json:"openapi"`
			Paths   map[string]any `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &spec))
		assert.Equal(t, "3.0.3", spec.OpenAPI)
		assert.Contains(t, spec.Paths, "/api/feed")
		assert.Contains(t, spec.Paths, "/api/products/{id}")
	})
}
