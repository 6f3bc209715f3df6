package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svidal/rutinas-api/internal/entities"
)

func TestRutinasController_Create(t *testing.T) {
	t.Run("creates a routine", func(t *testing.T) {
		router, cleanup := setupTestServer(t)
		defer cleanup()

		w := doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza", "descripcion": "Rutina de fuerza"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var rutina entities.Rutina
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rutina))
		assert.Greater(t, rutina.ID, uint(0))
		assert.Equal(t, "Fuerza", rutina.Nombre)
		assert.NotNil(t, rutina.FechaCreacion)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		router, cleanup := setupTestServer(t)
		defer cleanup()

		w := doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Ya existe una rutina")
	})

	t.Run("rejects a missing nombre", func(t *testing.T) {
		router, cleanup := setupTestServer(t)
		defer cleanup()

		w := doRequest(t, router, "POST", "/rutinas", `{"descripcion": "sin nombre"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRutinasController_List(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	for i := 1; i <= 5; i++ {
		w := doRequest(t, router, "POST", "/rutinas", fmt.Sprintf(`{"nombre": "Rutina %d"}`, i))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("returns a page with metadata", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/rutinas?page=2&limit=2", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Rutinas, 2)
		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, int64(5), resp.Pagination.Total)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.True(t, resp.Pagination.HasNext)
		assert.True(t, resp.Pagination.HasPrev)
	})

	t.Run("defaults apply without query parameters", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/rutinas", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Rutinas, 5)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 10, resp.Pagination.Limit)
	})

	t.Run("out-of-range parameters are clamped", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/rutinas?page=-1&limit=9999", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 10, resp.Pagination.Limit)
	})
}

func TestRutinasController_GetByID(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("existing routine", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/rutinas/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Fuerza")
	})

	t.Run("missing routine", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/rutinas/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No se encontró la rutina")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/rutinas/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRutinasController_Update(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, router, "POST", "/rutinas", `{"nombre": "Cardio"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		w := doRequest(t, router, "PUT", "/rutinas/1", `{"descripcion": "actualizada"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var rutina entities.Rutina
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rutina))
		assert.Equal(t, "Fuerza", rutina.Nombre)
		require.NotNil(t, rutina.Descripcion)
		assert.Equal(t, "actualizada", *rutina.Descripcion)
	})

	t.Run("name conflict with another routine", func(t *testing.T) {
		w := doRequest(t, router, "PUT", "/rutinas/2", `{"nombre": "Fuerza"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Ya existe otra rutina")
	})

	t.Run("missing routine", func(t *testing.T) {
		w := doRequest(t, router, "PUT", "/rutinas/999", `{"nombre": "Nueva"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRutinasController_Delete(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "DELETE", "/rutinas/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rutina eliminada correctamente")

	w = doRequest(t, router, "GET", "/rutinas/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, "DELETE", "/rutinas/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRutinasController_GetDetail(t *testing.T) {
	router, cleanup := setupTestServer(t)
	defer cleanup()
	token := registerAndLogin(t, router)

	w := doRequest(t, router, "POST", "/rutinas", `{"nombre": "Fuerza"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := `{"rutina_id": 1, "nombre": "Sentadilla", "dia": "Lunes", "series": 4, "repeticiones": 10, "orden": 1}`
	w = doAuthedRequest(t, router, "POST", "/ejercicios", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, "GET", "/rutinas/1/detalle", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		ID               uint                        `json:"id"`
		Nombre           string                      `json:"nombre"`
		EjerciciosPorDia map[string][]map[string]any `json:"ejercicios_por_dia"`
		Ejercicios       []map[string]any            `json:"ejercicios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))

	assert.Equal(t, "Fuerza", detail.Nombre)
	assert.Len(t, detail.Ejercicios, 1)
	lunes := detail.EjerciciosPorDia["Lunes"]
	require.Len(t, lunes, 1)
	assert.Equal(t, "Sentadilla", lunes[0]["nombre"])
	assert.Equal(t, float64(4), lunes[0]["series"])
	assert.Equal(t, float64(10), lunes[0]["repeticiones"])
	assert.Equal(t, float64(1), lunes[0]["orden"])
}
