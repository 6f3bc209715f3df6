package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svidal/rutinas-api/internal/database/rutinas"
	"github.com/svidal/rutinas-api/internal/entities"
)

// RutinaStore defines database operations for routine management.
type RutinaStore interface {
	Create(nombre string, descripcion *string) (*entities.Rutina, error)
	List(page, limit int) ([]entities.Rutina, rutinas.Pagination, error)
	Search(nombre string) ([]entities.Rutina, error)
	GetByID(id uint) (*entities.Rutina, error)
	Update(id uint, params rutinas.UpdateParams) (*entities.Rutina, error)
	Delete(id uint) error
	GetDetail(id uint) (*rutinas.Detail, error)
}

type RutinasController struct {
	store RutinaStore
}

func NewRutinasController(store RutinaStore) *RutinasController {
	return &RutinasController{store: store}
}

// ListResponse is the paginated envelope returned by GET /rutinas.
type ListResponse struct {
	Rutinas    []entities.Rutina  `json:"rutinas"`
	Pagination rutinas.Pagination `json:"pagination"`
}

// Create creates a new routine
// POST /rutinas
func (rc *RutinasController) Create(c *gin.Context) {
	var req struct {
		Nombre      string  `json:"nombre" binding:"required"`
		Descripcion *string `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "nombre es obligatorio")
		return
	}

	rutina, err := rc.store.Create(req.Nombre, req.Descripcion)
	if err != nil {
		if errors.Is(err, rutinas.ErrNombreEnUso) {
			respondBadRequest(c, fmt.Sprintf("Ya existe una rutina con el nombre '%s'. Por favor, usa un nombre diferente.", req.Nombre))
			return
		}
		respondInternalError(c, err, "create rutina")
		return
	}

	respondCreated(c, rutina)
}

// List returns one page of routines with pagination metadata
// GET /rutinas?page=&limit=
func (rc *RutinasController) List(c *gin.Context) {
	var query struct {
		Page  int `form:"page,default=1"`
		Limit int `form:"limit,default=10"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "parámetros de paginación inválidos")
		return
	}

	items, pagination, err := rc.store.List(query.Page, query.Limit)
	if err != nil {
		respondInternalError(c, err, "list rutinas")
		return
	}
	if items == nil {
		items = []entities.Rutina{}
	}

	c.JSON(http.StatusOK, ListResponse{Rutinas: items, Pagination: pagination})
}

// Search finds routines by partial, case-insensitive name match
// GET /rutinas/buscar?nombre=
func (rc *RutinasController) Search(c *gin.Context) {
	nombre := c.Query("nombre")
	if nombre == "" {
		respondBadRequest(c, "nombre es obligatorio")
		return
	}

	items, err := rc.store.Search(nombre)
	if err != nil {
		respondInternalError(c, err, "search rutinas")
		return
	}
	if items == nil {
		items = []entities.Rutina{}
	}

	c.JSON(http.StatusOK, items)
}

// GetByID returns a single routine
// GET /rutinas/:id
func (rc *RutinasController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rutina, err := rc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, rutinas.ErrRutinaNotFound) {
			respondNotFound(c, fmt.Sprintf("No se encontró la rutina con ID %d", id))
			return
		}
		respondInternalError(c, err, "get rutina")
		return
	}

	c.JSON(http.StatusOK, rutina)
}

// Update applies a partial update to a routine
// PUT /rutinas/:id
func (rc *RutinasController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Nombre      *string `json:"nombre"`
		Descripcion *string `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "cuerpo de la petición inválido")
		return
	}

	rutina, err := rc.store.Update(id, rutinas.UpdateParams{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		switch {
		case errors.Is(err, rutinas.ErrRutinaNotFound):
			respondNotFound(c, fmt.Sprintf("No se encontró la rutina con ID %d", id))
		case errors.Is(err, rutinas.ErrNombreEnUso):
			respondBadRequest(c, fmt.Sprintf("Ya existe otra rutina con el nombre '%s'. Por favor, usa un nombre diferente.", *req.Nombre))
		default:
			respondInternalError(c, err, "update rutina")
		}
		return
	}

	c.JSON(http.StatusOK, rutina)
}

// Delete removes a routine and, with it, all its exercises
// DELETE /rutinas/:id
func (rc *RutinasController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.store.Delete(id); err != nil {
		if errors.Is(err, rutinas.ErrRutinaNotFound) {
			respondNotFound(c, fmt.Sprintf("No se encontró la rutina con ID %d", id))
			return
		}
		respondInternalError(c, err, "delete rutina")
		return
	}

	respondMessage(c, "Rutina eliminada correctamente")
}

// GetDetail returns a routine with its exercises grouped by day
// GET /rutinas/:id/detalle
func (rc *RutinasController) GetDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := rc.store.GetDetail(id)
	if err != nil {
		if errors.Is(err, rutinas.ErrRutinaNotFound) {
			respondNotFound(c, fmt.Sprintf("No se encontró la rutina con ID %d", id))
			return
		}
		respondInternalError(c, err, "get rutina detail")
		return
	}

	c.JSON(http.StatusOK, detail)
}
