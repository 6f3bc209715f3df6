package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svidal/rutinas-api/internal/database/ejercicios"
	"github.com/svidal/rutinas-api/internal/entities"
)

// EjercicioStore defines database operations for exercise management.
type EjercicioStore interface {
	Create(params ejercicios.CreateParams) (*entities.Ejercicio, error)
	List() ([]entities.Ejercicio, error)
	GetByID(id uint) (*entities.Ejercicio, error)
	Update(id uint, params ejercicios.UpdateParams) (*entities.Ejercicio, error)
	Delete(id uint) error
}

type EjerciciosController struct {
	store EjercicioStore
}

func NewEjerciciosController(store EjercicioStore) *EjerciciosController {
	return &EjerciciosController{store: store}
}

// Create creates a new exercise under an existing routine
// POST /ejercicios
func (ec *EjerciciosController) Create(c *gin.Context) {
	var req struct {
		RutinaID     uint     `json:"rutina_id" binding:"required"`
		Nombre       string   `json:"nombre" binding:"required"`
		Dia          *string  `json:"dia"`
		Series       *int     `json:"series" binding:"omitempty,gt=0"`
		Repeticiones *int     `json:"repeticiones" binding:"omitempty,gt=0"`
		Peso         *float64 `json:"peso" binding:"omitempty,gte=0"`
		Notas        *string  `json:"notas"`
		Orden        *int     `json:"orden"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "cuerpo de la petición inválido: "+err.Error())
		return
	}

	ejercicio, err := ec.store.Create(ejercicios.CreateParams{
		RutinaID:     req.RutinaID,
		Nombre:       req.Nombre,
		Dia:          req.Dia,
		Series:       req.Series,
		Repeticiones: req.Repeticiones,
		Peso:         req.Peso,
		Notas:        req.Notas,
		Orden:        req.Orden,
	})
	if err != nil {
		switch {
		case errors.Is(err, ejercicios.ErrRutinaNotFound):
			respondNotFound(c, fmt.Sprintf("No se encontró la rutina con ID %d. Por favor, crea la rutina primero o usa un ID de rutina válido.", req.RutinaID))
		case errors.Is(err, ejercicios.ErrDatosInvalidos):
			respondBadRequest(c, "Error de integridad de datos al crear el ejercicio")
		default:
			respondInternalError(c, err, "create ejercicio")
		}
		return
	}

	respondCreated(c, ejercicio)
}

// List returns all exercises across all routines
// GET /ejercicios
func (ec *EjerciciosController) List(c *gin.Context) {
	items, err := ec.store.List()
	if err != nil {
		respondInternalError(c, err, "list ejercicios")
		return
	}
	if items == nil {
		items = []entities.Ejercicio{}
	}

	c.JSON(http.StatusOK, items)
}

// GetByID returns a single exercise
// GET /ejercicios/:id
func (ec *EjerciciosController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ejercicio, err := ec.store.GetByID(id)
	if err != nil {
		if errors.Is(err, ejercicios.ErrEjercicioNotFound) {
			respondNotFound(c, fmt.Sprintf("No se encontró el ejercicio con ID %d", id))
			return
		}
		respondInternalError(c, err, "get ejercicio")
		return
	}

	c.JSON(http.StatusOK, ejercicio)
}

// Update applies a partial update; reparenting validates the new routine
// PUT /ejercicios/:id
func (ec *EjerciciosController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		RutinaID     *uint    `json:"rutina_id"`
		Nombre       *string  `json:"nombre"`
		Dia          *string  `json:"dia"`
		Series       *int     `json:"series" binding:"omitempty,gt=0"`
		Repeticiones *int     `json:"repeticiones" binding:"omitempty,gt=0"`
		Peso         *float64 `json:"peso" binding:"omitempty,gte=0"`
		Notas        *string  `json:"notas"`
		Orden        *int     `json:"orden"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "cuerpo de la petición inválido: "+err.Error())
		return
	}

	ejercicio, err := ec.store.Update(id, ejercicios.UpdateParams{
		RutinaID:     req.RutinaID,
		Nombre:       req.Nombre,
		Dia:          req.Dia,
		Series:       req.Series,
		Repeticiones: req.Repeticiones,
		Peso:         req.Peso,
		Notas:        req.Notas,
		Orden:        req.Orden,
	})
	if err != nil {
		switch {
		case errors.Is(err, ejercicios.ErrEjercicioNotFound):
			respondNotFound(c, fmt.Sprintf("No se encontró el ejercicio con ID %d", id))
		case errors.Is(err, ejercicios.ErrRutinaNotFound):
			respondNotFound(c, fmt.Sprintf("No se encontró la rutina con ID %d. Por favor, usa un ID de rutina válido.", *req.RutinaID))
		case errors.Is(err, ejercicios.ErrDatosInvalidos):
			respondBadRequest(c, "Error de integridad de datos")
		default:
			respondInternalError(c, err, "update ejercicio")
		}
		return
	}

	c.JSON(http.StatusOK, ejercicio)
}

// Delete removes a single exercise
// DELETE /ejercicios/:id
func (ec *EjerciciosController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ec.store.Delete(id); err != nil {
		if errors.Is(err, ejercicios.ErrEjercicioNotFound) {
			respondNotFound(c, fmt.Sprintf("No se encontró el ejercicio con ID %d", id))
			return
		}
		respondInternalError(c, err, "delete ejercicio")
		return
	}

	respondMessage(c, "Ejercicio eliminado correctamente")
}
