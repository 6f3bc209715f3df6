// Package ejercicios provides database operations for exercise management.
//
// Every ejercicio belongs to exactly one rutina; creation and reparenting
// verify the parent exists before writing.
package ejercicios

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/svidal/rutinas-api/internal/entities"
)

var (
	ErrEjercicioNotFound = errors.New("ejercicio not found")
	ErrRutinaNotFound    = errors.New("rutina not found")
	ErrDatosInvalidos    = errors.New("data integrity violation")
)

// CreateParams carries the fields of a new ejercicio. Optional fields stay
// nil when the client omits them.
type CreateParams struct {
	RutinaID     uint
	Nombre       string
	Dia          *string
	Series       *int
	Repeticiones *int
	Peso         *float64
	Notas        *string
	Orden        *int
}

// UpdateParams lists the fields a partial update may change.
// Nil fields are left untouched.
type UpdateParams struct {
	RutinaID     *uint
	Nombre       *string
	Dia          *string
	Series       *int
	Repeticiones *int
	Peso         *float64
	Notas        *string
	Orden        *int
}

// Repository handles all ejercicio database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ejercicios repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new ejercicio after verifying its parent rutina exists.
// Constraint violations surface as ErrDatosInvalidos with nothing written.
func (r *Repository) Create(params CreateParams) (*entities.Ejercicio, error) {
	ejercicio := &entities.Ejercicio{
		RutinaID:     params.RutinaID,
		Nombre:       params.Nombre,
		Dia:          params.Dia,
		Series:       params.Series,
		Repeticiones: params.Repeticiones,
		Peso:         params.Peso,
		Notas:        params.Notas,
		Orden:        params.Orden,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := rutinaExists(tx, params.RutinaID); err != nil {
			return err
		}
		if err := tx.Create(ejercicio).Error; err != nil {
			if isIntegrityError(err) {
				return ErrDatosInvalidos
			}
			return fmt.Errorf("failed to create ejercicio: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ejercicio, nil
}

// List returns all ejercicios across all rutinas.
func (r *Repository) List() ([]entities.Ejercicio, error) {
	var ejercicios []entities.Ejercicio
	err := r.db.Find(&ejercicios).Error
	return ejercicios, err
}

// GetByID retrieves a single ejercicio.
func (r *Repository) GetByID(id uint) (*entities.Ejercicio, error) {
	var ejercicio entities.Ejercicio
	err := r.db.First(&ejercicio, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEjercicioNotFound
		}
		return nil, err
	}
	return &ejercicio, nil
}

// Update applies the supplied fields to an existing ejercicio. Reparenting
// to a missing rutina fails with ErrRutinaNotFound.
func (r *Repository) Update(id uint, params UpdateParams) (*entities.Ejercicio, error) {
	var ejercicio entities.Ejercicio

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ejercicio, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEjercicioNotFound
			}
			return err
		}

		if params.RutinaID != nil {
			if err := rutinaExists(tx, *params.RutinaID); err != nil {
				return err
			}
			ejercicio.RutinaID = *params.RutinaID
		}
		if params.Nombre != nil {
			ejercicio.Nombre = *params.Nombre
		}
		if params.Dia != nil {
			ejercicio.Dia = params.Dia
		}
		if params.Series != nil {
			ejercicio.Series = params.Series
		}
		if params.Repeticiones != nil {
			ejercicio.Repeticiones = params.Repeticiones
		}
		if params.Peso != nil {
			ejercicio.Peso = params.Peso
		}
		if params.Notas != nil {
			ejercicio.Notas = params.Notas
		}
		if params.Orden != nil {
			ejercicio.Orden = params.Orden
		}

		if err := tx.Save(&ejercicio).Error; err != nil {
			if isIntegrityError(err) {
				return ErrDatosInvalidos
			}
			return fmt.Errorf("failed to update ejercicio: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ejercicio, nil
}

// Delete removes a single ejercicio. The parent rutina is unaffected.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ejercicio entities.Ejercicio
		if err := tx.First(&ejercicio, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEjercicioNotFound
			}
			return err
		}
		return tx.Delete(&ejercicio).Error
	})
}

func rutinaExists(tx *gorm.DB, rutinaID uint) error {
	var rutina entities.Rutina
	if err := tx.First(&rutina, rutinaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRutinaNotFound
		}
		return err
	}
	return nil
}

func isIntegrityError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}
