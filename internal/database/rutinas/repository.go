// Package rutinas provides database operations for workout routine management.
//
// # Usage
//
//	repo := rutinas.NewRepository(db)
//	rutina, err := repo.Create("Fuerza", nil)
package rutinas

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/svidal/rutinas-api/internal/entities"
)

var (
	ErrRutinaNotFound = errors.New("rutina not found")
	ErrNombreEnUso    = errors.New("rutina name already in use")
)

// DiaSinAsignar groups ejercicios that carry no day label in a routine detail.
const DiaSinAsignar = "Sin día asignado"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination describes the page slice returned by List.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// UpdateParams lists the fields a partial update may change.
// Nil fields are left untouched.
type UpdateParams struct {
	Nombre      *string
	Descripcion *string
}

// ResumenEjercicio is the per-day exercise summary used in routine details.
type ResumenEjercicio struct {
	ID           uint     `json:"id"`
	Nombre       string   `json:"nombre"`
	Series       *int     `json:"series"`
	Repeticiones *int     `json:"repeticiones"`
	Peso         *float64 `json:"peso"`
	Notas        *string  `json:"notas"`
	Orden        *int     `json:"orden"`
}

// Detail is a routine together with its ejercicios, both grouped by day
// and as a flat (dia, orden)-ordered list.
type Detail struct {
	ID               uint                          `json:"id"`
	Nombre           string                        `json:"nombre"`
	Descripcion      *string                       `json:"descripcion"`
	FechaCreacion    *time.Time                    `json:"fecha_creacion"`
	EjerciciosPorDia map[string][]ResumenEjercicio `json:"ejercicios_por_dia"`
	Ejercicios       []entities.Ejercicio          `json:"ejercicios"`
}

// Repository handles all rutina database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new rutinas repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new rutina with a server-set creation timestamp.
// Returns ErrNombreEnUso when the name is already taken; two concurrent
// creations of the same name are settled by the unique index, the loser
// gets the same error.
func (r *Repository) Create(nombre string, descripcion *string) (*entities.Rutina, error) {
	var existing entities.Rutina
	err := r.db.Where("nombre = ?", nombre).First(&existing).Error
	if err == nil {
		return nil, ErrNombreEnUso
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing rutina: %w", err)
	}

	now := time.Now()
	rutina := &entities.Rutina{
		Nombre:        nombre,
		Descripcion:   descripcion,
		FechaCreacion: &now,
	}
	if err := r.db.Create(rutina).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNombreEnUso
		}
		return nil, fmt.Errorf("failed to create rutina: %w", err)
	}
	return rutina, nil
}

// List returns one page of rutinas plus pagination metadata.
// page below 1 is treated as 1; limit outside [1,100] falls back to 10.
func (r *Repository) List(page, limit int) ([]entities.Rutina, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.db.Model(&entities.Rutina{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var rutinas []entities.Rutina
	err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&rutinas).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagination := Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
	return rutinas, pagination, nil
}

// Search returns all rutinas whose name contains the given substring,
// case-insensitively.
func (r *Repository) Search(nombre string) ([]entities.Rutina, error) {
	var rutinas []entities.Rutina
	pattern := "%" + nombre + "%"
	err := r.db.Where("LOWER(nombre) LIKE LOWER(?)", pattern).Find(&rutinas).Error
	return rutinas, err
}

// GetByID retrieves a single rutina.
func (r *Repository) GetByID(id uint) (*entities.Rutina, error) {
	var rutina entities.Rutina
	err := r.db.First(&rutina, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRutinaNotFound
		}
		return nil, err
	}
	return &rutina, nil
}

// Update applies the supplied fields to an existing rutina. A name change
// fails with ErrNombreEnUso when another rutina already owns the name.
func (r *Repository) Update(id uint, params UpdateParams) (*entities.Rutina, error) {
	var rutina entities.Rutina

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rutina, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRutinaNotFound
			}
			return err
		}

		if params.Nombre != nil {
			var other entities.Rutina
			err := tx.Where("nombre = ? AND id <> ?", *params.Nombre, id).First(&other).Error
			if err == nil {
				return ErrNombreEnUso
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check rutina name: %w", err)
			}
			rutina.Nombre = *params.Nombre
		}
		if params.Descripcion != nil {
			rutina.Descripcion = params.Descripcion
		}

		if err := tx.Save(&rutina).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrNombreEnUso
			}
			return fmt.Errorf("failed to update rutina: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rutina, nil
}

// Delete removes a rutina and all its ejercicios in one transaction.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rutina entities.Rutina
		if err := tx.First(&rutina, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRutinaNotFound
			}
			return err
		}

		// Explicit child delete keeps the cascade independent of driver
		// pragma support
		if err := tx.Where("rutina_id = ?", id).Delete(&entities.Ejercicio{}).Error; err != nil {
			return fmt.Errorf("failed to delete ejercicios for rutina %d: %w", id, err)
		}
		if err := tx.Delete(&rutina).Error; err != nil {
			return fmt.Errorf("failed to delete rutina %d: %w", id, err)
		}
		return nil
	})
}

// GetDetail loads a rutina with its ejercicios ordered by (dia, orden)
// ascending, grouped per day. Ejercicios without a day land under
// DiaSinAsignar.
func (r *Repository) GetDetail(id uint) (*Detail, error) {
	rutina, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	var ejercicios []entities.Ejercicio
	err = r.db.Where("rutina_id = ?", id).
		Order("dia ASC, orden ASC").
		Find(&ejercicios).Error
	if err != nil {
		return nil, err
	}

	return &Detail{
		ID:               rutina.ID,
		Nombre:           rutina.Nombre,
		Descripcion:      rutina.Descripcion,
		FechaCreacion:    rutina.FechaCreacion,
		EjerciciosPorDia: groupByDia(ejercicios),
		Ejercicios:       ejercicios,
	}, nil
}

func groupByDia(ejercicios []entities.Ejercicio) map[string][]ResumenEjercicio {
	grouped := make(map[string][]ResumenEjercicio)
	for _, e := range ejercicios {
		dia := DiaSinAsignar
		if e.Dia != nil && *e.Dia != "" {
			dia = *e.Dia
		}
		grouped[dia] = append(grouped[dia], ResumenEjercicio{
			ID:           e.ID,
			Nombre:       e.Nombre,
			Series:       e.Series,
			Repeticiones: e.Repeticiones,
			Peso:         e.Peso,
			Notas:        e.Notas,
			Orden:        e.Orden,
		})
	}
	return grouped
}
