package entities

import "time"

// Rutina is a named workout routine owning zero or more ejercicios.
// Deleting a rutina removes its ejercicios with it.
type Rutina struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Nombre        string      `gorm:"uniqueIndex;size:255;not null" json:"nombre"`
	Descripcion   *string     `gorm:"type:text" json:"descripcion"`
	FechaCreacion *time.Time  `json:"fecha_creacion"`
	Ejercicios    []Ejercicio `gorm:"foreignKey:RutinaID;constraint:OnDelete:CASCADE" json:"ejercicios,omitempty"`
}

func (Rutina) TableName() string {
	return "rutinas"
}
