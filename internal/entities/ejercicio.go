package entities

// Ejercicio is a single workout entry belonging to one rutina.
// Dia and Orden control grouping and sorting in the routine detail view;
// both are optional, as are the set/rep/weight figures.
type Ejercicio struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	RutinaID     uint     `gorm:"index;not null" json:"rutina_id"`
	Nombre       string   `gorm:"size:255;not null" json:"nombre"`
	Dia          *string  `gorm:"size:20" json:"dia"`
	Series       *int     `json:"series"`
	Repeticiones *int     `json:"repeticiones"`
	Peso         *float64 `json:"peso"`
	Notas        *string  `gorm:"type:text" json:"notas"`
	Orden        *int     `json:"orden"`
}

func (Ejercicio) TableName() string {
	return "ejercicios"
}
