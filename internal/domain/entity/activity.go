package entity

import "time"

// Activity nodo del árbol de actividades. ParentID nil indica una categoría raíz.
type Activity struct {
	ID        int64
	Name      string
	ParentID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Children subárbol cargado para la respuesta; vacío en las hojas.
	Children []Activity
}

// IsRoot indica si la actividad no tiene padre.
func (a Activity) IsRoot() bool {
	return a.ParentID == nil
}
