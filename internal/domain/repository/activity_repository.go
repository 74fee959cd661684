package repository

import "context"

// ActivityRepository define el puerto de lectura del árbol de actividades.
type ActivityRepository interface {
	// ChildIDs ids de las actividades cuyo parent_id está en parentIDs.
	ChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
	// IDsByName ids de las actividades cuyo nombre contiene el texto ya normalizado
	// con domain.FoldSearch. Texto vacío devuelve todas.
	IDsByName(ctx context.Context, folded string) ([]int64, error)
}
