package activitytree

import (
	"context"
	"fmt"
	"sort"
)

// ChildLister devuelve los ids hijos directos de un conjunto de actividades.
type ChildLister interface {
	ChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
}

// Resolver calcula la clausura descendente de actividades (servicio de dominio).
type Resolver struct {
	children ChildLister
}

// NewResolver construye el resolver sobre el puerto de lectura de actividades.
func NewResolver(children ChildLister) *Resolver {
	return &Resolver{children: children}
}

// Closure devuelve los ids de las raíces y de todos sus descendientes, ordenados.
// Recorre el árbol por niveles (BFS) con un conjunto de visitados: cada nivel es
// una sola consulta y un ciclo en los datos no provoca un bucle infinito.
func (r *Resolver) Closure(ctx context.Context, roots ...int64) ([]int64, error) {
	visited := make(map[int64]struct{}, len(roots))
	frontier := make([]int64, 0, len(roots))
	for _, id := range roots {
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		frontier = append(frontier, id)
	}

	for depth := 1; len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		children, err := r.children.ChildIDs(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("hijos de actividades (nivel %d): %w", depth, err)
		}
		var next []int64
		for _, id := range children {
			if _, ok := visited[id]; ok {
				continue
			}
			visited[id] = struct{}{}
			next = append(next, id)
		}
		frontier = next
	}

	ids := make([]int64, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
