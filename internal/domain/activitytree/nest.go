package activitytree

import "github.com/jhoicas/Directorio-api/internal/domain/entity"

// ChildIndex hijos directos por id de padre, en el orden en que deben mostrarse.
type ChildIndex map[int64][]entity.Activity

// NewChildIndex indexa una lista plana de actividades por parent_id.
func NewChildIndex(activities []entity.Activity) ChildIndex {
	idx := make(ChildIndex)
	for _, a := range activities {
		if a.IsRoot() {
			continue
		}
		idx[*a.ParentID] = append(idx[*a.ParentID], a)
	}
	return idx
}

// Nest devuelve root con Children completado recursivamente desde el índice.
// Un id ya presente en la rama actual no se vuelve a expandir.
func Nest(root entity.Activity, idx ChildIndex) entity.Activity {
	return nest(root, idx, map[int64]bool{})
}

func nest(node entity.Activity, idx ChildIndex, branch map[int64]bool) entity.Activity {
	branch[node.ID] = true
	defer delete(branch, node.ID)

	node.Children = nil
	for _, child := range idx[node.ID] {
		if branch[child.ID] {
			continue
		}
		node.Children = append(node.Children, nest(child, idx, branch))
	}
	return node
}
