package postgres

import (
	"strconv"
	"strings"
)

// likeEscaper escapa los comodines de LIKE en texto del usuario (ESCAPE '\').
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón LIKE "contiene" para un texto ya normalizado.
func containsPattern(folded string) string {
	return "%" + likeEscaper.Replace(folded) + "%"
}

// whereBuilder arma cláusulas WHERE con placeholders $n numerados en orden.
type whereBuilder struct {
	conds []string
	args  []any
}

// add agrega una condición; cada "?" se reemplaza por el placeholder del argumento.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", w.placeholder()))
}

// bind agrega un argumento fuera del WHERE (LIMIT/OFFSET) y devuelve su placeholder.
func (w *whereBuilder) bind(arg any) string {
	w.args = append(w.args, arg)
	return w.placeholder()
}

func (w *whereBuilder) placeholder() string {
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
