package postgres

import (
	"context"
	"fmt"
	"strings"
)

// DatabaseCType LC_CTYPE de la base actual; lower() depende de él para letras no ASCII.
func DatabaseCType(ctx context.Context, q Querier) (string, error) {
	var ctype string
	err := q.QueryRow(ctx, `SELECT datctype FROM pg_database WHERE datname = current_database()`).Scan(&ctype)
	if err != nil {
		return "", fmt.Errorf("leer lc_ctype: %w", err)
	}
	return ctype, nil
}

// FoldsUnicode indica si con este LC_CTYPE lower() pasa a minúsculas letras
// cirílicas. Con C o POSIX solo cambian las ASCII y la búsqueda deja de
// distinguir mayúsculas únicamente en ASCII.
func FoldsUnicode(ctype string) bool {
	switch strings.ToUpper(strings.TrimSpace(ctype)) {
	case "C", "POSIX", "":
		return false
	}
	return true
}
