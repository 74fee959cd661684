package dto

import "github.com/jhoicas/Directorio-api/pkg/pagination"

// PageLinks y PageMeta alias para referenciarlos desde las anotaciones swag.
type (
	PageLinks = pagination.Links
	PageMeta  = pagination.Meta
)
