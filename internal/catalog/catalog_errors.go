package catalog

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	// ErrNotLoaded covers both a fetch that has not happened yet and one
	// that failed; callers see a blocking load error either way.
	ErrNotLoaded = apperror.New(http.StatusServiceUnavailable, apperror.CodeCatalogLoadError, "catalog is not available")
)
