package amisschema

import (
	internalLoader "github.com/goliatone/go-amisschema/internal/loader"
	"github.com/goliatone/go-amisschema/pkg/schema"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return internalLoader.New(schema.NewLoaderOptions(options...))
}
