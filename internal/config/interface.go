package config

import "context"

// Loader is the interface for a format-specific maze loader.
type Loader interface {
	// Load reads every maze file under the given paths, translates them
	// into the format-agnostic model and returns the merged result.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file suffixes this loader understands.
	Extensions() []string
}

// Declarer is implemented by loaders whose files reference other nodes by
// label and must see labels declared by files of other formats. Loading
// then happens in two passes: Declare on every loader, then Resolve with
// the union of all declared labels.
type Declarer interface {
	Declare(ctx context.Context, paths ...string) (*Declaration, error)
}

// Declaration is the result of a loader's first pass.
type Declaration struct {
	// Labels are the node labels the files declare.
	Labels []string
	// Resolve translates the files, checking child references against known.
	Resolve func(ctx context.Context, known []string) (*Model, error)
}
