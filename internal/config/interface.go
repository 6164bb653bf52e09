package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific study loader.
type Loader interface {
	// Load reads a study file, translates it into the format-agnostic
	// model, and returns a matching Decoder for its analysis options.
	Load(ctx context.Context, path string) (*Study, Decoder, error)
}

// Decoder binds an analysis block's raw options body to the Go struct the
// analysis kind declares, applying the format's own type conversions.
type Decoder interface {
	DecodeOptions(body hcl.Body, target any) error
}
