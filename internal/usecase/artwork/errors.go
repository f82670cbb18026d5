// Package artwork provides use cases for managing artwork entities,
// including the filtered/sorted/paginated list query and the role-gated
// create/update/delete commands with artist reference validation.
package artwork

import "errors"

// Sentinel errors for artwork use case operations.
var (
	// ErrArtworkNotFound indicates that the requested artwork was not found.
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrInvalidArtworkID indicates that the provided artwork ID is invalid.
	ErrInvalidArtworkID = errors.New("invalid artwork ID")

	// ErrArtistNotFound indicates that the referenced artist does not exist.
	// Artwork writes require a valid, pre-existing artist reference.
	ErrArtistNotFound = errors.New("artist not found")
)
