// Package version serves the stored build/version string.
package version

import "context"

type Repository interface {
	// Get returns the version string stored under the given document id.
	Get(ctx context.Context, id string) (string, error)
}
