// Package pathutil extracts and validates identifiers from URL paths.
package pathutil

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path segment is not a valid object id.
var ErrInvalidID = errors.New("invalid id")

// ObjectID extracts the named path wildcard and parses it as a 24-hex
// object id. Malformed ids are a client error, reported before any
// repository access.
func ObjectID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(r.PathValue(name))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
