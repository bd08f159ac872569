package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseID decodes a hex document identifier from a request path or a
// token claim.
func ParseID(id string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(id)
}
