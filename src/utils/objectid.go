package utils

import (
	"FoodiePal-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDFilter builds an {_id: ObjectID} filter, failing with models.ErrInvalidID
// for ids that are not valid hex ObjectIDs.
func IDFilter(id string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return bson.M{"_id": objID}, nil
}
