package utility

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quimica_commerce/internal/common"
)

// ToMap converts a struct to a map honoring its bson tags.
func ToMap(input interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Contains reports whether slice contains item.
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// String2ObjectID converts a hex string to a MongoDB ObjectID.
func String2ObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"Invalid ID format",
			common.StatusBadRequest,
			map[string]interface{}{"id": id},
		)
	}
	return objectID, nil
}
