package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển chuỗi hex sang primitive.ObjectID.
// Trả về ObjectID zero nếu chuỗi không hợp lệ, caller cần validate trước bằng primitive.IsValidObjectID.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}
