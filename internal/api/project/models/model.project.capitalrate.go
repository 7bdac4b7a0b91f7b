// Package models - CapitalRate thuộc domain project (capital_rates).
// Bảng tra lãi suất vốn theo tháng cho chi phí chiếm dụng vốn.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CapitalRate lưu một mức lãi suất vốn (capital_rates).
type CapitalRate struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name               string  `json:"name" bson:"name" index:"single:1;unique"`
	MonthlyRatePercent float64 `json:"monthlyRatePercent" bson:"monthlyRatePercent"` // %/tháng, ví dụ 0.7

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
