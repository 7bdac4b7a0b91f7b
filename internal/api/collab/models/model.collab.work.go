// Package models - Work thuộc domain collab (works).
// Dữ liệu hiệu quả nội dung đã publish, quan hệ 1:1 với collaboration,
// chỉ dùng bởi engine performance.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work lưu số liệu tương tác thô của một collaboration (works).
type Work struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CollaborationId primitive.ObjectID `json:"collaborationId" bson:"collaborationId" index:"single:1;unique"`

	Views    int64 `json:"views" bson:"views"`
	Likes    int64 `json:"likes" bson:"likes"`
	Comments int64 `json:"comments" bson:"comments"`
	Shares   int64 `json:"shares" bson:"shares"`

	ComponentImpressions int64 `json:"componentImpressions" bson:"componentImpressions"`
	ComponentClicks      int64 `json:"componentClicks" bson:"componentClicks"`

	CompletionRate   float64          `json:"completionRate" bson:"completionRate"`
	ReachByFrequency map[string]int64 `json:"reachByFrequency,omitempty" bson:"reachByFrequency,omitempty"`

	PublishedAt int64 `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"` // UnixMilli

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
