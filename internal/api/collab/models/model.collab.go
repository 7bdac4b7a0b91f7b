// Package models - Collaboration thuộc domain collab (collaborations).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái collaboration. Giá trị nghiệp vụ gốc tiếng Trung được giữ
// nguyên vì dữ liệu upstream lưu đúng các chuỗi này.
const (
	CollabStatusPending   = "待定"    // Đang đàm phán, chưa chốt
	CollabStatusScheduled = "客户已定档" // Khách đã chốt lịch
	CollabStatusPublished = "视频已发布" // Video đã đăng
)

// Loại đơn hợp tác.
const (
	OrderTypeOriginal = "original" // Đơn gốc: chi phí trả đủ, rebate nhận đủ theo %
	OrderTypeAdjusted = "adjusted" // Đơn điều chỉnh: rebate trên 20% bị cap ở phía chi phí
)

// Collaboration lưu một lần hợp tác với talent trong một dự án (collaborations).
type Collaboration struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProjectId  primitive.ObjectID `json:"projectId" bson:"projectId" index:"single:1,compound:collaboration_project_status"`
	TalentName string             `json:"talentName" bson:"talentName" index:"single:1,compound:collaboration_talent_order_date"`
	Platform   string             `json:"platform,omitempty" bson:"platform,omitempty"`

	Amount       float64  `json:"amount" bson:"amount"`                           // Số tiền hợp đồng danh nghĩa
	Rebate       float64  `json:"rebate" bson:"rebate"`                           // % rebate báo giá
	ActualRebate *float64 `json:"actualRebate,omitempty" bson:"actualRebate,omitempty"` // Rebate thực nhận sau quyết toán, ghi đè số tính toán

	OrderType string `json:"orderType" bson:"orderType"` // original | adjusted
	Status    string `json:"status" bson:"status" index:"compound:collaboration_project_status"`

	OrderDate   int64  `json:"orderDate,omitempty" bson:"orderDate,omitempty" index:"compound:collaboration_talent_order_date"` // UnixMilli, 0 = chưa có
	PaymentDate *int64 `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`                                              // UnixMilli, nil = chưa thu hồi vốn

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsAggregatable cho biết collaboration có đủ điều kiện vào aggregation
// tài chính không (validity gate: chỉ đã chốt lịch hoặc đã đăng).
func (c *Collaboration) IsAggregatable() bool {
	return c.Status == CollabStatusScheduled || c.Status == CollabStatusPublished
}

// IsPublished cho biết video đã đăng chưa (điều kiện vào overall performance).
func (c *Collaboration) IsPublished() bool {
	return c.Status == CollabStatusPublished
}
