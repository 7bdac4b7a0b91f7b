// Package models - Project thuộc domain project (projects).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	pricingmodels "star_commerce/internal/api/pricing/models"
)

// Các giá trị trạng thái của project.
const (
	ProjectStatusActive = "active" // Đang chạy
	ProjectStatusClosed = "closed" // Đã quyết toán, chỉ tin rebate thực tế đã xác nhận
)

// Các giá trị chiều thời gian khi nhóm trend tháng.
const (
	TimeDimensionFinancial = "financial" // Nhóm theo tháng tài chính của project (M1..M12)
	TimeDimensionCalendar  = "calendar"  // Nhóm theo tháng dương lịch của orderDate
)

// Adjustment là một bút toán điều chỉnh thủ công trên project.
// Amount dương = thu nhập thêm, âm = chi phí thêm.
type Adjustment struct {
	Amount float64 `json:"amount" bson:"amount"`
	Note   string  `json:"note,omitempty" bson:"note,omitempty"`
	At     int64   `json:"at" bson:"at"` // UnixMilli thời điểm ghi bút toán
}

// PricingSnapshot là cấu hình báo giá đã resolve cho một nền tảng
// tại thời điểm tạo project, kèm hệ số đã tính.
type PricingSnapshot struct {
	Config        *pricingmodels.PricingConfig `json:"config" bson:"config"` // nil = nền tảng project-priced
	Coefficient   float64                      `json:"coefficient" bson:"coefficient"`
	ProjectPriced bool                         `json:"projectPriced" bson:"projectPriced"`
	CapturedAt    int64                        `json:"capturedAt" bson:"capturedAt"`
}

// Project lưu một dự án thương mại (projects).
//
// PlatformPricingSnapshots được ghi đúng một lần khi tạo project và không
// bao giờ được tính lại, kể cả khi cấu hình báo giá gốc thay đổi sau đó
// (audit-trail). Đường update không được đụng vào field này.
type Project struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name   string `json:"name" bson:"name"`
	Type   string `json:"type,omitempty" bson:"type,omitempty"` // Loại dự án, dùng cho breakdown báo cáo
	Status string `json:"status" bson:"status"`

	Discount       float64  `json:"discount" bson:"discount"` // 0-1, áp đều lên income của mọi collaboration
	BenchmarkCPM   *float64 `json:"benchmarkCPM,omitempty" bson:"benchmarkCPM,omitempty"`
	Budget         float64  `json:"budget" bson:"budget"`
	FinancialMonth string   `json:"financialMonth,omitempty" bson:"financialMonth,omitempty"` // Tháng tài chính dạng M1..M12

	CapitalRateId primitive.ObjectID `json:"capitalRateId,omitempty" bson:"capitalRateId,omitempty"`

	Adjustments              []Adjustment               `json:"adjustments" bson:"adjustments"`
	PlatformPricingSnapshots map[string]PricingSnapshot `json:"platformPricingSnapshots,omitempty" bson:"platformPricingSnapshots,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsClosed cho biết project đã quyết toán chưa.
func (p *Project) IsClosed() bool {
	return p.Status == ProjectStatusClosed
}
