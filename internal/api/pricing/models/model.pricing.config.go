// Package models - PricingConfig thuộc domain pricing (pricing_configs).
// Bảng giá khung đã đàm phán cho một nền tảng. Bất biến sau khi được
// snapshot vào project (audit-trail).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị enum của ServiceFeeBase.
const (
	ServiceFeeBaseBeforeDiscount = "beforeDiscount" // Phí dịch vụ tính trên số tiền trước chiết khấu
	ServiceFeeBaseAfterDiscount  = "afterDiscount"  // Phí dịch vụ tính trên số tiền sau chiết khấu
)

// Các giá trị enum của TaxCalculationBase.
const (
	TaxBaseOnly              = "base"              // Thuế tính trên số tiền sau chiết khấu
	TaxBaseIncludeServiceFee = "includeServiceFee" // Thuế tính trên số tiền sau chiết khấu + phí dịch vụ
)

// PricingConfig lưu cấu hình báo giá khung theo nền tảng (pricing_configs).
// Tại một ngày bất kỳ, mỗi nền tảng có tối đa một cấu hình hiệu lực:
// cấu hình có khoảng ngày [validFrom, validTo] chứa ngày đó được ưu tiên,
// nếu không có thì rơi về cấu hình isPermanent đầu tiên.
type PricingConfig struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Platform string `json:"platform" bson:"platform" index:"single:1,compound:pricing_config_platform_valid_from"`
	Name     string `json:"name,omitempty" bson:"name,omitempty"`

	DiscountRate        float64 `json:"discountRate" bson:"discountRate"`               // Hệ số chiết khấu 0-1 nhân vào số tiền gốc
	PlatformFeeRate     float64 `json:"platformFeeRate" bson:"platformFeeRate"`         // Tỷ lệ phí nền tảng
	IncludesPlatformFee bool    `json:"includesPlatformFee" bson:"includesPlatformFee"` // Phí nền tảng cộng trước hay sau chiết khấu
	ServiceFeeRate      float64 `json:"serviceFeeRate" bson:"serviceFeeRate"`           // Tỷ lệ phí dịch vụ
	ServiceFeeBase      string  `json:"serviceFeeBase" bson:"serviceFeeBase"`           // beforeDiscount | afterDiscount
	IncludesTax         bool    `json:"includesTax" bson:"includesTax"`                 // true = giá đã bao gồm thuế, không cộng thêm
	TaxCalculationBase  string  `json:"taxCalculationBase" bson:"taxCalculationBase"`   // base | includeServiceFee

	// Khoảng hiệu lực theo ngày (chuỗi YYYY-MM-DD, inclusive) hoặc cấu hình vĩnh viễn.
	ValidFrom   string `json:"validFrom,omitempty" bson:"validFrom,omitempty" index:"compound:pricing_config_platform_valid_from"`
	ValidTo     string `json:"validTo,omitempty" bson:"validTo,omitempty"`
	IsPermanent bool   `json:"isPermanent" bson:"isPermanent"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// HasDateRange cho biết cấu hình có khoảng hiệu lực theo ngày hay không.
func (p *PricingConfig) HasDateRange() bool {
	return p.ValidFrom != "" && p.ValidTo != ""
}

// CoversDay kiểm tra ngày (YYYY-MM-DD) nằm trong khoảng hiệu lực.
// So sánh chuỗi đúng với định dạng YYYY-MM-DD.
func (p *PricingConfig) CoversDay(day string) bool {
	return p.HasDateRange() && p.ValidFrom <= day && day <= p.ValidTo
}
