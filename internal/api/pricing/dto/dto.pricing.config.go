// Package dto - DTO cho domain pricing.
package dto

import (
	pricingmodels "star_commerce/internal/api/pricing/models"
)

// PricingConfigCreateInput dữ liệu tạo cấu hình báo giá mới.
type PricingConfigCreateInput struct {
	Platform            string  `json:"platform" validate:"required"`
	Name                string  `json:"name,omitempty"`
	DiscountRate        float64 `json:"discountRate" validate:"rate_fraction"`
	PlatformFeeRate     float64 `json:"platformFeeRate" validate:"rate_fraction"`
	IncludesPlatformFee bool    `json:"includesPlatformFee"`
	ServiceFeeRate      float64 `json:"serviceFeeRate" validate:"rate_fraction"`
	ServiceFeeBase      string  `json:"serviceFeeBase" validate:"omitempty,oneof=beforeDiscount afterDiscount"`
	IncludesTax         bool    `json:"includesTax"`
	TaxCalculationBase  string  `json:"taxCalculationBase" validate:"omitempty,oneof=base includeServiceFee"`
	ValidFrom           string  `json:"validFrom,omitempty" validate:"calendar_day"`
	ValidTo             string  `json:"validTo,omitempty" validate:"calendar_day"`
	IsPermanent         bool    `json:"isPermanent"`
}

// ToModel transform DTO sang model PricingConfig.
func (in PricingConfigCreateInput) ToModel() (pricingmodels.PricingConfig, error) {
	serviceFeeBase := in.ServiceFeeBase
	if serviceFeeBase == "" {
		serviceFeeBase = pricingmodels.ServiceFeeBaseAfterDiscount
	}
	taxBase := in.TaxCalculationBase
	if taxBase == "" {
		taxBase = pricingmodels.TaxBaseOnly
	}
	return pricingmodels.PricingConfig{
		Platform:            in.Platform,
		Name:                in.Name,
		DiscountRate:        in.DiscountRate,
		PlatformFeeRate:     in.PlatformFeeRate,
		IncludesPlatformFee: in.IncludesPlatformFee,
		ServiceFeeRate:      in.ServiceFeeRate,
		ServiceFeeBase:      serviceFeeBase,
		IncludesTax:         in.IncludesTax,
		TaxCalculationBase:  taxBase,
		ValidFrom:           in.ValidFrom,
		ValidTo:             in.ValidTo,
		IsPermanent:         in.IsPermanent,
	}, nil
}

// PricingConfigUpdateInput dữ liệu cập nhật cấu hình báo giá (partial update).
type PricingConfigUpdateInput struct {
	Name                string  `json:"name,omitempty"`
	DiscountRate        float64 `json:"discountRate,omitempty" validate:"omitempty,rate_fraction"`
	PlatformFeeRate     float64 `json:"platformFeeRate,omitempty" validate:"omitempty,rate_fraction"`
	IncludesPlatformFee bool    `json:"includesPlatformFee,omitempty"`
	ServiceFeeRate      float64 `json:"serviceFeeRate,omitempty" validate:"omitempty,rate_fraction"`
	ServiceFeeBase      string  `json:"serviceFeeBase,omitempty" validate:"omitempty,oneof=beforeDiscount afterDiscount"`
	IncludesTax         bool    `json:"includesTax,omitempty"`
	TaxCalculationBase  string  `json:"taxCalculationBase,omitempty" validate:"omitempty,oneof=base includeServiceFee"`
	ValidFrom           string  `json:"validFrom,omitempty" validate:"calendar_day"`
	ValidTo             string  `json:"validTo,omitempty" validate:"calendar_day"`
	IsPermanent         bool    `json:"isPermanent,omitempty"`
}

// ToModel transform DTO sang model PricingConfig (chỉ các field có giá trị).
func (in PricingConfigUpdateInput) ToModel() (pricingmodels.PricingConfig, error) {
	return pricingmodels.PricingConfig{
		Name:                in.Name,
		DiscountRate:        in.DiscountRate,
		PlatformFeeRate:     in.PlatformFeeRate,
		IncludesPlatformFee: in.IncludesPlatformFee,
		ServiceFeeRate:      in.ServiceFeeRate,
		ServiceFeeBase:      in.ServiceFeeBase,
		IncludesTax:         in.IncludesTax,
		TaxCalculationBase:  in.TaxCalculationBase,
		ValidFrom:           in.ValidFrom,
		ValidTo:             in.ValidTo,
		IsPermanent:         in.IsPermanent,
	}, nil
}

// ResolvedPricingResponse trả về cấu hình hiệu lực cùng hệ số báo giá,
// đúng shape mà caller lưu vào platformPricingSnapshots của project.
type ResolvedPricingResponse struct {
	Platform      string                       `json:"platform"`
	Date          string                       `json:"date"`
	Config        *pricingmodels.PricingConfig `json:"config"`        // nil = nền tảng "project-priced", không có giá khung
	Coefficient   float64                      `json:"coefficient"`   // 1.0 khi không có config
	ProjectPriced bool                         `json:"projectPriced"` // true khi không resolve được config nào
}
