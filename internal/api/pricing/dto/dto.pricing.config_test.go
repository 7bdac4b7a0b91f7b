// Package dto - Test validate và transform DTO pricing.
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pricingmodels "star_commerce/internal/api/pricing/models"
	"star_commerce/internal/global"
)

func TestPricingConfigCreateInput_Validate(t *testing.T) {
	global.InitValidator()

	cases := []struct {
		name    string
		input   PricingConfigCreateInput
		wantErr bool
	}{
		{
			name: "hợp lệ đầy đủ",
			input: PricingConfigCreateInput{
				Platform:     "douyin",
				DiscountRate: 0.8,
				ValidFrom:    "2025-06-01",
				ValidTo:      "2025-06-30",
			},
			wantErr: false,
		},
		{
			name:    "thiếu platform",
			input:   PricingConfigCreateInput{DiscountRate: 0.8},
			wantErr: true,
		},
		{
			name: "discountRate ngoài khoảng 0-1",
			input: PricingConfigCreateInput{
				Platform:     "douyin",
				DiscountRate: 1.5,
			},
			wantErr: true,
		},
		{
			name: "validFrom sai định dạng ngày",
			input: PricingConfigCreateInput{
				Platform:     "douyin",
				DiscountRate: 0.8,
				ValidFrom:    "01/06/2025",
			},
			wantErr: true,
		},
		{
			name: "serviceFeeBase ngoài enum",
			input: PricingConfigCreateInput{
				Platform:       "douyin",
				DiscountRate:   0.8,
				ServiceFeeBase: "duringDiscount",
			},
			wantErr: true,
		},
		{
			name: "config vĩnh viễn không cần ngày hiệu lực",
			input: PricingConfigCreateInput{
				Platform:     "douyin",
				DiscountRate: 0.8,
				IsPermanent:  true,
			},
			wantErr: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := global.Validate.Struct(tc.input)
			if tc.wantErr {
				assert.Error(t, err, "mong đợi lỗi validate")
			} else {
				assert.NoError(t, err, "không mong đợi lỗi validate")
			}
		})
	}
}

func TestPricingConfigCreateInput_ToModelDefaults(t *testing.T) {
	input := PricingConfigCreateInput{
		Platform:     "douyin",
		DiscountRate: 0.8,
	}

	model, err := input.ToModel()
	assert.NoError(t, err)

	// Cơ sở tính mặc định khi DTO bỏ trống
	assert.Equal(t, pricingmodels.ServiceFeeBaseAfterDiscount, model.ServiceFeeBase)
	assert.Equal(t, pricingmodels.TaxBaseOnly, model.TaxCalculationBase)
	assert.Equal(t, "douyin", model.Platform)
}

func TestPricingConfigCreateInput_ToModelKeepsExplicitBases(t *testing.T) {
	input := PricingConfigCreateInput{
		Platform:           "douyin",
		DiscountRate:       0.8,
		ServiceFeeBase:     pricingmodels.ServiceFeeBaseBeforeDiscount,
		TaxCalculationBase: pricingmodels.TaxBaseIncludeServiceFee,
	}

	model, err := input.ToModel()
	assert.NoError(t, err)
	assert.Equal(t, pricingmodels.ServiceFeeBaseBeforeDiscount, model.ServiceFeeBase)
	assert.Equal(t, pricingmodels.TaxBaseIncludeServiceFee, model.TaxCalculationBase)
}
