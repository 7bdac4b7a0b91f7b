package pricingsvc

import (
	"math"

	pricingmodels "star_commerce/internal/api/pricing/models"
	"star_commerce/internal/logger"
)

const (
	// NotionalBaseAmount là số tiền gốc danh nghĩa B dùng để quy đổi cấu hình thành hệ số.
	NotionalBaseAmount = 1000.0

	// TaxRate là thuế suất cố định 6% (chưa có đường cấu hình theo tenant).
	TaxRate = 0.06

	// DefaultCoefficient là hệ số an toàn khi kết quả tính ra không hợp lệ.
	DefaultCoefficient = 1.0

	// MaxCoefficient là cận trên hợp lệ của hệ số báo giá.
	MaxCoefficient = 10.0
)

// QuotationCoefficient tính hệ số báo giá từ một cấu hình: nhân số tiền gốc
// danh nghĩa B qua các bước chiết khấu → phí dịch vụ → thuế rồi chia lại cho B.
// Kết quả làm tròn 4 chữ số thập phân, luôn trong khoảng (0, 10).
//
// Kết quả NaN/Inf/≤0/≥10 không được phép lan xuống pricing: log bất thường
// và trả về hệ số mặc định 1.0.
func QuotationCoefficient(cfg *pricingmodels.PricingConfig) float64 {
	base := float64(NotionalBaseAmount)

	// Bước 1: phí nền tảng
	platformFeeAmount := base * cfg.PlatformFeeRate

	// Bước 2: chiết khấu. includesPlatformFee quyết định phí nền tảng
	// nằm trong hay ngoài cơ sở chiết khấu.
	var discountedAmount float64
	if cfg.IncludesPlatformFee {
		discountedAmount = (base + platformFeeAmount) * cfg.DiscountRate
	} else {
		discountedAmount = base*cfg.DiscountRate + platformFeeAmount
	}

	// Bước 3: phí dịch vụ theo cơ sở trước hoặc sau chiết khấu
	var serviceFeeAmount float64
	if cfg.ServiceFeeBase == pricingmodels.ServiceFeeBaseBeforeDiscount {
		serviceFeeAmount = (base + platformFeeAmount) * cfg.ServiceFeeRate
	} else {
		serviceFeeAmount = discountedAmount * cfg.ServiceFeeRate
	}

	// Bước 4: thuế. includesTax = true nghĩa là giá đã gồm thuế, không cộng thêm.
	var taxAmount float64
	if !cfg.IncludesTax {
		if cfg.TaxCalculationBase == pricingmodels.TaxBaseIncludeServiceFee {
			taxAmount = (discountedAmount + serviceFeeAmount) * TaxRate
		} else {
			taxAmount = discountedAmount * TaxRate
		}
	}

	// Bước 5: hệ số = tổng cuối / B, làm tròn 4 chữ số thập phân
	finalAmount := discountedAmount + serviceFeeAmount + taxAmount
	coefficient := math.Round(finalAmount/base*10000) / 10000

	if math.IsNaN(coefficient) || math.IsInf(coefficient, 0) || coefficient <= 0 || coefficient >= MaxCoefficient {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"platform":    cfg.Platform,
			"configId":    cfg.ID.Hex(),
			"coefficient": coefficient,
		}).Warn("Hệ số báo giá ngoài khoảng hợp lệ, dùng hệ số mặc định")
		return DefaultCoefficient
	}

	return coefficient
}
