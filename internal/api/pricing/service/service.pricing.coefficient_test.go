// Package pricingsvc - Test hệ số báo giá: công thức từng bước và fail-safe.
package pricingsvc

import (
	"math"
	"testing"

	pricingmodels "star_commerce/internal/api/pricing/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuotationCoefficient_DiscountWithTaxOnBase(t *testing.T) {
	// B=1000, chiết khấu 0.8 → 800; thuế 6% trên 800 = 48; tổng 848 → hệ số 0.848
	cfg := &pricingmodels.PricingConfig{
		DiscountRate:       0.8,
		ServiceFeeBase:     pricingmodels.ServiceFeeBaseAfterDiscount,
		TaxCalculationBase: pricingmodels.TaxBaseOnly,
	}
	got := QuotationCoefficient(cfg)
	if !almostEqual(got, 0.848) {
		t.Errorf("hệ số = %v, mong đợi 0.848", got)
	}
}

func TestQuotationCoefficient_PlatformFeeInsideDiscountBase(t *testing.T) {
	// includesPlatformFee=true: (1000+100)*0.8 = 880
	// serviceFeeBase=beforeDiscount: (1000+100)*0.05 = 55
	// taxBase=includeServiceFee: (880+55)*0.06 = 56.1
	// tổng 991.1 → hệ số 0.9911
	cfg := &pricingmodels.PricingConfig{
		DiscountRate:        0.8,
		PlatformFeeRate:     0.1,
		IncludesPlatformFee: true,
		ServiceFeeRate:      0.05,
		ServiceFeeBase:      pricingmodels.ServiceFeeBaseBeforeDiscount,
		TaxCalculationBase:  pricingmodels.TaxBaseIncludeServiceFee,
	}
	got := QuotationCoefficient(cfg)
	if !almostEqual(got, 0.9911) {
		t.Errorf("hệ số = %v, mong đợi 0.9911", got)
	}
}

func TestQuotationCoefficient_PlatformFeeOutsideDiscountBase(t *testing.T) {
	// includesPlatformFee=false: 1000*0.8 + 100 = 900
	// serviceFeeBase=afterDiscount: 900*0.05 = 45
	// taxBase=base: 900*0.06 = 54
	// tổng 999 → hệ số 0.999
	cfg := &pricingmodels.PricingConfig{
		DiscountRate:       0.8,
		PlatformFeeRate:    0.1,
		ServiceFeeRate:     0.05,
		ServiceFeeBase:     pricingmodels.ServiceFeeBaseAfterDiscount,
		TaxCalculationBase: pricingmodels.TaxBaseOnly,
	}
	got := QuotationCoefficient(cfg)
	if !almostEqual(got, 0.999) {
		t.Errorf("hệ số = %v, mong đợi 0.999", got)
	}
}

func TestQuotationCoefficient_IncludesTaxSkipsTax(t *testing.T) {
	// includesTax=true: giá đã gồm thuế, không cộng thêm → 900/1000 = 0.9
	cfg := &pricingmodels.PricingConfig{
		DiscountRate:       0.9,
		IncludesTax:        true,
		ServiceFeeBase:     pricingmodels.ServiceFeeBaseAfterDiscount,
		TaxCalculationBase: pricingmodels.TaxBaseOnly,
	}
	got := QuotationCoefficient(cfg)
	if !almostEqual(got, 0.9) {
		t.Errorf("hệ số = %v, mong đợi 0.9", got)
	}
}

func TestQuotationCoefficient_RoundsToFourDecimals(t *testing.T) {
	// 1000*0.8333 = 833.3; thuế 6% → 883.298 → hệ số 0.883298 làm tròn 0.8833
	cfg := &pricingmodels.PricingConfig{
		DiscountRate:       0.8333,
		ServiceFeeBase:     pricingmodels.ServiceFeeBaseAfterDiscount,
		TaxCalculationBase: pricingmodels.TaxBaseOnly,
	}
	got := QuotationCoefficient(cfg)
	if !almostEqual(got, 0.8833) {
		t.Errorf("hệ số = %v, mong đợi 0.8833 (làm tròn 4 chữ số)", got)
	}
}

func TestQuotationCoefficient_OutOfRangeFallsBackToDefault(t *testing.T) {
	// Hệ số 0 (discountRate=0, không phí, không thuế) → fail-safe 1.0
	zeroCfg := &pricingmodels.PricingConfig{
		DiscountRate:   0,
		IncludesTax:    true,
		ServiceFeeBase: pricingmodels.ServiceFeeBaseAfterDiscount,
	}
	if got := QuotationCoefficient(zeroCfg); got != DefaultCoefficient {
		t.Errorf("hệ số ≤0 phải trả về mặc định %v, nhận được %v", DefaultCoefficient, got)
	}

	// Hệ số ≥10 (discountRate=20) → fail-safe 1.0
	hugeCfg := &pricingmodels.PricingConfig{
		DiscountRate:   20,
		IncludesTax:    true,
		ServiceFeeBase: pricingmodels.ServiceFeeBaseAfterDiscount,
	}
	if got := QuotationCoefficient(hugeCfg); got != DefaultCoefficient {
		t.Errorf("hệ số ≥10 phải trả về mặc định %v, nhận được %v", DefaultCoefficient, got)
	}
}

func TestQuotationCoefficient_AlwaysFiniteInRange(t *testing.T) {
	cfgs := []*pricingmodels.PricingConfig{
		{DiscountRate: 0.5, ServiceFeeBase: pricingmodels.ServiceFeeBaseAfterDiscount, TaxCalculationBase: pricingmodels.TaxBaseOnly},
		{DiscountRate: 1, PlatformFeeRate: 0.2, IncludesPlatformFee: true, ServiceFeeRate: 0.1, ServiceFeeBase: pricingmodels.ServiceFeeBaseBeforeDiscount, TaxCalculationBase: pricingmodels.TaxBaseIncludeServiceFee},
		{DiscountRate: math.NaN()},
	}
	for i, cfg := range cfgs {
		got := QuotationCoefficient(cfg)
		if math.IsNaN(got) || math.IsInf(got, 0) || got <= 0 || got >= MaxCoefficient {
			t.Errorf("config %d: hệ số %v ngoài khoảng (0, 10)", i, got)
		}
	}
}
