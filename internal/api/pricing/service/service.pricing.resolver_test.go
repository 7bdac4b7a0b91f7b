// Package pricingsvc - Test resolve cấu hình báo giá hiệu lực theo ngày.
package pricingsvc

import (
	"testing"
	"time"

	pricingmodels "star_commerce/internal/api/pricing/models"
)

func day(s string) time.Time {
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolveEffectiveConfig_DateRangedOutranksPermanent(t *testing.T) {
	configs := []pricingmodels.PricingConfig{
		{Name: "permanent", IsPermanent: true},
		{Name: "june", ValidFrom: "2025-06-01", ValidTo: "2025-06-30"},
	}

	got := ResolveEffectiveConfig(configs, day("2025-06-15"))
	if got == nil {
		t.Fatal("ResolveEffectiveConfig trả về nil, mong đợi config 'june'")
	}
	if got.Name != "june" {
		t.Errorf("ngày trong khoảng phải chọn config có khoảng ngày, nhận được %q", got.Name)
	}
}

func TestResolveEffectiveConfig_OutsideRangeFallsBackToPermanent(t *testing.T) {
	configs := []pricingmodels.PricingConfig{
		{Name: "permanent", IsPermanent: true},
		{Name: "june", ValidFrom: "2025-06-01", ValidTo: "2025-06-30"},
	}

	got := ResolveEffectiveConfig(configs, day("2025-01-01"))
	if got == nil {
		t.Fatal("ResolveEffectiveConfig trả về nil, mong đợi config vĩnh viễn")
	}
	if got.Name != "permanent" {
		t.Errorf("ngoài khoảng phải rơi về config vĩnh viễn, nhận được %q", got.Name)
	}
}

func TestResolveEffectiveConfig_RangeIsInclusive(t *testing.T) {
	configs := []pricingmodels.PricingConfig{
		{Name: "june", ValidFrom: "2025-06-01", ValidTo: "2025-06-30"},
	}

	for _, d := range []string{"2025-06-01", "2025-06-30"} {
		if got := ResolveEffectiveConfig(configs, day(d)); got == nil || got.Name != "june" {
			t.Errorf("ngày biên %s phải nằm trong khoảng hiệu lực", d)
		}
	}
	if got := ResolveEffectiveConfig(configs, day("2025-05-31")); got != nil {
		t.Error("ngày trước validFrom không được khớp")
	}
	if got := ResolveEffectiveConfig(configs, day("2025-07-01")); got != nil {
		t.Error("ngày sau validTo không được khớp")
	}
}

func TestResolveEffectiveConfig_OverlappingRangesFirstWins(t *testing.T) {
	configs := []pricingmodels.PricingConfig{
		{Name: "first", ValidFrom: "2025-06-01", ValidTo: "2025-06-30"},
		{Name: "second", ValidFrom: "2025-06-10", ValidTo: "2025-07-10"},
	}

	got := ResolveEffectiveConfig(configs, day("2025-06-15"))
	if got == nil || got.Name != "first" {
		t.Errorf("khoảng trùng nhau phải lấy config đầu tiên theo thứ tự đầu vào, nhận được %v", got)
	}
}

func TestResolveEffectiveConfig_NoMatchReturnsNil(t *testing.T) {
	configs := []pricingmodels.PricingConfig{
		{Name: "june", ValidFrom: "2025-06-01", ValidTo: "2025-06-30"},
	}

	if got := ResolveEffectiveConfig(configs, day("2025-01-01")); got != nil {
		t.Errorf("không có config nào khớp phải trả về nil (project-priced), nhận được %q", got.Name)
	}
	if got := ResolveEffectiveConfig(nil, day("2025-01-01")); got != nil {
		t.Error("danh sách config rỗng phải trả về nil")
	}
}
