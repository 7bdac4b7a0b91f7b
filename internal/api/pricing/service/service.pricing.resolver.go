// Package pricingsvc - Service domain pricing: resolve cấu hình hiệu lực và tính hệ số báo giá.
package pricingsvc

import (
	"time"

	pricingmodels "star_commerce/internal/api/pricing/models"
)

// DayLayout là định dạng ngày dùng để so khớp khoảng hiệu lực.
const DayLayout = "2006-01-02"

// ResolveEffectiveConfig chọn cấu hình báo giá hiệu lực cho một ngày.
//
// Quy tắc ưu tiên:
//  1. Cấu hình có khoảng [validFrom, validTo] chứa ngày (inclusive) thắng
//     cấu hình vĩnh viễn. Nhiều khoảng trùng nhau: lấy cấu hình đầu tiên
//     theo thứ tự đầu vào (caller chịu trách nhiệm giữ tối đa một khoảng
//     trùng cho mỗi nền tảng).
//  2. Không có khoảng nào khớp: rơi về cấu hình isPermanent đầu tiên.
//  3. Không có gì khớp: trả về nil, nền tảng được coi là "project-priced"
//     (không áp giá khung).
func ResolveEffectiveConfig(configs []pricingmodels.PricingConfig, onDate time.Time) *pricingmodels.PricingConfig {
	day := onDate.Format(DayLayout)

	for i := range configs {
		if configs[i].CoversDay(day) {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].IsPermanent {
			return &configs[i]
		}
	}

	return nil
}
