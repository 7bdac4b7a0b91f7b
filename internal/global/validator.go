package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// dayPattern định dạng ngày hiệu lực của pricing config (YYYY-MM-DD).
var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("rate_fraction", validateRateFraction)
	_ = Validate.RegisterValidation("calendar_day", validateCalendarDay)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validateRateFraction kiểm tra tỷ lệ dạng phân số 0–1 (discountRate, serviceFeeRate...).
func validateRateFraction(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 0 && v <= 1
}

// validateCalendarDay kiểm tra chuỗi ngày YYYY-MM-DD. Chuỗi rỗng = optional, bỏ qua.
func validateCalendarDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return dayPattern.MatchString(value)
}

// validateNoXSS kiểm tra XSS cho các field text tự do (tên dự án, ghi chú adjustment)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
