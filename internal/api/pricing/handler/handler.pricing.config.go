// Package pricinghdl - Handler cấu hình báo giá.
package pricinghdl

import (
	"fmt"
	"time"

	basehdl "star_commerce/internal/api/base/handler"
	pricingdto "star_commerce/internal/api/pricing/dto"
	pricingmodels "star_commerce/internal/api/pricing/models"
	pricingsvc "star_commerce/internal/api/pricing/service"
	"star_commerce/internal/common"
	"star_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingConfigHandler xử lý CRUD cấu hình báo giá + resolve hiệu lực + hệ số.
type PricingConfigHandler struct {
	*basehdl.BaseHandler[pricingmodels.PricingConfig, pricingdto.PricingConfigCreateInput, pricingdto.PricingConfigUpdateInput]
	ConfigService *pricingsvc.PricingConfigService
}

// NewPricingConfigHandler tạo PricingConfigHandler mới.
func NewPricingConfigHandler() (*PricingConfigHandler, error) {
	svc, err := pricingsvc.NewPricingConfigService()
	if err != nil {
		return nil, fmt.Errorf("tạo PricingConfigService: %w", err)
	}
	return &PricingConfigHandler{
		BaseHandler:   basehdl.NewBaseHandler[pricingmodels.PricingConfig, pricingdto.PricingConfigCreateInput, pricingdto.PricingConfigUpdateInput](svc),
		ConfigService: svc,
	}, nil
}

// HandleResolveEffective xử lý GET /pricing-configs/effective.
// Query: platform (bắt buộc), date (YYYY-MM-DD, mặc định hôm nay).
// Trả về cấu hình hiệu lực cùng hệ số, đúng shape caller lưu vào project snapshot.
func (h *PricingConfigHandler) HandleResolveEffective(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		platform := c.Query("platform")
		if platform == "" {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số platform",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		onDate := time.Now()
		if dateStr := c.Query("date"); dateStr != "" {
			parsed, err := time.Parse(pricingsvc.DayLayout, dateStr)
			if err != nil {
				basehdl.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Tham số date '%s' không đúng định dạng YYYY-MM-DD", dateStr),
					common.StatusBadRequest,
					err,
				))
				return nil
			}
			onDate = parsed
		}

		config, coefficient, err := h.ConfigService.ResolveForPlatform(c.Context(), platform, onDate)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, pricingdto.ResolvedPricingResponse{
			Platform:      platform,
			Date:          onDate.Format(pricingsvc.DayLayout),
			Config:        config,
			Coefficient:   coefficient,
			ProjectPriced: config == nil,
		}, nil)
		return nil
	})
}

// HandleCoefficient xử lý GET /pricing-configs/coefficient/:id.
// Tính hệ số báo giá của một cấu hình cụ thể theo ID.
func (h *PricingConfigHandler) HandleCoefficient(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		config, err := h.ConfigService.FindOneById(c.Context(), utility.String2ObjectID(id))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{
			"configId":    config.ID,
			"platform":    config.Platform,
			"coefficient": pricingsvc.QuotationCoefficient(&config),
		}, nil)
		return nil
	})
}
