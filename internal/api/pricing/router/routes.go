// Package router đăng ký các route thuộc domain pricing: pricing-configs.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"star_commerce/internal/api/middleware"
	pricinghdl "star_commerce/internal/api/pricing/handler"
	apirouter "star_commerce/internal/api/router"
)

// Register đăng ký tất cả route pricing lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	configHandler, err := pricinghdl.NewPricingConfigHandler()
	if err != nil {
		return fmt.Errorf("tạo PricingConfigHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.RequestLogMiddleware()}

	// GET /pricing-configs/effective - resolve cấu hình hiệu lực theo platform + date
	apirouter.RegisterRouteWithMiddleware(v1, "/pricing-configs", "GET", "/effective", middlewares, configHandler.HandleResolveEffective)

	// GET /pricing-configs/coefficient/:id - hệ số báo giá của một cấu hình
	apirouter.RegisterRouteWithMiddleware(v1, "/pricing-configs", "GET", "/coefficient/:id", middlewares, configHandler.HandleCoefficient)

	// CRUD pricing-configs
	r.RegisterCRUDRoutes(v1, "/pricing-configs", configHandler, apirouter.ReadWriteConfig, middlewares)

	return nil
}
