// Package router đăng ký các route thuộc domain performance.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"star_commerce/internal/api/middleware"
	performancehdl "star_commerce/internal/api/performance/handler"
	apirouter "star_commerce/internal/api/router"
)

// Register đăng ký tất cả route performance lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	performanceHandler, err := performancehdl.NewPerformanceHandler()
	if err != nil {
		return fmt.Errorf("tạo PerformanceHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.RequestLogMiddleware()}

	// GET /performance/projects/:id/report - báo cáo hiệu quả của một dự án
	apirouter.RegisterRouteWithMiddleware(v1, "/performance", "GET", "/projects/:id/report", middlewares, performanceHandler.HandleProjectReport)

	return nil
}
