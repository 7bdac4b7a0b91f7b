// Package router đăng ký các route thuộc domain finance.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	financehdl "star_commerce/internal/api/finance/handler"
	"star_commerce/internal/api/middleware"
	apirouter "star_commerce/internal/api/router"
)

// Register đăng ký tất cả route finance lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	financeHandler, err := financehdl.NewFinanceHandler()
	if err != nil {
		return fmt.Errorf("tạo FinanceHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.RequestLogMiddleware()}

	// GET /finance/overview - báo cáo tổng hợp tài chính đa dự án
	apirouter.RegisterRouteWithMiddleware(v1, "/finance", "GET", "/overview", middlewares, financeHandler.HandleOverview)

	return nil
}
