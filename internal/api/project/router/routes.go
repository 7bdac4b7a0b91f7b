// Package router đăng ký các route thuộc domain project: projects, capital-rates.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"star_commerce/internal/api/middleware"
	projecthdl "star_commerce/internal/api/project/handler"
	apirouter "star_commerce/internal/api/router"
)

// Register đăng ký tất cả route project lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	projectHandler, err := projecthdl.NewProjectHandler()
	if err != nil {
		return fmt.Errorf("tạo ProjectHandler: %w", err)
	}
	rateHandler, err := projecthdl.NewCapitalRateHandler()
	if err != nil {
		return fmt.Errorf("tạo CapitalRateHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.RequestLogMiddleware()}

	// POST /projects/:id/adjustments - thêm bút toán điều chỉnh
	apirouter.RegisterRouteWithMiddleware(v1, "/projects", "POST", "/:id/adjustments", middlewares, projectHandler.HandleAddAdjustment)

	// CRUD projects (insert-one được override để chụp snapshot báo giá)
	r.RegisterCRUDRoutes(v1, "/projects", projectHandler, apirouter.ReadWriteConfig, middlewares)

	// CRUD capital-rates
	r.RegisterCRUDRoutes(v1, "/capital-rates", rateHandler, apirouter.ReadWriteConfig, middlewares)

	return nil
}
