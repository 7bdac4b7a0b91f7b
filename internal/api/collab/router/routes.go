// Package router đăng ký các route thuộc domain collab: collaborations, works.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	collabhdl "star_commerce/internal/api/collab/handler"
	"star_commerce/internal/api/middleware"
	apirouter "star_commerce/internal/api/router"
)

// Register đăng ký tất cả route collab lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	collabHandler, err := collabhdl.NewCollabHandler()
	if err != nil {
		return fmt.Errorf("tạo CollabHandler: %w", err)
	}
	workHandler, err := collabhdl.NewWorkHandler()
	if err != nil {
		return fmt.Errorf("tạo WorkHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.RequestLogMiddleware()}

	// GET /collaborations/:id/metrics - chỉ số tài chính dẫn xuất, không persist
	apirouter.RegisterRouteWithMiddleware(v1, "/collaborations", "GET", "/:id/metrics", middlewares, collabHandler.HandleMetrics)

	// CRUD collaborations
	r.RegisterCRUDRoutes(v1, "/collaborations", collabHandler, apirouter.ReadWriteConfig, middlewares)

	// CRUD works
	r.RegisterCRUDRoutes(v1, "/works", workHandler, apirouter.ReadWriteConfig, middlewares)

	return nil
}
