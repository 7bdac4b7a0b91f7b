// Package performancehdl - Handler báo cáo hiệu quả truyền thông.
package performancehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "star_commerce/internal/api/base/handler"
	collabsvc "star_commerce/internal/api/collab/service"
	performancesvc "star_commerce/internal/api/performance/service"
	projectsvc "star_commerce/internal/api/project/service"
	"star_commerce/internal/common"
	"star_commerce/internal/utility"
)

// PerformanceHandler xử lý endpoint báo cáo hiệu quả. Không có CRUD riêng.
type PerformanceHandler struct {
	PerformanceService *performancesvc.PerformanceService
}

// NewPerformanceHandler tạo PerformanceHandler mới cùng các service dữ liệu.
func NewPerformanceHandler() (*PerformanceHandler, error) {
	projectSvc, err := projectsvc.NewProjectService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProjectService: %w", err)
	}
	collabSvc, err := collabsvc.NewCollabService()
	if err != nil {
		return nil, fmt.Errorf("tạo CollabService: %w", err)
	}
	workSvc, err := collabsvc.NewWorkService()
	if err != nil {
		return nil, fmt.Errorf("tạo WorkService: %w", err)
	}
	return &PerformanceHandler{
		PerformanceService: performancesvc.NewPerformanceService(projectSvc, collabSvc, workSvc),
	}, nil
}

// HandleProjectReport xử lý GET /performance/projects/:id/report.
func (h *PerformanceHandler) HandleProjectReport(c fiber.Ctx) error {
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

		report, err := h.PerformanceService.BuildReport(c.Context(), utility.String2ObjectID(id))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, report, nil)
		return nil
	})
}
