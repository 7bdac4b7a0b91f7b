// Package projecthdl - Handler domain project.
package projecthdl

import (
	"fmt"

	basehdl "star_commerce/internal/api/base/handler"
	projectdto "star_commerce/internal/api/project/dto"
	projectmodels "star_commerce/internal/api/project/models"
	projectsvc "star_commerce/internal/api/project/service"
	"star_commerce/internal/common"
	"star_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectHandler xử lý CRUD project + snapshot báo giá + bút toán điều chỉnh.
type ProjectHandler struct {
	*basehdl.BaseHandler[projectmodels.Project, projectdto.ProjectCreateInput, projectdto.ProjectUpdateInput]
	ProjectService *projectsvc.ProjectService
}

// NewProjectHandler tạo ProjectHandler mới.
func NewProjectHandler() (*ProjectHandler, error) {
	svc, err := projectsvc.NewProjectService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProjectService: %w", err)
	}
	return &ProjectHandler{
		BaseHandler:    basehdl.NewBaseHandler[projectmodels.Project, projectdto.ProjectCreateInput, projectdto.ProjectUpdateInput](svc),
		ProjectService: svc,
	}, nil
}

// InsertOne override base: tạo project phải đi qua CreateProject để chụp
// snapshot báo giá theo nền tảng tại thời điểm tạo (write-once).
func (h *ProjectHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input projectdto.ProjectCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		project, err := h.ProjectService.CreateProject(c.Context(), &input)
		h.HandleResponse(c, project, err)
		return nil
	})
}

// HandleAddAdjustment xử lý POST /projects/:id/adjustments.
func (h *ProjectHandler) HandleAddAdjustment(c fiber.Ctx) error {
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

		var input projectdto.AdjustmentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Dữ liệu bút toán không đúng định dạng JSON",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		project, err := h.ProjectService.AddAdjustment(c.Context(), utility.String2ObjectID(id), &input)
		basehdl.HandleResponse(c, project, err)
		return nil
	})
}
