// Package collabhdl - Handler domain collab.
package collabhdl

import (
	"fmt"
	"time"

	basehdl "star_commerce/internal/api/base/handler"
	collabdto "star_commerce/internal/api/collab/dto"
	collabmodels "star_commerce/internal/api/collab/models"
	collabsvc "star_commerce/internal/api/collab/service"
	projectsvc "star_commerce/internal/api/project/service"
	"star_commerce/internal/common"
	"star_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollabHandler xử lý CRUD collaboration + chỉ số tài chính per-collaboration.
type CollabHandler struct {
	*basehdl.BaseHandler[collabmodels.Collaboration, collabdto.CollabCreateInput, collabdto.CollabUpdateInput]
	CollabService  *collabsvc.CollabService
	ProjectService *projectsvc.ProjectService
	RateService    *projectsvc.CapitalRateService
}

// NewCollabHandler tạo CollabHandler mới.
func NewCollabHandler() (*CollabHandler, error) {
	collabSvc, err := collabsvc.NewCollabService()
	if err != nil {
		return nil, fmt.Errorf("tạo CollabService: %w", err)
	}
	projectSvc, err := projectsvc.NewProjectService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProjectService: %w", err)
	}
	rateSvc, err := projectsvc.NewCapitalRateService()
	if err != nil {
		return nil, fmt.Errorf("tạo CapitalRateService: %w", err)
	}
	return &CollabHandler{
		BaseHandler:    basehdl.NewBaseHandler[collabmodels.Collaboration, collabdto.CollabCreateInput, collabdto.CollabUpdateInput](collabSvc),
		CollabService:  collabSvc,
		ProjectService: projectSvc,
		RateService:    rateSvc,
	}, nil
}

// HandleMetrics xử lý GET /collaborations/:id/metrics.
// Tính các chỉ số tài chính dẫn xuất của một collaboration từ dữ liệu hiện tại,
// không persist kết quả.
func (h *CollabHandler) HandleMetrics(c fiber.Ctx) error {
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

		collab, err := h.CollabService.FindOneById(c.Context(), utility.String2ObjectID(id))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		project, err := h.ProjectService.FindOneById(c.Context(), collab.ProjectId)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		monthlyRate := h.RateService.LookupMonthlyRate(c.Context(), project.CapitalRateId)
		metrics := collabsvc.ComputeCollabMetrics(&collab, &project, monthlyRate, time.Now())

		basehdl.HandleResponse(c, fiber.Map{
			"collaborationId":    collab.ID,
			"projectId":          project.ID,
			"monthlyRatePercent": monthlyRate,
			"metrics":            metrics,
		}, nil)
		return nil
	})
}
