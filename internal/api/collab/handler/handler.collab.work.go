package collabhdl

import (
	"fmt"

	basehdl "star_commerce/internal/api/base/handler"
	collabdto "star_commerce/internal/api/collab/dto"
	collabmodels "star_commerce/internal/api/collab/models"
	collabsvc "star_commerce/internal/api/collab/service"
)

// WorkHandler xử lý CRUD work.
type WorkHandler struct {
	*basehdl.BaseHandler[collabmodels.Work, collabdto.WorkCreateInput, collabdto.WorkUpdateInput]
	WorkService *collabsvc.WorkService
}

// NewWorkHandler tạo WorkHandler mới.
func NewWorkHandler() (*WorkHandler, error) {
	svc, err := collabsvc.NewWorkService()
	if err != nil {
		return nil, fmt.Errorf("tạo WorkService: %w", err)
	}
	return &WorkHandler{
		BaseHandler: basehdl.NewBaseHandler[collabmodels.Work, collabdto.WorkCreateInput, collabdto.WorkUpdateInput](svc),
		WorkService: svc,
	}, nil
}
