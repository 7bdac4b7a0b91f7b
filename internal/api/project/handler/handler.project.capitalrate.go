package projecthdl

import (
	"fmt"

	basehdl "star_commerce/internal/api/base/handler"
	projectdto "star_commerce/internal/api/project/dto"
	projectmodels "star_commerce/internal/api/project/models"
	projectsvc "star_commerce/internal/api/project/service"
)

// CapitalRateHandler xử lý CRUD bảng lãi suất vốn.
type CapitalRateHandler struct {
	*basehdl.BaseHandler[projectmodels.CapitalRate, projectdto.CapitalRateCreateInput, projectdto.CapitalRateUpdateInput]
	RateService *projectsvc.CapitalRateService
}

// NewCapitalRateHandler tạo CapitalRateHandler mới.
func NewCapitalRateHandler() (*CapitalRateHandler, error) {
	svc, err := projectsvc.NewCapitalRateService()
	if err != nil {
		return nil, fmt.Errorf("tạo CapitalRateService: %w", err)
	}
	return &CapitalRateHandler{
		BaseHandler: basehdl.NewBaseHandler[projectmodels.CapitalRate, projectdto.CapitalRateCreateInput, projectdto.CapitalRateUpdateInput](svc),
		RateService: svc,
	}, nil
}
