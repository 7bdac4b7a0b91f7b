package performancesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	collabsvc "star_commerce/internal/api/collab/service"
	projectsvc "star_commerce/internal/api/project/service"
)

// PerformanceService lắp ráp dữ liệu cho báo cáo hiệu quả một dự án.
// Dependency truy cập dữ liệu được inject qua constructor.
type PerformanceService struct {
	projectSvc *projectsvc.ProjectService
	collabSvc  *collabsvc.CollabService
	workSvc    *collabsvc.WorkService
}

// NewPerformanceService tạo PerformanceService với các service dữ liệu đã có.
func NewPerformanceService(projectSvc *projectsvc.ProjectService, collabSvc *collabsvc.CollabService, workSvc *collabsvc.WorkService) *PerformanceService {
	return &PerformanceService{
		projectSvc: projectSvc,
		collabSvc:  collabSvc,
		workSvc:    workSvc,
	}
}

// BuildReport lấy project, collaboration và work liên quan rồi tính báo cáo.
func (s *PerformanceService) BuildReport(ctx context.Context, projectID primitive.ObjectID) (*PerformanceReport, error) {
	project, err := s.projectSvc.FindOneById(ctx, projectID)
	if err != nil {
		return nil, err
	}

	collabs, err := s.collabSvc.FindByProjectId(ctx, projectID)
	if err != nil {
		return nil, err
	}

	collabIDs := make([]primitive.ObjectID, 0, len(collabs))
	for _, collab := range collabs {
		collabIDs = append(collabIDs, collab.ID)
	}
	works, err := s.workSvc.FindByCollaborationIds(ctx, collabIDs)
	if err != nil {
		return nil, err
	}

	report := ComputePerformance(&project, collabs, works)
	return &report, nil
}
