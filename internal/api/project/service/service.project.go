// Package projectsvc - Service domain project: CRUD project, chụp snapshot báo giá, bút toán điều chỉnh.
package projectsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "star_commerce/internal/api/base/service"
	pricingsvc "star_commerce/internal/api/pricing/service"
	projectdto "star_commerce/internal/api/project/dto"
	projectmodels "star_commerce/internal/api/project/models"
	"star_commerce/internal/common"
	"star_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectService xử lý CRUD project.
type ProjectService struct {
	*basesvc.BaseServiceMongoImpl[projectmodels.Project]
	pricingSvc *pricingsvc.PricingConfigService
}

// NewProjectService tạo ProjectService mới.
func NewProjectService() (*ProjectService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Projects)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Projects, common.ErrNotFound)
	}
	pricingSvc, err := pricingsvc.NewPricingConfigService()
	if err != nil {
		return nil, fmt.Errorf("tạo PricingConfigService: %w", err)
	}
	return &ProjectService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[projectmodels.Project](coll),
		pricingSvc:           pricingSvc,
	}, nil
}

// CreateProject tạo project mới và chụp snapshot báo giá cho từng nền tảng
// tại thời điểm tạo. Snapshot là write-once: không bao giờ được tính lại
// dù cấu hình báo giá gốc thay đổi sau đó.
func (s *ProjectService) CreateProject(ctx context.Context, input *projectdto.ProjectCreateInput) (*projectmodels.Project, error) {
	model, err := input.ToModel()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if len(input.Platforms) > 0 {
		snapshots := make(map[string]projectmodels.PricingSnapshot, len(input.Platforms))
		for _, platform := range input.Platforms {
			config, coefficient, err := s.pricingSvc.ResolveForPlatform(ctx, platform, now)
			if err != nil {
				return nil, fmt.Errorf("resolve báo giá cho nền tảng %s: %w", platform, err)
			}
			snapshots[platform] = projectmodels.PricingSnapshot{
				Config:        config,
				Coefficient:   coefficient,
				ProjectPriced: config == nil,
				CapturedAt:    now.UnixMilli(),
			}
		}
		model.PlatformPricingSnapshots = snapshots
	}

	created, err := s.InsertOne(ctx, model)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AddAdjustment ghi thêm một bút toán điều chỉnh vào project.
func (s *ProjectService) AddAdjustment(ctx context.Context, projectID primitive.ObjectID, input *projectdto.AdjustmentInput) (*projectmodels.Project, error) {
	adjustment := projectmodels.Adjustment{
		Amount: input.Amount,
		Note:   input.Note,
		At:     time.Now().UnixMilli(),
	}

	update := &basesvc.UpdateData{
		Push: map[string]interface{}{"adjustments": adjustment},
	}
	updated, err := s.UpdateById(ctx, projectID, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindManyByIdsAsMap trả về map projectId → Project cho aggregation.
func (s *ProjectService) FindManyByIdsAsMap(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]projectmodels.Project, error) {
	projects, err := s.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make(map[primitive.ObjectID]projectmodels.Project, len(projects))
	for _, p := range projects {
		result[p.ID] = p
	}
	return result, nil
}
