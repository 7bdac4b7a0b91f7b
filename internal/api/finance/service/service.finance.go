package financesvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	collabsvc "star_commerce/internal/api/collab/service"
	projectmodels "star_commerce/internal/api/project/models"
	projectsvc "star_commerce/internal/api/project/service"
)

// OverviewQuery là điều kiện lọc dữ liệu trước khi tổng hợp.
// FromMillis/ToMillis lọc theo orderDate, 0 = không lọc chiều đó.
type OverviewQuery struct {
	ProjectIDs []primitive.ObjectID
	FromMillis int64
	ToMillis   int64
	Options    AggregateOptions
}

// FinanceService lắp ráp dữ liệu cho báo cáo tổng hợp tài chính.
// Mọi dependency truy cập dữ liệu được inject qua constructor, không dùng
// singleton mức package.
type FinanceService struct {
	collabSvc  *collabsvc.CollabService
	projectSvc *projectsvc.ProjectService
	rateSvc    *projectsvc.CapitalRateService
}

// NewFinanceService tạo FinanceService với các service dữ liệu đã có.
func NewFinanceService(collabSvc *collabsvc.CollabService, projectSvc *projectsvc.ProjectService, rateSvc *projectsvc.CapitalRateService) *FinanceService {
	return &FinanceService{
		collabSvc:  collabSvc,
		projectSvc: projectSvc,
		rateSvc:    rateSvc,
	}
}

// BuildOverview lấy dữ liệu theo query, enrich từng collaboration với chỉ số
// tài chính rồi tổng hợp. Engine phía dưới là hàm thuần trên snapshot đã
// materialize tại thời điểm gọi.
func (s *FinanceService) BuildOverview(ctx context.Context, query *OverviewQuery) (*FinanceOverview, error) {
	projects, err := s.findProjects(ctx, query.ProjectIDs)
	if err != nil {
		return nil, err
	}

	collabs, err := s.collabSvc.FindByProjectIds(ctx, query.ProjectIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rateCache := make(map[primitive.ObjectID]float64)

	enriched := make([]EnrichedCollaboration, 0, len(collabs))
	for _, collab := range collabs {
		if query.FromMillis > 0 && collab.OrderDate < query.FromMillis {
			continue
		}
		if query.ToMillis > 0 && collab.OrderDate > query.ToMillis {
			continue
		}
		project, ok := projects[collab.ProjectId]
		if !ok {
			continue
		}

		monthlyRate, cached := rateCache[project.CapitalRateId]
		if !cached {
			monthlyRate = s.rateSvc.LookupMonthlyRate(ctx, project.CapitalRateId)
			rateCache[project.CapitalRateId] = monthlyRate
		}

		enriched = append(enriched, EnrichedCollaboration{
			Collab:  collab,
			Metrics: collabsvc.ComputeCollabMetrics(&collab, &project, monthlyRate, now),
		})
	}

	overview := Aggregate(enriched, projects, query.Options)
	return &overview, nil
}

// findProjects trả về map projectId → Project. Danh sách ID rỗng: lấy tất cả.
func (s *FinanceService) findProjects(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]projectmodels.Project, error) {
	if len(ids) > 0 {
		return s.projectSvc.FindManyByIdsAsMap(ctx, ids)
	}

	all, err := s.projectSvc.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	result := make(map[primitive.ObjectID]projectmodels.Project, len(all))
	for _, p := range all {
		result[p.ID] = p
	}
	return result, nil
}
