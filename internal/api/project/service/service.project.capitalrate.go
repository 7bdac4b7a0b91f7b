package projectsvc

import (
	"context"
	"fmt"

	basesvc "star_commerce/internal/api/base/service"
	projectmodels "star_commerce/internal/api/project/models"
	"star_commerce/internal/common"
	"star_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultMonthlyRatePercent là lãi suất vốn mặc định (%/tháng) khi project
// không tham chiếu capital rate hoặc tham chiếu không tồn tại.
const DefaultMonthlyRatePercent = 0.7

// CapitalRateService xử lý CRUD bảng lãi suất vốn và lookup có mặc định.
type CapitalRateService struct {
	*basesvc.BaseServiceMongoImpl[projectmodels.CapitalRate]
}

// NewCapitalRateService tạo CapitalRateService mới.
func NewCapitalRateService() (*CapitalRateService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CapitalRates)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CapitalRates, common.ErrNotFound)
	}
	return &CapitalRateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[projectmodels.CapitalRate](coll),
	}, nil
}

// LookupMonthlyRate trả về lãi suất %/tháng của một capital rate.
// ID zero hoặc không tìm thấy: rơi về mặc định từ cấu hình server
// (DEFAULT_MONTHLY_RATE_PERCENT), cuối cùng là hằng 0.7.
func (s *CapitalRateService) LookupMonthlyRate(ctx context.Context, id primitive.ObjectID) float64 {
	fallback := DefaultMonthlyRatePercent
	if global.ServerConfig != nil && global.ServerConfig.DefaultMonthlyRatePercent > 0 {
		fallback = global.ServerConfig.DefaultMonthlyRatePercent
	}

	if id.IsZero() {
		return fallback
	}

	rate, err := s.FindOneById(ctx, id)
	if err != nil {
		return fallback
	}
	return rate.MonthlyRatePercent
}
