package pricingsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "star_commerce/internal/api/base/service"
	pricingmodels "star_commerce/internal/api/pricing/models"
	"star_commerce/internal/common"
	"star_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// PricingConfigService xử lý CRUD cấu hình báo giá và resolve cấu hình hiệu lực.
type PricingConfigService struct {
	*basesvc.BaseServiceMongoImpl[pricingmodels.PricingConfig]
}

// NewPricingConfigService tạo PricingConfigService mới.
func NewPricingConfigService() (*PricingConfigService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PricingConfigs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.PricingConfigs, common.ErrNotFound)
	}
	return &PricingConfigService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[pricingmodels.PricingConfig](coll),
	}, nil
}

// FindByPlatform trả về tất cả cấu hình của một nền tảng, theo thứ tự tạo
// (thứ tự tạo là thứ tự đầu vào của resolver khi nhiều khoảng trùng nhau).
func (s *PricingConfigService) FindByPlatform(ctx context.Context, platform string) ([]pricingmodels.PricingConfig, error) {
	filter := bson.M{"platform": platform}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// ResolveForPlatform resolve cấu hình hiệu lực của một nền tảng tại một ngày
// và tính kèm hệ số báo giá. Config nil nghĩa là nền tảng "project-priced".
func (s *PricingConfigService) ResolveForPlatform(ctx context.Context, platform string, onDate time.Time) (*pricingmodels.PricingConfig, float64, error) {
	configs, err := s.FindByPlatform(ctx, platform)
	if err != nil {
		return nil, DefaultCoefficient, err
	}

	resolved := ResolveEffectiveConfig(configs, onDate)
	if resolved == nil {
		return nil, DefaultCoefficient, nil
	}
	return resolved, QuotationCoefficient(resolved), nil
}
