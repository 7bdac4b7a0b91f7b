// Package database - Index cho các collection thương mại (pricing, project, collaboration, work).
package database

import (
	"context"
	"strings"

	"star_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCommerceIndexes tạo index cho các collection nghiệp vụ. Gọi một lần khi khởi động.
func CreateCommerceIndexes(ctx context.Context, db *mongo.Database) error {
	// pricing_configs (platform, validFrom): resolve config hiệu lực theo ngày
	pricingConfigs := db.Collection(global.MongoDB_ColNames.PricingConfigs)
	if _, err := pricingConfigs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "platform", Value: 1},
			{Key: "validFrom", Value: 1},
		},
		Options: options.Index().SetName("pricing_config_platform_valid_from"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// collaborations (projectId, status): validity gate của aggregation
	collaborations := db.Collection(global.MongoDB_ColNames.Collaborations)
	if _, err := collaborations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "projectId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("collaboration_project_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// collaborations (talentName, orderDate): ranking theo talent
	if _, err := collaborations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "talentName", Value: 1},
			{Key: "orderDate", Value: -1},
		},
		Options: options.Index().SetName("collaboration_talent_order_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// works: collaborationId unique, quan hệ 1:1 với collaboration
	works := db.Collection(global.MongoDB_ColNames.Works)
	if _, err := works.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "collaborationId", Value: 1}},
		Options: options.Index().SetName("work_collaboration_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// capital_rates: name unique, lookup theo tên
	capitalRates := db.Collection(global.MongoDB_ColNames.CapitalRates)
	if _, err := capitalRates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("capital_rate_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError bỏ qua lỗi index đã tồn tại (IndexOptionsConflict / IndexKeySpecsConflict).
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
