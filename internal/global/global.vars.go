package global

import (
	"star_commerce/config"
	"star_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	PricingConfigs string // Rate card báo giá theo platform
	CapitalRates   string // Bảng lãi suất vốn theo tháng
	Projects       string // Dự án thương mại
	Collaborations string // Hợp tác với talent trong dự án
	Works          string // Dữ liệu hiệu quả nội dung đã publish (1:1 collaboration)
}

// Các biến toàn cục
var Validate *validator.Validate          // Validator dùng chung
var MongoDB_Session *mongo.Client         // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration    // Cấu hình của server
var MongoDB_ColNames = CollectionName{    // Tên các collection
	PricingConfigs: "pricing_configs",
	CapitalRates:   "capital_rates",
	Projects:       "projects",
	Collaborations: "collaborations",
	Works:          "works",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
