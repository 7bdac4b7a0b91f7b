package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	projectmodels "star_commerce/internal/api/project/models"
	projectsvc "star_commerce/internal/api/project/service"
	"star_commerce/internal/global"
	"star_commerce/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống
func InitDefaultData() {
	log := logger.GetAppLogger()

	rateSvc, err := projectsvc.NewCapitalRateService()
	if err != nil {
		log.Fatalf("Failed to initialize capital rate service: %v", err)
	}

	// Bảng lãi suất vốn mặc định: project không khai báo capitalRateId sẽ
	// rơi về mức này khi tính chi phí chiếm dụng vốn
	defaultRate := projectmodels.CapitalRate{
		Name:               "default",
		MonthlyRatePercent: global.ServerConfig.DefaultMonthlyRatePercent,
	}
	if _, err := rateSvc.Upsert(context.TODO(), bson.M{"name": defaultRate.Name}, defaultRate); err != nil {
		log.Warnf("Failed to seed default capital rate: %v", err)
		return
	}

	log.WithFields(map[string]interface{}{
		"name":               defaultRate.Name,
		"monthlyRatePercent": defaultRate.MonthlyRatePercent,
	}).Info("Seeded default capital rate")
}
