// Package dto - DTO cho domain project.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	projectmodels "star_commerce/internal/api/project/models"
	"star_commerce/internal/common"
)

// ProjectCreateInput dữ liệu tạo project mới.
// Platforms liệt kê các nền tảng cần chụp snapshot báo giá tại thời điểm tạo.
type ProjectCreateInput struct {
	Name           string   `json:"name" validate:"required"`
	Type           string   `json:"type,omitempty"`
	Status         string   `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
	Discount       float64  `json:"discount" validate:"rate_fraction"`
	BenchmarkCPM   *float64 `json:"benchmarkCPM,omitempty" validate:"omitempty,gt=0"`
	Budget         float64  `json:"budget" validate:"gte=0"`
	FinancialMonth string   `json:"financialMonth,omitempty"`
	CapitalRateId  string   `json:"capitalRateId,omitempty"`
	Platforms      []string `json:"platforms,omitempty"`
}

// ToModel transform DTO sang model Project (chưa gồm snapshots, service chụp sau).
func (in ProjectCreateInput) ToModel() (projectmodels.Project, error) {
	status := in.Status
	if status == "" {
		status = projectmodels.ProjectStatusActive
	}

	var capitalRateID primitive.ObjectID
	if in.CapitalRateId != "" {
		id, err := primitive.ObjectIDFromHex(in.CapitalRateId)
		if err != nil {
			return projectmodels.Project{}, common.ErrInvalidFormat
		}
		capitalRateID = id
	}

	return projectmodels.Project{
		Name:           in.Name,
		Type:           in.Type,
		Status:         status,
		Discount:       in.Discount,
		BenchmarkCPM:   in.BenchmarkCPM,
		Budget:         in.Budget,
		FinancialMonth: in.FinancialMonth,
		CapitalRateId:  capitalRateID,
		Adjustments:    []projectmodels.Adjustment{},
	}, nil
}

// ProjectUpdateInput dữ liệu cập nhật project (partial update).
// Cố ý không có adjustments và platformPricingSnapshots: bút toán đi qua
// endpoint riêng, snapshots là write-once không bao giờ được update.
type ProjectUpdateInput struct {
	Name           string   `json:"name,omitempty"`
	Type           string   `json:"type,omitempty"`
	Status         string   `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
	Discount       float64  `json:"discount,omitempty" validate:"omitempty,rate_fraction"`
	BenchmarkCPM   *float64 `json:"benchmarkCPM,omitempty" validate:"omitempty,gt=0"`
	Budget         float64  `json:"budget,omitempty" validate:"omitempty,gte=0"`
	FinancialMonth string   `json:"financialMonth,omitempty"`
	CapitalRateId  string   `json:"capitalRateId,omitempty"`
}

// ToModel transform DTO sang model Project (chỉ các field có giá trị).
func (in ProjectUpdateInput) ToModel() (projectmodels.Project, error) {
	var capitalRateID primitive.ObjectID
	if in.CapitalRateId != "" {
		id, err := primitive.ObjectIDFromHex(in.CapitalRateId)
		if err != nil {
			return projectmodels.Project{}, common.ErrInvalidFormat
		}
		capitalRateID = id
	}

	return projectmodels.Project{
		Name:           in.Name,
		Type:           in.Type,
		Status:         in.Status,
		Discount:       in.Discount,
		BenchmarkCPM:   in.BenchmarkCPM,
		Budget:         in.Budget,
		FinancialMonth: in.FinancialMonth,
		CapitalRateId:  capitalRateID,
	}, nil
}

// AdjustmentInput dữ liệu thêm một bút toán điều chỉnh.
type AdjustmentInput struct {
	Amount float64 `json:"amount" validate:"required"` // Dương = thu nhập thêm, âm = chi phí thêm
	Note   string  `json:"note,omitempty"`
}

// CapitalRateCreateInput dữ liệu tạo mức lãi suất vốn mới.
type CapitalRateCreateInput struct {
	Name               string  `json:"name" validate:"required"`
	MonthlyRatePercent float64 `json:"monthlyRatePercent" validate:"gte=0"`
}

// ToModel transform DTO sang model CapitalRate.
func (in CapitalRateCreateInput) ToModel() (projectmodels.CapitalRate, error) {
	return projectmodels.CapitalRate{
		Name:               in.Name,
		MonthlyRatePercent: in.MonthlyRatePercent,
	}, nil
}

// CapitalRateUpdateInput dữ liệu cập nhật mức lãi suất vốn.
type CapitalRateUpdateInput struct {
	Name               string  `json:"name,omitempty"`
	MonthlyRatePercent float64 `json:"monthlyRatePercent,omitempty" validate:"omitempty,gte=0"`
}

// ToModel transform DTO sang model CapitalRate (chỉ các field có giá trị).
func (in CapitalRateUpdateInput) ToModel() (projectmodels.CapitalRate, error) {
	return projectmodels.CapitalRate{
		Name:               in.Name,
		MonthlyRatePercent: in.MonthlyRatePercent,
	}, nil
}
