// Package dto - DTO cho domain collab.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	collabmodels "star_commerce/internal/api/collab/models"
	"star_commerce/internal/common"
)

// CollabCreateInput dữ liệu tạo collaboration mới.
type CollabCreateInput struct {
	ProjectId    string   `json:"projectId" validate:"required"`
	TalentName   string   `json:"talentName" validate:"required"`
	Platform     string   `json:"platform,omitempty"`
	Amount       float64  `json:"amount" validate:"gte=0"`
	Rebate       float64  `json:"rebate" validate:"gte=0,lte=100"`
	ActualRebate *float64 `json:"actualRebate,omitempty" validate:"omitempty,gte=0"`
	OrderType    string   `json:"orderType" validate:"required,oneof=original adjusted"`
	Status       string   `json:"status,omitempty"`
	OrderDate    int64    `json:"orderDate,omitempty" validate:"omitempty,gte=0"`
	PaymentDate  *int64   `json:"paymentDate,omitempty" validate:"omitempty,gte=0"`
}

// ToModel transform DTO sang model Collaboration.
func (in CollabCreateInput) ToModel() (collabmodels.Collaboration, error) {
	projectID, err := primitive.ObjectIDFromHex(in.ProjectId)
	if err != nil {
		return collabmodels.Collaboration{}, common.ErrInvalidFormat
	}

	status := in.Status
	if status == "" {
		status = collabmodels.CollabStatusPending
	}

	return collabmodels.Collaboration{
		ProjectId:    projectID,
		TalentName:   in.TalentName,
		Platform:     in.Platform,
		Amount:       in.Amount,
		Rebate:       in.Rebate,
		ActualRebate: in.ActualRebate,
		OrderType:    in.OrderType,
		Status:       status,
		OrderDate:    in.OrderDate,
		PaymentDate:  in.PaymentDate,
	}, nil
}

// CollabUpdateInput dữ liệu cập nhật collaboration (partial update).
type CollabUpdateInput struct {
	TalentName   string   `json:"talentName,omitempty"`
	Platform     string   `json:"platform,omitempty"`
	Amount       float64  `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Rebate       float64  `json:"rebate,omitempty" validate:"omitempty,gte=0,lte=100"`
	ActualRebate *float64 `json:"actualRebate,omitempty" validate:"omitempty,gte=0"`
	OrderType    string   `json:"orderType,omitempty" validate:"omitempty,oneof=original adjusted"`
	Status       string   `json:"status,omitempty"`
	OrderDate    int64    `json:"orderDate,omitempty" validate:"omitempty,gte=0"`
	PaymentDate  *int64   `json:"paymentDate,omitempty" validate:"omitempty,gte=0"`
}

// ToModel transform DTO sang model Collaboration (chỉ các field có giá trị).
func (in CollabUpdateInput) ToModel() (collabmodels.Collaboration, error) {
	return collabmodels.Collaboration{
		TalentName:   in.TalentName,
		Platform:     in.Platform,
		Amount:       in.Amount,
		Rebate:       in.Rebate,
		ActualRebate: in.ActualRebate,
		OrderType:    in.OrderType,
		Status:       in.Status,
		OrderDate:    in.OrderDate,
		PaymentDate:  in.PaymentDate,
	}, nil
}

// WorkCreateInput dữ liệu tạo work mới.
type WorkCreateInput struct {
	CollaborationId      string           `json:"collaborationId" validate:"required"`
	Views                int64            `json:"views" validate:"gte=0"`
	Likes                int64            `json:"likes" validate:"gte=0"`
	Comments             int64            `json:"comments" validate:"gte=0"`
	Shares               int64            `json:"shares" validate:"gte=0"`
	ComponentImpressions int64            `json:"componentImpressions" validate:"gte=0"`
	ComponentClicks      int64            `json:"componentClicks" validate:"gte=0"`
	CompletionRate       float64          `json:"completionRate" validate:"gte=0,lte=1"`
	ReachByFrequency     map[string]int64 `json:"reachByFrequency,omitempty"`
	PublishedAt          int64            `json:"publishedAt,omitempty" validate:"omitempty,gte=0"`
}

// ToModel transform DTO sang model Work.
func (in WorkCreateInput) ToModel() (collabmodels.Work, error) {
	collabID, err := primitive.ObjectIDFromHex(in.CollaborationId)
	if err != nil {
		return collabmodels.Work{}, common.ErrInvalidFormat
	}
	return collabmodels.Work{
		CollaborationId:      collabID,
		Views:                in.Views,
		Likes:                in.Likes,
		Comments:             in.Comments,
		Shares:               in.Shares,
		ComponentImpressions: in.ComponentImpressions,
		ComponentClicks:      in.ComponentClicks,
		CompletionRate:       in.CompletionRate,
		ReachByFrequency:     in.ReachByFrequency,
		PublishedAt:          in.PublishedAt,
	}, nil
}

// WorkUpdateInput dữ liệu cập nhật work (partial update).
type WorkUpdateInput struct {
	Views                int64            `json:"views,omitempty" validate:"omitempty,gte=0"`
	Likes                int64            `json:"likes,omitempty" validate:"omitempty,gte=0"`
	Comments             int64            `json:"comments,omitempty" validate:"omitempty,gte=0"`
	Shares               int64            `json:"shares,omitempty" validate:"omitempty,gte=0"`
	ComponentImpressions int64            `json:"componentImpressions,omitempty" validate:"omitempty,gte=0"`
	ComponentClicks      int64            `json:"componentClicks,omitempty" validate:"omitempty,gte=0"`
	CompletionRate       float64          `json:"completionRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	ReachByFrequency     map[string]int64 `json:"reachByFrequency,omitempty"`
	PublishedAt          int64            `json:"publishedAt,omitempty" validate:"omitempty,gte=0"`
}

// ToModel transform DTO sang model Work (chỉ các field có giá trị).
func (in WorkUpdateInput) ToModel() (collabmodels.Work, error) {
	return collabmodels.Work{
		Views:                in.Views,
		Likes:                in.Likes,
		Comments:             in.Comments,
		Shares:               in.Shares,
		ComponentImpressions: in.ComponentImpressions,
		ComponentClicks:      in.ComponentClicks,
		CompletionRate:       in.CompletionRate,
		ReachByFrequency:     in.ReachByFrequency,
		PublishedAt:          in.PublishedAt,
	}, nil
}
