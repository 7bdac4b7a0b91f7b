// Package performancesvc - Tính hiệu quả truyền thông của một dự án.
// ComputePerformance là hàm thuần trên snapshot đã materialize, không I/O.
package performancesvc

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	collabmodels "star_commerce/internal/api/collab/models"
	projectmodels "star_commerce/internal/api/project/models"
)

// DeliverySLADays là SLA nghiệm thu cố định: hạn chót giao báo cáo là
// ngày đăng video cuối cùng cộng 21 ngày.
const DeliverySLADays = 21

// TalentPerformance là một dòng hiệu quả theo talent. Đơn đã chốt lịch nhưng
// chưa đăng vẫn được liệt kê ở đây, chỉ bị loại khỏi khối overall.
type TalentPerformance struct {
	TalentName string `json:"talentName"`

	Amount               float64 `json:"amount"`
	Views                int64   `json:"views"`
	Likes                int64   `json:"likes"`
	Comments             int64   `json:"comments"`
	Shares               int64   `json:"shares"`
	ComponentImpressions int64   `json:"componentImpressions"`
	ComponentClicks      int64   `json:"componentClicks"`

	CPM float64 `json:"cpm"`
	CPE float64 `json:"cpe"`
	CTR float64 `json:"ctr"`

	CollaborationCount int  `json:"collaborationCount"`
	PublishedCount     int  `json:"publishedCount"`
	IsEffectValid      bool `json:"isEffectValid"` // có ít nhất một video đã đăng
}

// OverallPerformance là khối chỉ số tổng, chỉ tính các đơn đã đăng video.
type OverallPerformance struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalViews  int64   `json:"totalViews"`

	CPM float64 `json:"cpm"`
	CPE float64 `json:"cpe"`
	CTR float64 `json:"ctr"`

	TargetViews  *float64 `json:"targetViews"`  // nil khi project không đặt benchmarkCPM hoặc chưa có chi tiêu
	ViewsGap     *float64 `json:"viewsGap"`     // actualViews - targetViews, nil khi không có target
	DeliveryDate *int64   `json:"deliveryDate"` // UnixMilli, nil khi chưa có video nào đăng
}

// PerformanceReport là kết quả trả cho handler, serialize thẳng ra JSON.
type PerformanceReport struct {
	Overall   OverallPerformance  `json:"overall"`
	PerTalent []TalentPerformance `json:"perTalent"`
}

// ComputePerformance tính báo cáo hiệu quả của một dự án từ các collaboration
// và work 1:1 của chúng. Đơn đang đàm phán bị loại hoàn toàn; đơn đã chốt lịch
// được liệt kê per-talent; chỉ đơn đã đăng video vào khối overall.
func ComputePerformance(project *projectmodels.Project, collabs []collabmodels.Collaboration, works map[primitive.ObjectID]collabmodels.Work) PerformanceReport {
	talentBuckets := make(map[string]*TalentPerformance)
	talentOrder := make([]string, 0)

	var overall OverallPerformance
	var overallLikes, overallComments, overallShares int64
	var overallImpressions, overallClicks int64
	var latestPublishedAt int64

	for _, collab := range collabs {
		if !collab.IsAggregatable() {
			continue
		}

		work, hasWork := works[collab.ID]

		bucket, exists := talentBuckets[collab.TalentName]
		if !exists {
			bucket = &TalentPerformance{TalentName: collab.TalentName}
			talentBuckets[collab.TalentName] = bucket
			talentOrder = append(talentOrder, collab.TalentName)
		}
		bucket.Amount += collab.Amount
		bucket.CollaborationCount++
		if hasWork {
			bucket.Views += work.Views
			bucket.Likes += work.Likes
			bucket.Comments += work.Comments
			bucket.Shares += work.Shares
			bucket.ComponentImpressions += work.ComponentImpressions
			bucket.ComponentClicks += work.ComponentClicks
		}

		if !collab.IsPublished() {
			continue
		}
		bucket.PublishedCount++
		bucket.IsEffectValid = true

		overall.TotalAmount += collab.Amount
		if hasWork {
			overall.TotalViews += work.Views
			overallLikes += work.Likes
			overallComments += work.Comments
			overallShares += work.Shares
			overallImpressions += work.ComponentImpressions
			overallClicks += work.ComponentClicks
			if work.PublishedAt > latestPublishedAt {
				latestPublishedAt = work.PublishedAt
			}
		}
	}

	perTalent := make([]TalentPerformance, 0, len(talentOrder))
	for _, name := range talentOrder {
		bucket := talentBuckets[name]
		bucket.CPM = safeRatio(bucket.Amount, float64(bucket.Views)) * 1000
		bucket.CPE = safeRatio(bucket.Amount, float64(bucket.Likes+bucket.Comments+bucket.Shares))
		bucket.CTR = safeRatio(float64(bucket.ComponentClicks), float64(bucket.ComponentImpressions))
		perTalent = append(perTalent, *bucket)
	}

	overall.CPM = safeRatio(overall.TotalAmount, float64(overall.TotalViews)) * 1000
	overall.CPE = safeRatio(overall.TotalAmount, float64(overallLikes+overallComments+overallShares))
	overall.CTR = safeRatio(float64(overallClicks), float64(overallImpressions))

	if project.BenchmarkCPM != nil && *project.BenchmarkCPM > 0 && overall.TotalAmount > 0 {
		target := overall.TotalAmount / *project.BenchmarkCPM * 1000
		gap := float64(overall.TotalViews) - target
		overall.TargetViews = &target
		overall.ViewsGap = &gap
	}

	if latestPublishedAt > 0 {
		deliveryDate := time.UnixMilli(latestPublishedAt).AddDate(0, 0, DeliverySLADays).UnixMilli()
		overall.DeliveryDate = &deliveryDate
	}

	return PerformanceReport{Overall: overall, PerTalent: perTalent}
}

// safeRatio chia có guard: mẫu bằng 0 trả về 0, không bao giờ NaN/Inf.
func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
