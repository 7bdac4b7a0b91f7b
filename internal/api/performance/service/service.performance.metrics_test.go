// Package performancesvc - Test tính hiệu quả truyền thông.
package performancesvc

import (
	"math"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	collabmodels "star_commerce/internal/api/collab/models"
	projectmodels "star_commerce/internal/api/project/models"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func floatPtr(v float64) *float64 { return &v }

func newCollab(talent, status string, amount float64) collabmodels.Collaboration {
	return collabmodels.Collaboration{
		ID:         primitive.NewObjectID(),
		TalentName: talent,
		Status:     status,
		Amount:     amount,
	}
}

func TestComputePerformance_PerTalentRatios(t *testing.T) {
	project := &projectmodels.Project{}
	collab := newCollab("A", collabmodels.CollabStatusPublished, 1000)
	works := map[primitive.ObjectID]collabmodels.Work{
		collab.ID: {
			CollaborationId:      collab.ID,
			Views:                500000,
			Likes:                3000,
			Comments:             1500,
			Shares:               500,
			ComponentImpressions: 10000,
			ComponentClicks:      250,
		},
	}

	report := ComputePerformance(project, []collabmodels.Collaboration{collab}, works)

	if len(report.PerTalent) != 1 {
		t.Fatalf("perTalent có %d dòng, mong đợi 1", len(report.PerTalent))
	}
	row := report.PerTalent[0]
	// cpm = 1000/500000*1000 = 2; cpe = 1000/5000 = 0.2; ctr = 250/10000 = 0.025
	if !almostEqual(row.CPM, 2, 1e-9) {
		t.Errorf("cpm = %v, mong đợi 2", row.CPM)
	}
	if !almostEqual(row.CPE, 0.2, 1e-9) {
		t.Errorf("cpe = %v, mong đợi 0.2", row.CPE)
	}
	if !almostEqual(row.CTR, 0.025, 1e-9) {
		t.Errorf("ctr = %v, mong đợi 0.025", row.CTR)
	}
	if !row.IsEffectValid {
		t.Error("đơn đã đăng phải có isEffectValid = true")
	}
}

func TestComputePerformance_RatioZeroGuards(t *testing.T) {
	project := &projectmodels.Project{}
	collab := newCollab("A", collabmodels.CollabStatusPublished, 1000)
	// Work toàn số 0: mọi tỷ lệ phải là 0, không NaN/Inf
	works := map[primitive.ObjectID]collabmodels.Work{
		collab.ID: {CollaborationId: collab.ID},
	}

	report := ComputePerformance(project, []collabmodels.Collaboration{collab}, works)

	row := report.PerTalent[0]
	for name, v := range map[string]float64{
		"cpm": row.CPM, "cpe": row.CPE, "ctr": row.CTR,
		"overall.cpm": report.Overall.CPM, "overall.cpe": report.Overall.CPE, "overall.ctr": report.Overall.CTR,
	} {
		if v != 0 {
			t.Errorf("%s = %v, mong đợi 0 khi mẫu số bằng 0", name, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s không được là NaN/Inf", name)
		}
	}
}

func TestComputePerformance_OverallOnlyCountsPublished(t *testing.T) {
	project := &projectmodels.Project{}
	published := newCollab("A", collabmodels.CollabStatusPublished, 1000)
	scheduled := newCollab("B", collabmodels.CollabStatusScheduled, 500)
	pending := newCollab("C", collabmodels.CollabStatusPending, 9999)

	works := map[primitive.ObjectID]collabmodels.Work{
		published.ID: {CollaborationId: published.ID, Views: 100000},
		scheduled.ID: {CollaborationId: scheduled.ID, Views: 50000},
	}

	report := ComputePerformance(project, []collabmodels.Collaboration{published, scheduled, pending}, works)

	// Đơn chốt lịch vẫn được liệt kê per-talent, đơn pending thì không
	if len(report.PerTalent) != 2 {
		t.Fatalf("perTalent có %d dòng, mong đợi 2", len(report.PerTalent))
	}
	for _, row := range report.PerTalent {
		if row.TalentName == "B" && row.IsEffectValid {
			t.Error("đơn chưa đăng không được có isEffectValid = true")
		}
	}

	// Overall chỉ tính đơn đã đăng
	if !almostEqual(report.Overall.TotalAmount, 1000, 1e-9) {
		t.Errorf("overall.totalAmount = %v, mong đợi 1000", report.Overall.TotalAmount)
	}
	if report.Overall.TotalViews != 100000 {
		t.Errorf("overall.totalViews = %v, mong đợi 100000", report.Overall.TotalViews)
	}
}

func TestComputePerformance_TargetViewsAndGap(t *testing.T) {
	project := &projectmodels.Project{BenchmarkCPM: floatPtr(20)}
	collab := newCollab("A", collabmodels.CollabStatusPublished, 1000)
	works := map[primitive.ObjectID]collabmodels.Work{
		collab.ID: {CollaborationId: collab.ID, Views: 40000},
	}

	report := ComputePerformance(project, []collabmodels.Collaboration{collab}, works)

	// targetViews = 1000/20*1000 = 50000; viewsGap = 40000 - 50000 = -10000
	if report.Overall.TargetViews == nil || !almostEqual(*report.Overall.TargetViews, 50000, 1e-9) {
		t.Fatalf("targetViews = %v, mong đợi 50000", report.Overall.TargetViews)
	}
	if report.Overall.ViewsGap == nil || !almostEqual(*report.Overall.ViewsGap, -10000, 1e-9) {
		t.Errorf("viewsGap = %v, mong đợi -10000", report.Overall.ViewsGap)
	}
}

func TestComputePerformance_TargetViewsNilWhenUnset(t *testing.T) {
	collab := newCollab("A", collabmodels.CollabStatusPublished, 1000)
	works := map[primitive.ObjectID]collabmodels.Work{
		collab.ID: {CollaborationId: collab.ID, Views: 40000},
	}

	// Không đặt benchmarkCPM
	report := ComputePerformance(&projectmodels.Project{}, []collabmodels.Collaboration{collab}, works)
	if report.Overall.TargetViews != nil || report.Overall.ViewsGap != nil {
		t.Error("thiếu benchmarkCPM phải cho targetViews và viewsGap = nil")
	}

	// Có benchmarkCPM nhưng chưa có chi tiêu đã đăng
	scheduled := newCollab("B", collabmodels.CollabStatusScheduled, 1000)
	report = ComputePerformance(&projectmodels.Project{BenchmarkCPM: floatPtr(20)}, []collabmodels.Collaboration{scheduled}, nil)
	if report.Overall.TargetViews != nil {
		t.Error("chưa có chi tiêu đã đăng phải cho targetViews = nil")
	}
}

func TestComputePerformance_DeliveryDateSLA(t *testing.T) {
	project := &projectmodels.Project{}
	first := newCollab("A", collabmodels.CollabStatusPublished, 100)
	second := newCollab("B", collabmodels.CollabStatusPublished, 100)

	firstPublished := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	lastPublished := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	works := map[primitive.ObjectID]collabmodels.Work{
		first.ID:  {CollaborationId: first.ID, PublishedAt: firstPublished.UnixMilli()},
		second.ID: {CollaborationId: second.ID, PublishedAt: lastPublished.UnixMilli()},
	}

	report := ComputePerformance(project, []collabmodels.Collaboration{first, second}, works)

	// deliveryDate = ngày đăng muộn nhất + 21 ngày
	want := lastPublished.AddDate(0, 0, DeliverySLADays).UnixMilli()
	if report.Overall.DeliveryDate == nil || *report.Overall.DeliveryDate != want {
		t.Errorf("deliveryDate = %v, mong đợi %v", report.Overall.DeliveryDate, want)
	}

	// Chưa có video đăng: deliveryDate = nil
	scheduled := newCollab("C", collabmodels.CollabStatusScheduled, 100)
	report = ComputePerformance(project, []collabmodels.Collaboration{scheduled}, nil)
	if report.Overall.DeliveryDate != nil {
		t.Error("chưa có video đăng phải cho deliveryDate = nil")
	}
}
