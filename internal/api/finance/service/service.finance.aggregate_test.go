// Package financesvc - Test tổng hợp tài chính đa dự án.
package financesvc

import (
	"math"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	collabmodels "star_commerce/internal/api/collab/models"
	collabsvc "star_commerce/internal/api/collab/service"
	projectmodels "star_commerce/internal/api/project/models"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newProjectMap(projects ...projectmodels.Project) map[primitive.ObjectID]projectmodels.Project {
	m := make(map[primitive.ObjectID]projectmodels.Project, len(projects))
	for _, p := range projects {
		m[p.ID] = p
	}
	return m
}

func enriched(projectID primitive.ObjectID, talent, status string, amount float64, metrics collabsvc.CollabMetrics) EnrichedCollaboration {
	return EnrichedCollaboration{
		Collab: collabmodels.Collaboration{
			ProjectId:  projectID,
			TalentName: talent,
			Status:     status,
			Amount:     amount,
		},
		Metrics: metrics,
	}
}

func TestAggregate_ValidityGateExcludesPending(t *testing.T) {
	projectID := primitive.NewObjectID()
	projects := newProjectMap(projectmodels.Project{ID: projectID, FinancialMonth: "M1"})

	collabs := []EnrichedCollaboration{
		enriched(projectID, "A", collabmodels.CollabStatusScheduled, 100, collabsvc.CollabMetrics{Income: 100, GrossProfit: 10}),
		enriched(projectID, "B", collabmodels.CollabStatusPublished, 200, collabsvc.CollabMetrics{Income: 200, GrossProfit: 20}),
		// Đơn đang đàm phán không được vào bất kỳ phép tổng nào
		enriched(projectID, "C", collabmodels.CollabStatusPending, 9999, collabsvc.CollabMetrics{Income: 9999, GrossProfit: 999}),
	}

	overview := Aggregate(collabs, projects, AggregateOptions{})

	if overview.KPISummary.CollaborationCount != 2 {
		t.Errorf("collaborationCount = %v, mong đợi 2", overview.KPISummary.CollaborationCount)
	}
	if !almostEqual(overview.KPISummary.TotalIncome, 300, 1e-9) {
		t.Errorf("totalIncome = %v, mong đợi 300 (đơn pending phải bị loại)", overview.KPISummary.TotalIncome)
	}
	for _, talent := range overview.TopTalents {
		if talent.TalentName == "C" {
			t.Error("talent của đơn pending không được xuất hiện trong top talents")
		}
	}
}

func TestAggregate_AdjustmentsSplitBySign(t *testing.T) {
	projectID := primitive.NewObjectID()
	projects := newProjectMap(projectmodels.Project{
		ID:             projectID,
		FinancialMonth: "M1",
		Adjustments: []projectmodels.Adjustment{
			{Amount: 500},
			{Amount: -200},
			{Amount: 100},
			{Amount: -50},
		},
	})

	collabs := []EnrichedCollaboration{
		enriched(projectID, "A", collabmodels.CollabStatusScheduled, 1000,
			collabsvc.CollabMetrics{Income: 1000, GrossProfit: 300, FundsOccupationCost: 10}),
	}

	overview := Aggregate(collabs, projects, AggregateOptions{})
	kpi := overview.KPISummary

	// Hai chiều giữ riêng, đều dương, không gộp thành một tổng có dấu
	if !almostEqual(kpi.IncomeAdjustments, 600, 1e-9) {
		t.Errorf("incomeAdjustments = %v, mong đợi 600", kpi.IncomeAdjustments)
	}
	if !almostEqual(kpi.ExpenseAdjustments, 250, 1e-9) {
		t.Errorf("expenseAdjustments = %v, mong đợi 250", kpi.ExpenseAdjustments)
	}

	// preAdjustmentProfit = 300 + 600; operationalProfit = 900 - 250 - 10
	if !almostEqual(kpi.PreAdjustmentProfit, 900, 1e-9) {
		t.Errorf("preAdjustmentProfit = %v, mong đợi 900", kpi.PreAdjustmentProfit)
	}
	if !almostEqual(kpi.OperationalProfit, 640, 1e-9) {
		t.Errorf("operationalProfit = %v, mong đợi 640", kpi.OperationalProfit)
	}
}

func TestAggregate_RatioZeroGuards(t *testing.T) {
	projectID := primitive.NewObjectID()
	// Không income, không budget: mọi tỷ lệ phải là 0, không NaN/Inf
	projects := newProjectMap(projectmodels.Project{ID: projectID, FinancialMonth: "M1"})

	collabs := []EnrichedCollaboration{
		enriched(projectID, "A", collabmodels.CollabStatusScheduled, 0, collabsvc.CollabMetrics{}),
	}

	overview := Aggregate(collabs, projects, AggregateOptions{})
	kpi := overview.KPISummary

	for name, v := range map[string]float64{
		"grossMargin":       kpi.GrossMargin,
		"operationalMargin": kpi.OperationalMargin,
		"budgetUtilization": kpi.BudgetUtilization,
	} {
		if v != 0 {
			t.Errorf("%s = %v, mong đợi 0 khi mẫu số bằng 0", name, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s không được là NaN/Inf", name)
		}
	}
}

func TestAggregate_MonthlyTrendNumericSort(t *testing.T) {
	// M2 phải đứng trước M10: sắp theo chỉ số tháng dạng số, không theo chuỗi
	p2 := projectmodels.Project{ID: primitive.NewObjectID(), FinancialMonth: "M2"}
	p10 := projectmodels.Project{ID: primitive.NewObjectID(), FinancialMonth: "M10"}
	p1 := projectmodels.Project{ID: primitive.NewObjectID(), FinancialMonth: "M1"}
	projects := newProjectMap(p2, p10, p1)

	collabs := []EnrichedCollaboration{
		enriched(p10.ID, "A", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 10}),
		enriched(p2.ID, "B", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 2}),
		enriched(p1.ID, "C", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 1}),
	}

	overview := Aggregate(collabs, projects, AggregateOptions{TimeDimension: projectmodels.TimeDimensionFinancial})

	got := make([]string, 0, len(overview.MonthlyTrend))
	for _, point := range overview.MonthlyTrend {
		got = append(got, point.Month)
	}
	want := []string{"M1", "M2", "M10"}
	if len(got) != len(want) {
		t.Fatalf("trend có %d điểm, mong đợi %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trend[%d] = %s, mong đợi %s", i, got[i], want[i])
		}
	}
}

func TestAggregate_MonthlyTrendCalendarDimension(t *testing.T) {
	projectID := primitive.NewObjectID()
	projects := newProjectMap(projectmodels.Project{ID: projectID, FinancialMonth: "M1"})

	jan := enriched(projectID, "A", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 10})
	jan.Collab.OrderDate = 1736899200000 // 2025-01-15
	dec := enriched(projectID, "B", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 20})
	dec.Collab.OrderDate = 1734220800000 // 2024-12-15
	noDate := enriched(projectID, "C", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 99})

	overview := Aggregate([]EnrichedCollaboration{jan, dec, noDate}, projects,
		AggregateOptions{TimeDimension: projectmodels.TimeDimensionCalendar})

	if len(overview.MonthlyTrend) != 2 {
		t.Fatalf("trend có %d điểm, mong đợi 2 (đơn thiếu orderDate bị bỏ qua)", len(overview.MonthlyTrend))
	}
	if overview.MonthlyTrend[0].Month != "2024-12" || overview.MonthlyTrend[1].Month != "2025-01" {
		t.Errorf("trend sắp sai thứ tự thời gian: %v, %v", overview.MonthlyTrend[0].Month, overview.MonthlyTrend[1].Month)
	}
}

func TestAggregate_TopTalentsSortLimitAvgRebate(t *testing.T) {
	projectID := primitive.NewObjectID()
	projects := newProjectMap(projectmodels.Project{ID: projectID, FinancialMonth: "M1"})

	a1 := enriched(projectID, "A", collabmodels.CollabStatusScheduled, 100, collabsvc.CollabMetrics{GrossProfit: 5})
	a1.Collab.Rebate = 10
	a2 := enriched(projectID, "A", collabmodels.CollabStatusScheduled, 100, collabsvc.CollabMetrics{GrossProfit: 5})
	a2.Collab.Rebate = 20
	b := enriched(projectID, "B", collabmodels.CollabStatusScheduled, 500, collabsvc.CollabMetrics{GrossProfit: 50})
	b.Collab.Rebate = 5
	c := enriched(projectID, "C", collabmodels.CollabStatusScheduled, 300, collabsvc.CollabMetrics{GrossProfit: 100})

	collabs := []EnrichedCollaboration{a1, a2, b, c}

	// Sắp theo amount giảm dần: B(500), C(300), A(200)
	overview := Aggregate(collabs, projects, AggregateOptions{TopMetric: TopMetricAmount, TopLimit: 2})
	if len(overview.TopTalents) != 2 {
		t.Fatalf("topTalents có %d dòng, mong đợi 2 (limit)", len(overview.TopTalents))
	}
	if overview.TopTalents[0].TalentName != "B" || overview.TopTalents[1].TalentName != "C" {
		t.Errorf("sắp theo amount sai: %s, %s", overview.TopTalents[0].TalentName, overview.TopTalents[1].TalentName)
	}

	// Sắp theo profit giảm dần: C(100), B(50), A(10)
	overview = Aggregate(collabs, projects, AggregateOptions{TopMetric: TopMetricProfit, TopLimit: 3})
	if overview.TopTalents[0].TalentName != "C" {
		t.Errorf("sắp theo profit sai: đứng đầu là %s, mong đợi C", overview.TopTalents[0].TalentName)
	}

	// avgRebate của A = (10+20)/2 = 15
	for _, talent := range overview.TopTalents {
		if talent.TalentName == "A" && !almostEqual(talent.AvgRebate, 15, 1e-9) {
			t.Errorf("avgRebate của A = %v, mong đợi 15", talent.AvgRebate)
		}
	}
}

func TestAggregate_ByProjectTypeBreakdown(t *testing.T) {
	brand := projectmodels.Project{ID: primitive.NewObjectID(), Type: "brand", FinancialMonth: "M1"}
	effect := projectmodels.Project{ID: primitive.NewObjectID(), Type: "effect", FinancialMonth: "M1"}
	projects := newProjectMap(brand, effect)

	collabs := []EnrichedCollaboration{
		enriched(brand.ID, "A", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 100, GrossProfit: 10}),
		enriched(brand.ID, "B", collabmodels.CollabStatusPublished, 1, collabsvc.CollabMetrics{Income: 200, GrossProfit: 20}),
		enriched(effect.ID, "C", collabmodels.CollabStatusScheduled, 1, collabsvc.CollabMetrics{Income: 50, GrossProfit: 5}),
	}

	overview := Aggregate(collabs, projects, AggregateOptions{})
	if len(overview.ByProjectType) != 2 {
		t.Fatalf("byProjectType có %d dòng, mong đợi 2", len(overview.ByProjectType))
	}
	// Sắp theo income giảm dần nên brand đứng trước
	if overview.ByProjectType[0].Type != "brand" || !almostEqual(overview.ByProjectType[0].Income, 300, 1e-9) {
		t.Errorf("dòng brand = %+v, mong đợi income 300 đứng đầu", overview.ByProjectType[0])
	}
	if overview.ByProjectType[0].Count != 2 {
		t.Errorf("count của brand = %v, mong đợi 2", overview.ByProjectType[0].Count)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	overview := Aggregate(nil, map[primitive.ObjectID]projectmodels.Project{}, AggregateOptions{})
	if overview.KPISummary.CollaborationCount != 0 {
		t.Errorf("collaborationCount = %v, mong đợi 0", overview.KPISummary.CollaborationCount)
	}
	if len(overview.MonthlyTrend) != 0 || len(overview.TopTalents) != 0 || len(overview.ByProjectType) != 0 {
		t.Error("đầu vào rỗng phải cho các slice rỗng")
	}
}
