// Package financesvc - Tổng hợp tài chính đa dự án.
// Aggregate là hàm thuần: mọi I/O nằm ở FinanceService, hàm này chỉ nhận
// slice đã materialize và trả về cấu trúc báo cáo.
package financesvc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	collabmodels "star_commerce/internal/api/collab/models"
	collabsvc "star_commerce/internal/api/collab/service"
	projectmodels "star_commerce/internal/api/project/models"
)

// Các metric sắp xếp top talent.
const (
	TopMetricAmount = "amount"
	TopMetricProfit = "profit"
	TopMetricRebate = "rebate"

	// DefaultTopLimit số talent trả về khi caller không chỉ định.
	DefaultTopLimit = 10
)

// EnrichedCollaboration là collaboration kèm chỉ số tài chính đã tính sẵn.
type EnrichedCollaboration struct {
	Collab  collabmodels.Collaboration
	Metrics collabsvc.CollabMetrics
}

// AggregateOptions điều khiển cách nhóm và sắp xếp báo cáo.
type AggregateOptions struct {
	TimeDimension string // financial | calendar
	TopMetric     string // amount | profit | rebate
	TopLimit      int
}

// KPISummary là khối chỉ số tổng của báo cáo.
// IncomeAdjustments và ExpenseAdjustments giữ riêng hai chiều (đều dương)
// để UI hiển thị được lợi nhuận trước và sau điều chỉnh.
type KPISummary struct {
	TotalIncome           float64 `json:"totalIncome"`
	TotalExpense          float64 `json:"totalExpense"`
	TotalRebateReceivable float64 `json:"totalRebateReceivable"`
	TotalOccupationCost   float64 `json:"totalOccupationCost"`

	IncomeAdjustments  float64 `json:"incomeAdjustments"`
	ExpenseAdjustments float64 `json:"expenseAdjustments"`

	PreAdjustmentProfit float64 `json:"preAdjustmentProfit"`
	OperationalProfit   float64 `json:"operationalProfit"`

	GrossMargin       float64 `json:"grossMargin"`       // %
	OperationalMargin float64 `json:"operationalMargin"` // %
	BudgetUtilization float64 `json:"budgetUtilization"` // %

	CollaborationCount int `json:"collaborationCount"`
}

// MonthlyTrendPoint là một điểm trên đường trend theo tháng.
type MonthlyTrendPoint struct {
	Month  string  `json:"month"` // "M<n>" hoặc "YYYY-MM" tuỳ chiều thời gian
	Income float64 `json:"income"`
	Profit float64 `json:"profit"`
}

// ProjectTypeSummary là một dòng breakdown theo loại dự án.
type ProjectTypeSummary struct {
	Type   string  `json:"type"`
	Income float64 `json:"income"`
	Profit float64 `json:"profit"`
	Count  int     `json:"count"`
}

// TalentSummary là một dòng trong bảng top talent.
type TalentSummary struct {
	TalentName         string  `json:"talentName"`
	TotalAmount        float64 `json:"totalAmount"`
	TotalProfit        float64 `json:"totalProfit"`
	TotalRebate        float64 `json:"totalRebate"` // tổng % rebate, dùng tính trung bình
	AvgRebate          float64 `json:"avgRebate"`
	CollaborationCount int     `json:"collaborationCount"`
}

// FinanceOverview là kết quả tổng hợp trả cho handler, serialize thẳng ra JSON.
type FinanceOverview struct {
	KPISummary    KPISummary           `json:"kpiSummary"`
	MonthlyTrend  []MonthlyTrendPoint  `json:"monthlyTrend"`
	ByProjectType []ProjectTypeSummary `json:"byProjectType"`
	TopTalents    []TalentSummary      `json:"topTalents"`
}

// Aggregate tổng hợp tài chính trên tập collaboration đã enrich.
// Validity gate (đã chốt lịch hoặc đã đăng) được áp đúng một lần ở đây,
// trước mọi phép nhóm con. Collaboration trỏ tới project không có trong map
// bị bỏ qua.
func Aggregate(collabs []EnrichedCollaboration, projects map[primitive.ObjectID]projectmodels.Project, opts AggregateOptions) FinanceOverview {
	valid := make([]EnrichedCollaboration, 0, len(collabs))
	for _, ec := range collabs {
		if !ec.Collab.IsAggregatable() {
			continue
		}
		if _, ok := projects[ec.Collab.ProjectId]; !ok {
			continue
		}
		valid = append(valid, ec)
	}

	return FinanceOverview{
		KPISummary:    buildKPISummary(valid, projects),
		MonthlyTrend:  buildMonthlyTrend(valid, projects, opts.TimeDimension),
		ByProjectType: buildByProjectType(valid, projects),
		TopTalents:    buildTopTalents(valid, opts.TopMetric, opts.TopLimit),
	}
}

func buildKPISummary(valid []EnrichedCollaboration, projects map[primitive.ObjectID]projectmodels.Project) KPISummary {
	var s KPISummary
	var totalGrossProfit float64

	referencedProjects := make(map[primitive.ObjectID]bool)
	for _, ec := range valid {
		s.TotalIncome += ec.Metrics.Income
		s.TotalExpense += ec.Metrics.Expense
		s.TotalRebateReceivable += ec.Metrics.RebateReceivable
		s.TotalOccupationCost += ec.Metrics.FundsOccupationCost
		totalGrossProfit += ec.Metrics.GrossProfit
		referencedProjects[ec.Collab.ProjectId] = true
	}
	s.CollaborationCount = len(valid)

	// Bút toán điều chỉnh và budget chỉ tính trên các project thật sự
	// có collaboration hợp lệ trong kỳ báo cáo
	var totalBudget float64
	for id := range referencedProjects {
		p := projects[id]
		totalBudget += p.Budget
		for _, adj := range p.Adjustments {
			if adj.Amount >= 0 {
				s.IncomeAdjustments += adj.Amount
			} else {
				s.ExpenseAdjustments += -adj.Amount
			}
		}
	}

	s.PreAdjustmentProfit = totalGrossProfit + s.IncomeAdjustments
	s.OperationalProfit = s.PreAdjustmentProfit - s.ExpenseAdjustments - s.TotalOccupationCost

	s.GrossMargin = safeRatio(s.PreAdjustmentProfit, s.TotalIncome) * 100
	s.OperationalMargin = safeRatio(s.OperationalProfit, s.TotalIncome) * 100
	s.BudgetUtilization = safeRatio(s.TotalIncome, totalBudget) * 100

	return s
}

// buildMonthlyTrend nhóm income/profit theo tháng và sắp theo chỉ số tháng
// dạng số, không phải thứ tự chuỗi (M2 phải đứng trước M10).
func buildMonthlyTrend(valid []EnrichedCollaboration, projects map[primitive.ObjectID]projectmodels.Project, dimension string) []MonthlyTrendPoint {
	type bucket struct {
		point MonthlyTrendPoint
		index int
	}
	buckets := make(map[string]*bucket)

	for _, ec := range valid {
		project := projects[ec.Collab.ProjectId]
		key, index, ok := monthKey(&ec.Collab, &project, dimension)
		if !ok {
			continue
		}
		b, exists := buckets[key]
		if !exists {
			b = &bucket{point: MonthlyTrendPoint{Month: key}, index: index}
			buckets[key] = b
		}
		b.point.Income += ec.Metrics.Income
		b.point.Profit += ec.Metrics.GrossProfit
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].index < sorted[j].index })

	trend := make([]MonthlyTrendPoint, 0, len(sorted))
	for _, b := range sorted {
		trend = append(trend, b.point)
	}
	return trend
}

// monthKey xác định khoá nhóm tháng và chỉ số sắp xếp dạng số của nó.
// Chiều financial dùng tháng tài chính của project ("M1".."M12"); chiều
// calendar dùng tháng dương lịch của orderDate. Thiếu dữ liệu thì bỏ qua.
func monthKey(collab *collabmodels.Collaboration, project *projectmodels.Project, dimension string) (string, int, bool) {
	if dimension == projectmodels.TimeDimensionCalendar {
		if collab.OrderDate == 0 {
			return "", 0, false
		}
		t := time.UnixMilli(collab.OrderDate).UTC()
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), t.Year()*12 + int(t.Month()), true
	}

	month := project.FinancialMonth
	if !strings.HasPrefix(month, "M") {
		return "", 0, false
	}
	index, err := strconv.Atoi(month[1:])
	if err != nil {
		return "", 0, false
	}
	return month, index, true
}

func buildByProjectType(valid []EnrichedCollaboration, projects map[primitive.ObjectID]projectmodels.Project) []ProjectTypeSummary {
	buckets := make(map[string]*ProjectTypeSummary)
	for _, ec := range valid {
		projectType := projects[ec.Collab.ProjectId].Type
		b, exists := buckets[projectType]
		if !exists {
			b = &ProjectTypeSummary{Type: projectType}
			buckets[projectType] = b
		}
		b.Income += ec.Metrics.Income
		b.Profit += ec.Metrics.GrossProfit
		b.Count++
	}

	result := make([]ProjectTypeSummary, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Income > result[j].Income })
	return result
}

// buildTopTalents nhóm theo talent, sắp giảm dần theo metric caller chọn
// và cắt còn limit dòng.
func buildTopTalents(valid []EnrichedCollaboration, metric string, limit int) []TalentSummary {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	buckets := make(map[string]*TalentSummary)
	for _, ec := range valid {
		b, exists := buckets[ec.Collab.TalentName]
		if !exists {
			b = &TalentSummary{TalentName: ec.Collab.TalentName}
			buckets[ec.Collab.TalentName] = b
		}
		b.TotalAmount += ec.Collab.Amount
		b.TotalProfit += ec.Metrics.GrossProfit
		b.TotalRebate += ec.Collab.Rebate
		b.CollaborationCount++
	}

	talents := make([]TalentSummary, 0, len(buckets))
	for _, b := range buckets {
		if b.CollaborationCount > 0 {
			b.AvgRebate = b.TotalRebate / float64(b.CollaborationCount)
		}
		talents = append(talents, *b)
	}

	sort.Slice(talents, func(i, j int) bool {
		return talentMetric(&talents[i], metric) > talentMetric(&talents[j], metric)
	})

	if len(talents) > limit {
		talents = talents[:limit]
	}
	return talents
}

func talentMetric(t *TalentSummary, metric string) float64 {
	switch metric {
	case TopMetricProfit:
		return t.TotalProfit
	case TopMetricRebate:
		return t.TotalRebate
	default:
		return t.TotalAmount
	}
}

// safeRatio chia có guard: mẫu bằng 0 trả về 0, không bao giờ NaN/Inf.
func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
