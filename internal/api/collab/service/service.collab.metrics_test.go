// Package collabsvc - Test chỉ số tài chính per-collaboration.
package collabsvc

import (
	"math"
	"testing"
	"time"

	collabmodels "star_commerce/internal/api/collab/models"
	projectmodels "star_commerce/internal/api/project/models"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func TestComputeCollabMetrics_OriginalOrderPassThrough(t *testing.T) {
	// Đơn gốc: chi phí trả đủ 1000*1.05=1050, rebate thu đủ 1000*10%=100
	collab := &collabmodels.Collaboration{
		Amount:    1000,
		Rebate:    10,
		OrderType: collabmodels.OrderTypeOriginal,
		Status:    collabmodels.CollabStatusScheduled,
	}
	project := &projectmodels.Project{Discount: 0.9, Status: projectmodels.ProjectStatusActive}

	m := ComputeCollabMetrics(collab, project, 0.7, time.Now())

	if !almostEqual(m.Income, 1000*0.9*1.05, 1e-9) {
		t.Errorf("income = %v, mong đợi %v", m.Income, 1000*0.9*1.05)
	}
	if !almostEqual(m.Expense, 1050, 1e-9) {
		t.Errorf("expense = %v, mong đợi 1050", m.Expense)
	}
	if !almostEqual(m.RebateReceivable, 100, 1e-9) {
		t.Errorf("rebateReceivable = %v, mong đợi 100", m.RebateReceivable)
	}
}

func TestComputeCollabMetrics_AdjustedRebateCapped(t *testing.T) {
	// Đơn adjusted, rebate 25% > 20%: chi phí cap 1000*0.8*1.05=840,
	// phần vượt vẫn phải thu 1000*(0.25-0.20)=50
	collab := &collabmodels.Collaboration{
		Amount:    1000,
		Rebate:    25,
		OrderType: collabmodels.OrderTypeAdjusted,
		Status:    collabmodels.CollabStatusScheduled,
	}
	project := &projectmodels.Project{Discount: 1, Status: projectmodels.ProjectStatusActive}

	m := ComputeCollabMetrics(collab, project, 0.7, time.Now())

	if !almostEqual(m.Expense, 840, 1e-9) {
		t.Errorf("expense = %v, mong đợi 840", m.Expense)
	}
	if !almostEqual(m.RebateReceivable, 50, 1e-9) {
		t.Errorf("rebateReceivable = %v, mong đợi 50", m.RebateReceivable)
	}
}

func TestComputeCollabMetrics_AdjustedRebateBelowCap(t *testing.T) {
	// Đơn adjusted, rebate 15% ≤ 20%: chi phí trừ rebate 1000*0.85*1.05=892.5,
	// không còn rebate phải thu
	collab := &collabmodels.Collaboration{
		Amount:    1000,
		Rebate:    15,
		OrderType: collabmodels.OrderTypeAdjusted,
		Status:    collabmodels.CollabStatusScheduled,
	}
	project := &projectmodels.Project{Discount: 1, Status: projectmodels.ProjectStatusActive}

	m := ComputeCollabMetrics(collab, project, 0.7, time.Now())

	if !almostEqual(m.Expense, 892.5, 1e-9) {
		t.Errorf("expense = %v, mong đợi 892.5", m.Expense)
	}
	if m.RebateReceivable != 0 {
		t.Errorf("rebateReceivable = %v, mong đợi 0", m.RebateReceivable)
	}
}

func TestComputeCollabMetrics_FundsOccupationCost(t *testing.T) {
	// orderDate 10 ngày trước paymentDate, expense=1000 (adjusted rebate 0 thì
	// expense=1050; dùng original amount hiệu chỉnh để expense tròn 1000):
	// amount = 1000/1.05, orderType=original
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	orderDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	paymentDate := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC).UnixMilli()

	collab := &collabmodels.Collaboration{
		Amount:      1000 / 1.05,
		OrderType:   collabmodels.OrderTypeOriginal,
		Status:      collabmodels.CollabStatusScheduled,
		OrderDate:   orderDate,
		PaymentDate: int64Ptr(paymentDate),
	}
	project := &projectmodels.Project{Discount: 1, Status: projectmodels.ProjectStatusActive}

	m := ComputeCollabMetrics(collab, project, 0.7, now)

	if m.OccupationDays != 10 {
		t.Errorf("occupationDays = %v, mong đợi 10", m.OccupationDays)
	}
	// 1000 * (0.007/30) * 10 ≈ 2.33
	if !almostEqual(m.FundsOccupationCost, 1000*(0.007/30)*10, 1e-6) {
		t.Errorf("fundsOccupationCost = %v, mong đợi ≈2.33", m.FundsOccupationCost)
	}
}

func TestComputeCollabMetrics_OccupationDaysDefaults(t *testing.T) {
	now := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	project := &projectmodels.Project{Discount: 1, Status: projectmodels.ProjectStatusActive}

	// Không có orderDate: 0 ngày
	noOrder := &collabmodels.Collaboration{
		Amount:    1000,
		OrderType: collabmodels.OrderTypeOriginal,
	}
	if m := ComputeCollabMetrics(noOrder, project, 0.7, now); m.OccupationDays != 0 {
		t.Errorf("không có orderDate phải cho 0 ngày, nhận được %v", m.OccupationDays)
	}

	// Chưa có paymentDate: tính tới now
	openOrder := &collabmodels.Collaboration{
		Amount:    1000,
		OrderType: collabmodels.OrderTypeOriginal,
		OrderDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}
	if m := ComputeCollabMetrics(openOrder, project, 0.7, now); m.OccupationDays != 5 {
		t.Errorf("đơn mở phải tính tới now (5 ngày), nhận được %v", m.OccupationDays)
	}

	// paymentDate trước orderDate: không âm
	negative := &collabmodels.Collaboration{
		Amount:      1000,
		OrderType:   collabmodels.OrderTypeOriginal,
		OrderDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).UnixMilli(),
		PaymentDate: int64Ptr(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC).UnixMilli()),
	}
	if m := ComputeCollabMetrics(negative, project, 0.7, now); m.OccupationDays != 0 {
		t.Errorf("khoảng âm phải cho 0 ngày, nhận được %v", m.OccupationDays)
	}
}

func TestComputeCollabMetrics_RebateForProfitClosedVsOpen(t *testing.T) {
	base := collabmodels.Collaboration{
		Amount:    1000,
		Rebate:    10,
		OrderType: collabmodels.OrderTypeOriginal,
	}
	open := &projectmodels.Project{Discount: 1, Status: projectmodels.ProjectStatusActive}
	closed := &projectmodels.Project{Discount: 1, Status: projectmodels.ProjectStatusClosed}

	// Project mở, chưa có actualRebate: dùng ước tính (receivable = 100)
	c1 := base
	if m := ComputeCollabMetrics(&c1, open, 0.7, time.Now()); !almostEqual(m.RebateForProfit, 100, 1e-9) {
		t.Errorf("project mở chưa quyết toán phải dùng receivable, nhận được %v", m.RebateForProfit)
	}

	// Project mở, có actualRebate: actualRebate ghi đè
	c2 := base
	c2.ActualRebate = floatPtr(80)
	if m := ComputeCollabMetrics(&c2, open, 0.7, time.Now()); !almostEqual(m.RebateForProfit, 80, 1e-9) {
		t.Errorf("actualRebate phải ghi đè receivable, nhận được %v", m.RebateForProfit)
	}

	// Project đã quyết toán, chưa có actualRebate: chỉ tin số đã xác nhận → 0
	c3 := base
	if m := ComputeCollabMetrics(&c3, closed, 0.7, time.Now()); m.RebateForProfit != 0 {
		t.Errorf("project closed thiếu actualRebate phải cho 0, nhận được %v", m.RebateForProfit)
	}

	// Project đã quyết toán, có actualRebate: dùng số đã xác nhận
	c4 := base
	c4.ActualRebate = floatPtr(80)
	if m := ComputeCollabMetrics(&c4, closed, 0.7, time.Now()); !almostEqual(m.RebateForProfit, 80, 1e-9) {
		t.Errorf("project closed phải dùng actualRebate, nhận được %v", m.RebateForProfit)
	}
}

func TestComputeCollabMetrics_GrossProfit(t *testing.T) {
	// income = 1000*0.9*1.05 = 945; expense = 1050; rebateForProfit = 100
	// grossProfit = 945 + 100 - 1050 = -5
	collab := &collabmodels.Collaboration{
		Amount:    1000,
		Rebate:    10,
		OrderType: collabmodels.OrderTypeOriginal,
	}
	project := &projectmodels.Project{Discount: 0.9, Status: projectmodels.ProjectStatusActive}

	m := ComputeCollabMetrics(collab, project, 0.7, time.Now())
	if !almostEqual(m.GrossProfit, m.Income+m.RebateForProfit-m.Expense, 1e-9) {
		t.Errorf("grossProfit = %v không khớp income+rebateForProfit-expense", m.GrossProfit)
	}
	if !almostEqual(m.GrossProfit, -5, 1e-9) {
		t.Errorf("grossProfit = %v, mong đợi -5", m.GrossProfit)
	}
}
