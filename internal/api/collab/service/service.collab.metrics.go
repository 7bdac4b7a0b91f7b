// Package collabsvc - Service domain collab: CRUD và tính chỉ số tài chính per-collaboration.
package collabsvc

import (
	"time"

	collabmodels "star_commerce/internal/api/collab/models"
	projectmodels "star_commerce/internal/api/project/models"
)

const (
	// IncomeSurcharge là phụ phí 1.05 cố định nhân vào mọi income/expense
	// (chưa có đường cấu hình theo tenant).
	IncomeSurcharge = 1.05

	// RebateCapPercent là ngưỡng rebate bị cap ở phía chi phí cho đơn adjusted.
	RebateCapPercent = 20.0

	// CappedExpenseFactor là hệ số chi phí khi rebate vượt ngưỡng cap.
	CappedExpenseFactor = 0.8

	// DaysPerMonth quy ước tháng 30 ngày khi quy đổi lãi suất tháng sang ngày.
	DaysPerMonth = 30.0

	millisPerDay = int64(24 * time.Hour / time.Millisecond)
)

// CollabMetrics là các chỉ số tài chính dẫn xuất của một collaboration.
// Tất cả là hàm thuần của đầu vào, không I/O, không state ẩn.
type CollabMetrics struct {
	Income              float64 `json:"income"`
	Expense             float64 `json:"expense"`
	RebateReceivable    float64 `json:"rebateReceivable"`
	OccupationDays      int64   `json:"occupationDays"`
	FundsOccupationCost float64 `json:"fundsOccupationCost"`
	RebateForProfit     float64 `json:"rebateForProfit"`
	GrossProfit         float64 `json:"grossProfit"`
}

// ComputeCollabMetrics tính toàn bộ chỉ số tài chính của một collaboration.
// monthlyRatePercent là lãi suất vốn %/tháng đã lookup theo capitalRateId
// của project. now dùng khi paymentDate chưa có (đơn còn mở).
func ComputeCollabMetrics(collab *collabmodels.Collaboration, project *projectmodels.Project, monthlyRatePercent float64, now time.Time) CollabMetrics {
	income := collab.Amount * project.Discount * IncomeSurcharge
	expense := computeExpense(collab)
	rebateReceivable := computeRebateReceivable(collab)

	occupationDays := computeOccupationDays(collab, now)
	fundsOccupationCost := expense * (monthlyRatePercent / 100 / DaysPerMonth) * float64(occupationDays)

	rebateForProfit := computeRebateForProfit(collab, project, rebateReceivable)
	grossProfit := income + rebateForProfit - expense

	return CollabMetrics{
		Income:              income,
		Expense:             expense,
		RebateReceivable:    rebateReceivable,
		OccupationDays:      occupationDays,
		FundsOccupationCost: fundsOccupationCost,
		RebateForProfit:     rebateForProfit,
		GrossProfit:         grossProfit,
	}
}

// computeExpense tính chi phí theo loại đơn.
// Đơn gốc trả đủ số tiền danh nghĩa; đơn adjusted được trừ rebate nhưng
// rebate trên 20% chỉ được cap ở 20% (hệ số 0.8).
func computeExpense(collab *collabmodels.Collaboration) float64 {
	switch collab.OrderType {
	case collabmodels.OrderTypeOriginal:
		return collab.Amount * IncomeSurcharge
	default:
		// adjusted
		if collab.Rebate > RebateCapPercent {
			return collab.Amount * CappedExpenseFactor * IncomeSurcharge
		}
		return collab.Amount * (1 - collab.Rebate/100) * IncomeSurcharge
	}
}

// computeRebateReceivable tính rebate còn phải thu.
// Đơn gốc: thu đủ theo %. Đơn adjusted: phần chi phí chỉ cap ở 20%,
// phần vượt ngưỡng vẫn phải thu về nên không bị cap.
func computeRebateReceivable(collab *collabmodels.Collaboration) float64 {
	switch collab.OrderType {
	case collabmodels.OrderTypeOriginal:
		return collab.Amount * collab.Rebate / 100
	default:
		// adjusted
		if collab.Rebate > RebateCapPercent {
			return collab.Amount * (collab.Rebate/100 - RebateCapPercent/100)
		}
		return 0
	}
}

// computeOccupationDays tính số ngày vốn bị chiếm dụng, nguyên ngày, không âm.
// Không có orderDate: 0 ngày. Chưa có paymentDate: tính tới now.
func computeOccupationDays(collab *collabmodels.Collaboration, now time.Time) int64 {
	if collab.OrderDate == 0 {
		return 0
	}

	end := now.UnixMilli()
	if collab.PaymentDate != nil {
		end = *collab.PaymentDate
	}

	days := (end - collab.OrderDate) / millisPerDay
	if days < 0 {
		return 0
	}
	return days
}

// computeRebateForProfit chọn rebate đưa vào lợi nhuận.
// Project đã quyết toán chỉ tin rebate thực nhận đã xác nhận (thiếu = 0);
// project còn mở dùng ước tính tốt nhất hiện có.
func computeRebateForProfit(collab *collabmodels.Collaboration, project *projectmodels.Project, rebateReceivable float64) float64 {
	if project.IsClosed() {
		if collab.ActualRebate != nil {
			return *collab.ActualRebate
		}
		return 0
	}
	if collab.ActualRebate != nil {
		return *collab.ActualRebate
	}
	return rebateReceivable
}
