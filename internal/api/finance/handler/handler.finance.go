// Package financehdl - Handler báo cáo tổng hợp tài chính.
package financehdl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "star_commerce/internal/api/base/handler"
	collabsvc "star_commerce/internal/api/collab/service"
	financesvc "star_commerce/internal/api/finance/service"
	pricingsvc "star_commerce/internal/api/pricing/service"
	projectmodels "star_commerce/internal/api/project/models"
	projectsvc "star_commerce/internal/api/project/service"
	"star_commerce/internal/common"
)

// FinanceHandler xử lý endpoint báo cáo tài chính. Không có CRUD riêng:
// domain này chỉ đọc qua các service dữ liệu được inject.
type FinanceHandler struct {
	FinanceService *financesvc.FinanceService
}

// NewFinanceHandler tạo FinanceHandler mới cùng các service dữ liệu.
func NewFinanceHandler() (*FinanceHandler, error) {
	collabSvc, err := collabsvc.NewCollabService()
	if err != nil {
		return nil, fmt.Errorf("tạo CollabService: %w", err)
	}
	projectSvc, err := projectsvc.NewProjectService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProjectService: %w", err)
	}
	rateSvc, err := projectsvc.NewCapitalRateService()
	if err != nil {
		return nil, fmt.Errorf("tạo CapitalRateService: %w", err)
	}
	return &FinanceHandler{
		FinanceService: financesvc.NewFinanceService(collabSvc, projectSvc, rateSvc),
	}, nil
}

// HandleOverview xử lý GET /finance/overview.
// Query: projectIds (CSV hex), from/to (YYYY-MM-DD, lọc orderDate),
// dimension (financial|calendar), topMetric (amount|profit|rebate), topLimit.
func (h *FinanceHandler) HandleOverview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		query, err := parseOverviewQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		overview, err := h.FinanceService.BuildOverview(c.Context(), query)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, overview, nil)
		return nil
	})
}

func parseOverviewQuery(c fiber.Ctx) (*financesvc.OverviewQuery, error) {
	query := &financesvc.OverviewQuery{
		Options: financesvc.AggregateOptions{
			TimeDimension: projectmodels.TimeDimensionFinancial,
			TopMetric:     financesvc.TopMetricAmount,
			TopLimit:      financesvc.DefaultTopLimit,
		},
	}

	if raw := c.Query("projectIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := primitive.ObjectIDFromHex(part)
			if err != nil {
				return nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("projectIds chứa ID '%s' không đúng định dạng MongoDB ObjectID", part),
					common.StatusBadRequest,
					nil,
				)
			}
			query.ProjectIDs = append(query.ProjectIDs, id)
		}
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(pricingsvc.DayLayout, from)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "from phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		query.FromMillis = t.UnixMilli()
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(pricingsvc.DayLayout, to)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "to phải có định dạng YYYY-MM-DD", common.StatusBadRequest, nil)
		}
		// Bao trọn ngày cuối
		query.ToMillis = t.AddDate(0, 0, 1).UnixMilli() - 1
	}

	if dimension := c.Query("dimension"); dimension != "" {
		if dimension != projectmodels.TimeDimensionFinancial && dimension != projectmodels.TimeDimensionCalendar {
			return nil, common.NewError(common.ErrCodeValidationInput, "dimension phải là financial hoặc calendar", common.StatusBadRequest, nil)
		}
		query.Options.TimeDimension = dimension
	}

	if metric := c.Query("topMetric"); metric != "" {
		switch metric {
		case financesvc.TopMetricAmount, financesvc.TopMetricProfit, financesvc.TopMetricRebate:
			query.Options.TopMetric = metric
		default:
			return nil, common.NewError(common.ErrCodeValidationInput, "topMetric phải là amount, profit hoặc rebate", common.StatusBadRequest, nil)
		}
	}

	if rawLimit := c.Query("topLimit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit <= 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "topLimit phải là số nguyên dương", common.StatusBadRequest, nil)
		}
		query.Options.TopLimit = limit
	}

	return query, nil
}
