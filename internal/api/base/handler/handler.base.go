package basehdl

// Package basehdl - base handler cho các Fiber handler CRUD.
// Cung cấp parse/validate request, xử lý filter và options MongoDB từ query string.

import (
	"bytes"
	"encoding/json"
	"fmt"

	basesvc "star_commerce/internal/api/base/service"
	"star_commerce/internal/common"
	"star_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// ModelConverter là ràng buộc cho các DTO input: tự chuyển đổi sang Model.
// Lỗi chuyển đổi (ví dụ: chuỗi ObjectID không hợp lệ) trả về từ ToModel.
type ModelConverter[T any] interface {
	ToModel() (T, error)
}

// FilterOptions cấu hình cho việc validate filter từ query string
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Sử dụng Generic Type để tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: DTO khi tạo mới, tự transform sang T qua ToModel
// - UpdateInput: DTO khi cập nhật, tự transform sang T qua ToModel
type BaseHandler[T any, CreateInput ModelConverter[T], UpdateInput ModelConverter[T]] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput ModelConverter[T], UpdateInput ModelConverter[T]](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput validate dữ liệu đầu vào với validator từ global
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestBody parse dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ProcessFilter xử lý và validate filter từ query string.
// Filter được truyền dưới dạng JSON, các giá trị string hex 24 ký tự
// của field _id hoặc *Id được normalize thành ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển các string ObjectID thành primitive.ObjectID cho các field id
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	for key, value := range filter {
		if !isObjectIDField(key) {
			continue
		}
		switch v := value.(type) {
		case string:
			if primitive.IsValidObjectID(v) {
				objectID, _ := primitive.ObjectIDFromHex(v)
				filter[key] = objectID
			}
		case map[string]interface{}:
			// Operator con ($in, $eq, ...) chứa string ObjectID
			for opKey, opValue := range v {
				if strVal, ok := opValue.(string); ok && primitive.IsValidObjectID(strVal) {
					objectID, _ := primitive.ObjectIDFromHex(strVal)
					v[opKey] = objectID
				}
				if arrVal, ok := opValue.([]interface{}); ok {
					for i, item := range arrVal {
						if strItem, ok := item.(string); ok && primitive.IsValidObjectID(strItem) {
							objectID, _ := primitive.ObjectIDFromHex(strItem)
							arrVal[i] = objectID
						}
					}
				}
			}
		}
	}
	return filter
}

// isObjectIDField kiểm tra field có phải là field id không (_id hoặc kết thúc bằng Id)
func isObjectIDField(key string) bool {
	if key == "_id" {
		return true
	}
	n := len(key)
	return n >= 2 && key[n-2:] == "Id"
}

// validateFilter kiểm tra filter theo filterOptions (field bị cấm, operator cho phép, số field tối đa)
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter có quá nhiều field (%d), tối đa cho phép %d", len(filter), h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for key, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if key == denied {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Không được phép filter theo trường '%s'", key),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		// Kiểm tra các operator con
		if opMap, ok := value.(map[string]interface{}); ok {
			for op := range opMap {
				if len(op) > 0 && op[0] == '$' && !h.isAllowedOperator(op) {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator '%s' không được phép trong filter", op),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) isAllowedOperator(op string) bool {
	for _, allowed := range h.filterOptions.AllowedOperators {
		if op == allowed {
			return true
		}
	}
	return false
}

// mongoQueryOptions là cấu trúc options truyền qua query string dưới dạng JSON.
// Ví dụ: {"projection": {"field": 1}, "sort": {"createdAt": -1}, "limit": 10, "skip": 0}
type mongoQueryOptions struct {
	Projection map[string]interface{} `json:"projection"`
	Sort       map[string]interface{} `json:"sort"`
	Limit      *int64                 `json:"limit"`
	Skip       *int64                 `json:"skip"`
}

// ProcessFindOneOptions parse options từ query string cho FindOne
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOneOptions(c fiber.Ctx) (*mongoopts.FindOneOptions, error) {
	parsed, err := h.parseQueryOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.FindOne()
	if parsed.Projection != nil {
		opts.SetProjection(parsed.Projection)
	}
	if parsed.Sort != nil {
		opts.SetSort(parsed.Sort)
	}
	return opts, nil
}

// ProcessFindOptions parse options từ query string cho Find
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	parsed, err := h.parseQueryOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find()
	if parsed.Projection != nil {
		opts.SetProjection(parsed.Projection)
	}
	if parsed.Sort != nil {
		opts.SetSort(parsed.Sort)
	}
	if parsed.Limit != nil {
		opts.SetLimit(*parsed.Limit)
	}
	if parsed.Skip != nil {
		opts.SetSkip(*parsed.Skip)
	}
	return opts, nil
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) parseQueryOptions(c fiber.Ctx) (*mongoQueryOptions, error) {
	var parsed mongoQueryOptions
	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &parsed); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return &parsed, nil
}
