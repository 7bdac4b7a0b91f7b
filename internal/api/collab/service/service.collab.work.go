package collabsvc

import (
	"context"
	"fmt"

	basesvc "star_commerce/internal/api/base/service"
	collabmodels "star_commerce/internal/api/collab/models"
	"star_commerce/internal/common"
	"star_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkService xử lý CRUD work (dữ liệu hiệu quả nội dung).
type WorkService struct {
	*basesvc.BaseServiceMongoImpl[collabmodels.Work]
}

// NewWorkService tạo WorkService mới.
func NewWorkService() (*WorkService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Works)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Works, common.ErrNotFound)
	}
	return &WorkService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[collabmodels.Work](coll),
	}, nil
}

// FindByCollaborationIds trả về map collaborationId → Work (quan hệ 1:1).
func (s *WorkService) FindByCollaborationIds(ctx context.Context, collabIDs []primitive.ObjectID) (map[primitive.ObjectID]collabmodels.Work, error) {
	if len(collabIDs) == 0 {
		return map[primitive.ObjectID]collabmodels.Work{}, nil
	}
	works, err := s.Find(ctx, bson.M{"collaborationId": bson.M{"$in": collabIDs}}, nil)
	if err != nil {
		return nil, err
	}
	result := make(map[primitive.ObjectID]collabmodels.Work, len(works))
	for _, w := range works {
		result[w.CollaborationId] = w
	}
	return result, nil
}
