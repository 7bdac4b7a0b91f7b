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
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// CollabService xử lý CRUD collaboration.
type CollabService struct {
	*basesvc.BaseServiceMongoImpl[collabmodels.Collaboration]
}

// NewCollabService tạo CollabService mới.
func NewCollabService() (*CollabService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Collaborations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Collaborations, common.ErrNotFound)
	}
	return &CollabService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[collabmodels.Collaboration](coll),
	}, nil
}

// FindByProjectIds trả về collaboration của các project, theo orderDate tăng dần.
// Danh sách project rỗng: trả về tất cả.
func (s *CollabService) FindByProjectIds(ctx context.Context, projectIDs []primitive.ObjectID) ([]collabmodels.Collaboration, error) {
	filter := bson.M{}
	if len(projectIDs) > 0 {
		filter["projectId"] = bson.M{"$in": projectIDs}
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "orderDate", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// FindByProjectId trả về collaboration của một project.
func (s *CollabService) FindByProjectId(ctx context.Context, projectID primitive.ObjectID) ([]collabmodels.Collaboration, error) {
	return s.FindByProjectIds(ctx, []primitive.ObjectID{projectID})
}
