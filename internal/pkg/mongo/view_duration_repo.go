package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ViewDurationRepo interface {
	SaveViewDuration(ctx context.Context, v *ViewDuration) error
	CountWatches(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]int64, error)
}

type viewDurationRepoImpl struct {
	col *mongo.Collection
}

func NewViewDurationRepo(db *mongo.Database) ViewDurationRepo {
	return &viewDurationRepoImpl{
		col: db.Collection(ViewDurationCollection),
	}
}

// SaveViewDuration append only
func (s *viewDurationRepoImpl) SaveViewDuration(ctx context.Context, v *ViewDuration) error {
	_, err := s.col.InsertOne(ctx, v)
	return err
}

// CountWatches number of duration records per post for the user
func (s *viewDurationRepoImpl) CountWatches(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id": userID,
			"post_id": bson.M{"$in": postIDs},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$post_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		PostID uint64 `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.PostID] = r.Count
	}
	return counts, nil
}
