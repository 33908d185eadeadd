package user

import (
	"context"
	"time"

	"github.com/gotrabandhus/gotrabandhus/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements UserRepository on a MongoDB database. User IDs stay
// numeric across backends, so documents carry a sequence value allocated
// from a counters collection instead of an ObjectID.
type Mongo struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *Mongo {
	return &Mongo{
		users:    db.Collection("users"),
		counters: db.Collection("counters"),
	}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *Mongo) nextID(ctx context.Context) (uint64, error) {
	var doc struct {
		Seq uint64 `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "users"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (m *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	id, err := m.nextID(ctx)
	if err != nil {
		return nil, err
	}
	data.ID = id
	data.CreatedAt = time.Now()

	if _, err := m.users.InsertOne(ctx, data); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return data, nil
}

func (m *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}
	if filter.ID != 0 {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	var entity model.UserEntity
	if err := m.users.FindOne(ctx, query).Decode(&entity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (m *Mongo) Update(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	now := time.Now()
	data.UpdatedAt = &now

	if _, err := m.users.ReplaceOne(ctx, bson.M{"_id": data.ID}, data); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return data, nil
}
