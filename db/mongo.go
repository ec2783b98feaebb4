package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-admin/config"
)

const (
	BlogsCollection    = "blogs"
	CountersCollection = "counters"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig().Mongo
		d, err := Connect(ctx, cfg.URI, cfg.DBName)
		if err != nil {
			initErr = err
			return
		}
		client = d.Client()
		db = d
		config.Logger.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

// Connect dials uri, pings the primary and ensures indexes on dbName.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := cl.Connect(ctx); err != nil {
		return nil, err
	}
	// Ping to verify connection
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, err
	}
	d := cl.Database(dbName)
	if err := ensureIndexes(ctx, d); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, err
	}
	return d, nil
}

func Database() *mongo.Database { return db }

// Ping checks the primary is reachable. Used by /health.
func Ping(ctx context.Context) error {
	if db == nil {
		return mongo.ErrClientDisconnected
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Close disconnects the global client.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// NextSequence atomically increments counters.{_id: name}.seq and returns the new value.
func NextSequence(ctx context.Context, d *mongo.Database, name string) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := d.Collection(CountersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&out)
	if err != nil {
		return 0, err
	}
	return out.Seq, nil
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// blogs: redirect_link lookup for import de-duplication
	{
		if _, err := d.Collection(BlogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "redirect_link", Value: 1}},
			Options: options.Index().SetName("idx_redirect_link").SetSparse(true),
		}); err != nil {
			return err
		}
	}

	// blogs: admin list order
	{
		if _, err := d.Collection(BlogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		}); err != nil {
			return err
		}
	}

	// blogs: active filter
	{
		if _, err := d.Collection(BlogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "active", Value: 1}},
			Options: options.Index().SetName("idx_active"),
		}); err != nil {
			return err
		}
	}
	return nil
}
