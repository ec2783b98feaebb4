package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-admin/db"
	"blog-admin/models"
)

const blogSequence = "blogs"

type BlogRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewBlogRepository(d *mongo.Database) *BlogRepository {
	return &BlogRepository{db: d, col: d.Collection(db.BlogsCollection)}
}

// Insert assigns the next sequential id and timestamps, then inserts b.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	id, err := db.NextSequence(ctx, r.db, blogSequence)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err = r.col.InsertOne(ctx, b)
	return err
}

// FindByID returns a blog by its numeric id
func (r *BlogRepository) FindByID(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

// FindByRedirectLink returns the first blog pointing at link
func (r *BlogRepository) FindByRedirectLink(ctx context.Context, link string) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"redirect_link": link}).Decode(&b); err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

// List returns blogs matching the search, newest first, with the total match count.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(opt.Search); s != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": re},
			{"text_summary": re},
		}
	}
	if opt.Active != nil {
		filter["active"] = *opt.Active
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	skip := opt.skip()
	if skip >= total {
		return []models.Blog{}, total, nil
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(int64(opt.Limit)).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	results := make([]models.Blog, 0, opt.Limit)
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Update replaces the editable fields of b and bumps updated_at.
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) error {
	b.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateByID(ctx, b.ID, bson.M{
		"$set": bson.M{
			"title":         b.Title,
			"image":         b.Image,
			"text_summary":  b.TextSummary,
			"redirect_link": b.RedirectLink,
			"active":        b.Active,
			"updated_at":    b.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleActive flips the active flag in a single pipeline update and returns
// the updated document.
func (r *BlogRepository) ToggleActive(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "active", Value: bson.D{{Key: "$not", Value: bson.A{"$active"}}}},
			{Key: "updated_at", Value: time.Now().UTC()},
		}}},
	}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
