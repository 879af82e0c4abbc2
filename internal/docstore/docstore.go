// Package docstore holds the curated challenge documents in MongoDB.
// Documents are hand-written snippet pairs, used when the AI generator
// is over quota or unavailable.
package docstore

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snippetsCollection = "code_snippets"

// ErrNoSnippet is returned when no active document matches the requested
// stack and difficulty.
var ErrNoSnippet = fmt.Errorf("docstore: no snippet found")

// Snippet is one curated two-variant challenge document.
type Snippet struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	TechStack     string             `bson:"techStack"`
	Difficulty    string             `bson:"difficulty"`
	CodeA         string             `bson:"code1"`
	CodeB         string             `bson:"code2"`
	CorrectAnswer int                `bson:"correctAnswer"`
	Explanation   string             `bson:"explanation"`
	Tags          []string           `bson:"tags"`
	Category      string             `bson:"category"`
	IsActive      bool               `bson:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

// DocStore wraps the MongoDB snippet collection.
type DocStore struct {
	client   *mongo.Client
	snippets *mongo.Collection
}

// New connects to MongoDB and pings it before returning.
func New(ctx context.Context, uri, database string) (*DocStore, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("docstore: connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("docstore: ping: %w", err)
	}
	return &DocStore{
		client:   client,
		snippets: client.Database(database).Collection(snippetsCollection),
	}, nil
}

// Close disconnects from MongoDB.
func (d *DocStore) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func snippetFilter(techStack, difficulty string) bson.M {
	return bson.M{
		"isActive":   true,
		"techStack":  techStack,
		"difficulty": difficulty,
	}
}

// RandomSnippet picks a uniformly random active snippet matching the stack
// and difficulty. The pick is count-then-skip, so a concurrent insert can
// shift which document a given skip lands on; that is acceptable here.
func (d *DocStore) RandomSnippet(ctx context.Context, techStack, difficulty string, rng *rand.Rand) (Snippet, error) {
	filter := snippetFilter(techStack, difficulty)

	count, err := d.snippets.CountDocuments(ctx, filter)
	if err != nil {
		return Snippet{}, fmt.Errorf("docstore: count snippets: %w", err)
	}
	if count == 0 {
		return Snippet{}, ErrNoSnippet
	}

	skip := rng.Int63n(count)
	var s Snippet
	err = d.snippets.FindOne(ctx, filter, options.FindOne().SetSkip(skip)).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return Snippet{}, ErrNoSnippet
	}
	if err != nil {
		return Snippet{}, fmt.Errorf("docstore: find snippet: %w", err)
	}
	return s, nil
}

// InsertSnippet stores a new snippet document.
func (d *DocStore) InsertSnippet(ctx context.Context, s Snippet) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if _, err := d.snippets.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("docstore: insert snippet: %w", err)
	}
	return nil
}

// Seed inserts the starter snippets if the collection is empty.
func (d *DocStore) Seed(ctx context.Context) error {
	count, err := d.snippets.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("docstore: count for seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seedSnippets))
	for _, s := range seedSnippets {
		s.IsActive = true
		s.CreatedAt = time.Now().UTC()
		docs = append(docs, s)
	}
	if _, err := d.snippets.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("docstore: seed snippets: %w", err)
	}
	return nil
}
