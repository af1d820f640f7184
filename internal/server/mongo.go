package server

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

const (
	mongoDatabase   = "gensudoku"
	mongoCollection = "puzzles"
)

// mongoPuzzle is the persisted document shape. Grids are stored as 81-digit
// strings so documents stay readable in the shell.
type mongoPuzzle struct {
	ID         string    `bson:"_id"`
	Seed       int64     `bson:"seed"`
	ExtraHints int       `bson:"extra_hints"`
	Grid       string    `bson:"grid"`
	Solution   string    `bson:"solution"`
	Hints      int       `bson:"hints"`
	CreatedAt  time.Time `bson:"created_at"`
}

// MongoStore archives puzzles in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB instance named by uri
// (e.g. "mongodb://localhost:27017") and verifies the connection.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

// Save upserts the puzzle document keyed by its id.
func (s *MongoStore) Save(ctx context.Context, p *Puzzle) error {
	doc := mongoPuzzle{
		ID:         p.ID,
		Seed:       p.Seed,
		ExtraHints: p.ExtraHints,
		Grid:       p.Grid.Compact(),
		Solution:   p.Solution.Compact(),
		Hints:      p.Grid.CountFilled(),
		CreatedAt:  p.CreatedAt,
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

// Load retrieves a puzzle by id.
func (s *MongoStore) Load(ctx context.Context, id string) (*Puzzle, error) {
	var doc mongoPuzzle
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	grid, err := sudoku.Parse(doc.Grid)
	if err != nil {
		return nil, err
	}
	solution, err := sudoku.Parse(doc.Solution)
	if err != nil {
		return nil, err
	}
	return &Puzzle{
		ID:         doc.ID,
		Seed:       doc.Seed,
		ExtraHints: doc.ExtraHints,
		Grid:       grid,
		Solution:   solution,
		CreatedAt:  doc.CreatedAt,
	}, nil
}

// List returns metadata for all stored puzzles, newest first.
func (s *MongoStore) List(ctx context.Context) ([]PuzzleMeta, error) {
	opts := options.Find().
		SetProjection(bson.M{"seed": 1, "hints": 1, "created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var metas []PuzzleMeta
	for cursor.Next(ctx) {
		var doc mongoPuzzle
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		metas = append(metas, PuzzleMeta{
			ID:        doc.ID,
			Seed:      doc.Seed,
			Hints:     doc.Hints,
			CreatedAt: doc.CreatedAt,
		})
	}
	return metas, cursor.Err()
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
