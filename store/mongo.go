package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"unitrade/models"
)

// MongoStore persists users and transactions in a MongoDB database.
type MongoStore struct {
	users  *mongo.Collection
	ledger *mongo.Collection
}

// NewMongoStore wires the collections and ensures the indexes the
// repositories rely on: a unique index on users.email and a descending
// date index for history reads.
func NewMongoStore(ctx context.Context, database *mongo.Database) (*MongoStore, error) {
	s := &MongoStore{
		users:  database.Collection("users"),
		ledger: database.Collection("transactions"),
	}

	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	_, err = s.ledger.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger index: %w", err)
	}

	return s, nil
}

func (s *MongoStore) Users() UserRepository               { return (*mongoUsers)(s) }
func (s *MongoStore) Transactions() TransactionRepository { return (*mongoLedger)(s) }

type mongoUsers MongoStore

func (r *mongoUsers) Create(ctx context.Context, user *models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoUsers) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

type mongoLedger MongoStore

// transactionDoc is the persisted shape of a Transaction. Decimal
// amounts are stored as strings to keep them exact.
type transactionDoc struct {
	ID                 string    `bson:"id"`
	UserID             string    `bson:"userId"`
	Type               string    `bson:"type"`
	AssetSymbol        string    `bson:"assetSymbol"`
	Quantity           string    `bson:"quantity"`
	PriceAtTransaction string    `bson:"priceAtTransaction"`
	FiatEquivalent     string    `bson:"fiatEquivalent"`
	Date               time.Time `bson:"date"`
}

func toDoc(tx *models.Transaction) transactionDoc {
	return transactionDoc{
		ID:                 tx.ID,
		UserID:             tx.UserID,
		Type:               tx.Type,
		AssetSymbol:        tx.AssetSymbol,
		Quantity:           tx.Quantity.String(),
		PriceAtTransaction: tx.PriceAtTransaction.String(),
		FiatEquivalent:     tx.FiatEquivalent.String(),
		Date:               tx.Date,
	}
}

func fromDoc(doc transactionDoc) (models.Transaction, error) {
	quantity, err := decimal.NewFromString(doc.Quantity)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad quantity on transaction %s: %w", doc.ID, err)
	}
	price, err := decimal.NewFromString(doc.PriceAtTransaction)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad price on transaction %s: %w", doc.ID, err)
	}
	fiat, err := decimal.NewFromString(doc.FiatEquivalent)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad fiat equivalent on transaction %s: %w", doc.ID, err)
	}
	return models.Transaction{
		ID:                 doc.ID,
		UserID:             doc.UserID,
		Type:               doc.Type,
		AssetSymbol:        doc.AssetSymbol,
		Quantity:           quantity,
		PriceAtTransaction: price,
		FiatEquivalent:     fiat,
		Date:               doc.Date,
	}, nil
}

func (r *mongoLedger) Create(ctx context.Context, tx *models.Transaction) error {
	_, err := r.ledger.InsertOne(ctx, toDoc(tx))
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

func (r *mongoLedger) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.ledger.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer cursor.Close(ctx)

	txs := make([]models.Transaction, 0)
	for cursor.Next(ctx) {
		var doc transactionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode transaction: %w", err)
		}
		tx, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return txs, nil
}
