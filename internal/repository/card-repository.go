package repository

import (
	"context"
	"errors"
	"log"

	"github.com/RationSeva/ration_service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listCardsLimit = 1000

type CardRepository interface {
	CreateCard(ctx context.Context, card *domain.RationCard) error
	FindCardByID(ctx context.Context, id string) (*domain.RationCard, error)
	FindCardByUserID(ctx context.Context, userID string) (*domain.RationCard, error)
	FindActiveCardByUserID(ctx context.Context, userID string) (*domain.RationCard, error)
	ListCards(ctx context.Context) ([]domain.RationCard, error)
	UpdateCardFields(ctx context.Context, id string, fields bson.M) error
	DeleteCard(ctx context.Context, id string) error
}

type cardRepository struct {
	coll *mongo.Collection
}

func NewCardRepository(db *mongo.Database) CardRepository {
	return &cardRepository{coll: db.Collection("ration_cards")}
}

func (r *cardRepository) CreateCard(ctx context.Context, card *domain.RationCard) error {
	if card == nil {
		return errors.New("nil card")
	}

	if _, err := r.coll.InsertOne(ctx, card); err != nil {
		log.Printf("create card error: %v", err)
		return errors.New("failed to create card")
	}
	return nil
}

func (r *cardRepository) FindCardByID(ctx context.Context, id string) (*domain.RationCard, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *cardRepository) FindCardByUserID(ctx context.Context, userID string) (*domain.RationCard, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

// FindActiveCardByUserID matches only pending or approved cards: the ones
// that block a new application.
func (r *cardRepository) FindActiveCardByUserID(ctx context.Context, userID string) (*domain.RationCard, error) {
	return r.findOne(ctx, bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": []domain.CardStatus{domain.CardStatusPending, domain.CardStatusApproved}},
	})
}

func (r *cardRepository) findOne(ctx context.Context, filter bson.M) (*domain.RationCard, error) {
	card := &domain.RationCard{}

	if err := r.coll.FindOne(ctx, filter).Decode(card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		log.Printf("find card error: %v", err)
		return nil, errors.New("failed to find card")
	}

	return card, nil
}

func (r *cardRepository) ListCards(ctx context.Context) ([]domain.RationCard, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listCardsLimit))
	if err != nil {
		log.Printf("list cards error: %v", err)
		return nil, errors.New("failed to list cards")
	}
	defer cur.Close(ctx)

	cards := make([]domain.RationCard, 0)
	if err := cur.All(ctx, &cards); err != nil {
		log.Printf("decode cards error: %v", err)
		return nil, errors.New("failed to list cards")
	}
	return cards, nil
}

// UpdateCardFields applies a sparse $set. A missing id is a silent no-op,
// matching mongo's update-by-filter semantics.
func (r *cardRepository) UpdateCardFields(ctx context.Context, id string, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}

	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields}); err != nil {
		log.Printf("update card error: %v", err)
		return errors.New("failed to update card")
	}
	return nil
}

func (r *cardRepository) DeleteCard(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Printf("delete card error: %v", err)
		return errors.New("failed to delete card")
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
