package repository

import (
	"context"
	"errors"
	"log"

	"github.com/RationSeva/ration_service/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRepository records OAuth session exchanges. Sessions are
// write-only here; nothing expires or reads them back.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *domain.Session) error
}

type sessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) SessionRepository {
	return &sessionRepository{coll: db.Collection("sessions")}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return errors.New("nil session")
	}

	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		log.Printf("create session error: %v", err)
		return errors.New("failed to create session")
	}
	return nil
}
