package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RationSeva/ration_service/infra/queue"
	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
	"github.com/RationSeva/ration_service/internal/interfaces"
	"github.com/RationSeva/ration_service/internal/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type CardService interface {
	Apply(ctx context.Context, userID string, input dto.CardApplication) (*dto.ApplyResponse, error)
	GetMyCard(ctx context.Context, userID string) (*domain.RationCard, error)
	UpdateMyCard(ctx context.Context, userID string, patch dto.CardUpdate) error
	ListCards(ctx context.Context) ([]domain.RationCard, error)
	Approve(ctx context.Context, cardID string) (string, error)
	Reject(ctx context.Context, cardID string) error
	Delete(ctx context.Context, cardID string) error
}

type cardService struct {
	repo     repository.CardRepository
	verifier interfaces.Verifier
	producer interfaces.ProducerHandler
}

func NewCardService(
	repo repository.CardRepository,
	verifier interfaces.Verifier,
	producer interfaces.ProducerHandler,
) CardService {
	return &cardService{
		repo:     repo,
		verifier: verifier,
		producer: producer,
	}
}

func (s *cardService) Apply(ctx context.Context, userID string, input dto.CardApplication) (*dto.ApplyResponse, error) {
	if userID == "" {
		return nil, domain.ErrNotFound
	}

	// one active card per user, checked at submission time only
	if existing, err := s.repo.FindActiveCardByUserID(ctx, userID); err == nil && existing != nil {
		return nil, domain.ErrActiveApplication
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	card := &domain.RationCard{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          input.Name,
		Address:       input.Address,
		FamilyMembers: input.FamilyMembers,
		Aadhaar:       input.Aadhaar,
		IncomeProof:   input.IncomeProof,
		Photo:         input.Photo,
		Status:        domain.CardStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// verification never blocks persistence; only a fake classification
	// changes the stored status
	outcome := s.verifier.Verify(ctx, card)
	card.AIVerification = outcome.Details
	if outcome.Result == "fake" {
		card.Status = domain.CardStatusFake
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, err
	}

	s.publish(queue.EventCardSubmitted, card)

	return &dto.ApplyResponse{
		Message:        "Application submitted",
		Card:           card,
		AIVerification: outcome,
	}, nil
}

func (s *cardService) GetMyCard(ctx context.Context, userID string) (*domain.RationCard, error) {
	if userID == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.FindCardByUserID(ctx, userID)
}

// UpdateMyCard merges non-nil patch fields into the user's active card and
// refreshes updated_at. Status and verification result are untouched.
func (s *cardService) UpdateMyCard(ctx context.Context, userID string, patch dto.CardUpdate) error {
	card, err := s.repo.FindActiveCardByUserID(ctx, userID)
	if err != nil {
		return err
	}

	fields := bson.M{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.FamilyMembers != nil {
		fields["family_members"] = *patch.FamilyMembers
	}
	if patch.Aadhaar != nil {
		fields["aadhaar"] = *patch.Aadhaar
	}
	if patch.IncomeProof != nil {
		fields["income_proof"] = *patch.IncomeProof
	}
	if patch.Photo != nil {
		fields["photo"] = *patch.Photo
	}
	fields["updated_at"] = time.Now().UTC()

	return s.repo.UpdateCardFields(ctx, card.ID, fields)
}

func (s *cardService) ListCards(ctx context.Context) ([]domain.RationCard, error) {
	return s.repo.ListCards(ctx)
}

// Approve assigns a fresh card number on every call, re-approval included.
func (s *cardService) Approve(ctx context.Context, cardID string) (string, error) {
	card, err := s.repo.FindCardByID(ctx, cardID)
	if err != nil {
		return "", err
	}

	cardNumber := GenerateCardNumber()

	fields := bson.M{
		"status":      domain.CardStatusApproved,
		"card_number": cardNumber,
		"updated_at":  time.Now().UTC(),
	}
	if err := s.repo.UpdateCardFields(ctx, card.ID, fields); err != nil {
		return "", err
	}

	card.Status = domain.CardStatusApproved
	card.CardNumber = cardNumber
	s.publish(queue.EventCardApproved, card)

	return cardNumber, nil
}

// Reject is an unconditional update: a missing id silently no-ops.
func (s *cardService) Reject(ctx context.Context, cardID string) error {
	fields := bson.M{
		"status":     domain.CardStatusRejected,
		"updated_at": time.Now().UTC(),
	}
	if err := s.repo.UpdateCardFields(ctx, cardID, fields); err != nil {
		return err
	}

	s.publish(queue.EventCardRejected, &domain.RationCard{ID: cardID, Status: domain.CardStatusRejected})
	return nil
}

func (s *cardService) Delete(ctx context.Context, cardID string) error {
	return s.repo.DeleteCard(ctx, cardID)
}

func (s *cardService) publish(event string, card *domain.RationCard) {
	if s.producer == nil {
		return
	}
	payload := fmt.Sprintf(
		`{"card_id":"%s","user_id":"%s","status":"%s"}`,
		card.ID, card.UserID, card.Status,
	)
	_ = s.producer.PublishMessage([]byte(event), []byte(payload))
}

// GenerateCardNumber produces "RC" plus the first 8 characters of a random
// uuid, upper-cased.
func GenerateCardNumber() string {
	return "RC" + strings.ToUpper(uuid.NewString()[:8])
}
