package services

import (
	"context"
	"errors"
	"time"

	"github.com/RationSeva/ration_service/internal/clients/googleauth"
	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
	"go.mongodb.org/mongo-driver/bson"
)

// ---------- users ----------

type memUserRepo struct {
	users map[string]*domain.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ListUsersByRole(_ context.Context, role string) ([]domain.User, error) {
	out := make([]domain.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

// ---------- sessions ----------

type memSessionRepo struct {
	sessions []*domain.Session
}

func (r *memSessionRepo) CreateSession(_ context.Context, session *domain.Session) error {
	cp := *session
	r.sessions = append(r.sessions, &cp)
	return nil
}

// ---------- cards ----------

type memCardRepo struct {
	cards map[string]*domain.RationCard // by id
}

func newMemCardRepo() *memCardRepo {
	return &memCardRepo{cards: map[string]*domain.RationCard{}}
}

func (r *memCardRepo) CreateCard(_ context.Context, card *domain.RationCard) error {
	cp := *card
	r.cards[card.ID] = &cp
	return nil
}

func (r *memCardRepo) FindCardByID(_ context.Context, id string) (*domain.RationCard, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCardRepo) FindCardByUserID(_ context.Context, userID string) (*domain.RationCard, error) {
	for _, c := range r.cards {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCardRepo) FindActiveCardByUserID(_ context.Context, userID string) (*domain.RationCard, error) {
	for _, c := range r.cards {
		if c.UserID == userID && c.IsActive() {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCardRepo) ListCards(_ context.Context) ([]domain.RationCard, error) {
	out := make([]domain.RationCard, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCardRepo) UpdateCardFields(_ context.Context, id string, fields bson.M) error {
	c, ok := r.cards[id]
	if !ok {
		return nil // mongo update-by-filter: missing id is a no-op
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "address":
			c.Address = v.(string)
		case "family_members":
			c.FamilyMembers = v.(int)
		case "aadhaar":
			c.Aadhaar = v.(string)
		case "income_proof":
			c.IncomeProof = v.(string)
		case "photo":
			c.Photo = v.(string)
		case "status":
			c.Status = v.(domain.CardStatus)
		case "card_number":
			c.CardNumber = v.(string)
		case "updated_at":
			c.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (r *memCardRepo) DeleteCard(_ context.Context, id string) error {
	if _, ok := r.cards[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.cards, id)
	return nil
}

// ---------- adapters ----------

type stubVerifier struct {
	outcome dto.VerificationOutcome
	called  int
}

func (v *stubVerifier) Verify(_ context.Context, _ *domain.RationCard) *dto.VerificationOutcome {
	v.called++
	cp := v.outcome
	return &cp
}

type stubExchanger struct {
	data *googleauth.SessionData
	err  error
}

func (e *stubExchanger) ExchangeSession(_ context.Context, _ string) (*googleauth.SessionData, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.data, nil
}

type stubSender struct {
	sent     []string // recipients in send order
	lastBody string
	failFor  map[string]bool // phone -> fail
}

func (s *stubSender) Send(to, body string) error {
	if s.failFor[to] {
		return errors.New("provider rejected message")
	}
	s.sent = append(s.sent, to)
	s.lastBody = body
	return nil
}

type recordProducer struct {
	keys []string
}

func (p *recordProducer) PublishMessage(key, _ []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}
