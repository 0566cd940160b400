package domain

import "time"

type CardStatus string

const (
	CardStatusPending  CardStatus = "pending"
	CardStatusApproved CardStatus = "approved" // admin approved, card number assigned
	CardStatusRejected CardStatus = "rejected"
	CardStatusFake     CardStatus = "fake" // forced by AI verification
)

type RationCard struct {
	ID             string     `bson:"id" json:"id"`
	UserID         string     `bson:"user_id" json:"user_id"`
	CardNumber     string     `bson:"card_number,omitempty" json:"card_number,omitempty"`
	Name           string     `bson:"name" json:"name"`
	Address        string     `bson:"address" json:"address"`
	FamilyMembers  int        `bson:"family_members" json:"family_members"`
	Aadhaar        string     `bson:"aadhaar" json:"aadhaar"`
	IncomeProof    string     `bson:"income_proof" json:"income_proof"` // base64
	Photo          string     `bson:"photo" json:"photo"`               // base64
	Status         CardStatus `bson:"status" json:"status"`
	AIVerification string     `bson:"ai_verification_result,omitempty" json:"ai_verification_result,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
}

// IsActive reports whether the card blocks a new application by the same user.
func (c *RationCard) IsActive() bool {
	return c.Status == CardStatusPending || c.Status == CardStatusApproved
}
