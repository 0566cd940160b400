package dto

import "github.com/RationSeva/ration_service/internal/domain"

type CardApplication struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	FamilyMembers int    `json:"family_members"`
	Aadhaar       string `json:"aadhaar"`
	IncomeProof   string `json:"income_proof"` // base64
	Photo         string `json:"photo"`        // base64
}

// CardUpdate is a sparse patch: nil fields are left unchanged.
type CardUpdate struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	FamilyMembers *int    `json:"family_members,omitempty"`
	Aadhaar       *string `json:"aadhaar,omitempty"`
	IncomeProof   *string `json:"income_proof,omitempty"`
	Photo         *string `json:"photo,omitempty"`
}

type VerificationOutcome struct {
	Result  string `json:"result"` // genuine | fake | error
	Details string `json:"details"`
}

type ApplyResponse struct {
	Message        string               `json:"message"`
	Card           *domain.RationCard   `json:"card"`
	AIVerification *VerificationOutcome `json:"ai_verification"`
}

type ApproveResponse struct {
	Message    string `json:"message"`
	CardNumber string `json:"card_number"`
}
