package interfaces

import (
	"context"

	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
)

// Verifier classifies an application as genuine, fake or error.
// Implementations must not fail the caller: adapter errors come back as
// the "error" classification with the error text as details.
type Verifier interface {
	Verify(ctx context.Context, card *domain.RationCard) *dto.VerificationOutcome
}
