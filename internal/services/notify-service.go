package services

import (
	"context"
	"fmt"
	"log"

	"github.com/RationSeva/ration_service/internal/dto"
	"github.com/RationSeva/ration_service/internal/interfaces"
	"github.com/RationSeva/ration_service/internal/repository"
)

// distributeBatchLimit caps one distribution run; extra ids are dropped
// silently rather than rejected.
const distributeBatchLimit = 50

type NotifyService interface {
	Distribute(ctx context.Context, input dto.TokenDistribution) *dto.DistributionResult
}

type notifyService struct {
	userRepo repository.UserRepository
	sender   interfaces.SMSSender
}

func NewNotifyService(userRepo repository.UserRepository, sender interfaces.SMSSender) NotifyService {
	return &notifyService{
		userRepo: userRepo,
		sender:   sender,
	}
}

// Distribute sends the composed message to each recipient in input order.
// Delivery is best-effort: unknown users and users without a phone are
// skipped, provider failures are collected per recipient, and the batch
// never aborts early.
func (s *notifyService) Distribute(ctx context.Context, input dto.TokenDistribution) *dto.DistributionResult {
	userIDs := input.UserIDs
	if len(userIDs) > distributeBatchLimit {
		userIDs = userIDs[:distributeBatchLimit]
	}

	body := fmt.Sprintf("%s\nTime Slot: %s", input.Message, input.TimeSlot)

	sent := 0
	failed := make([]dto.DistributionFailure, 0)

	for _, id := range userIDs {
		user, err := s.userRepo.FindUserByID(ctx, id)
		if err != nil || user == nil || user.Phone == "" {
			continue
		}

		if err := s.sender.Send(user.Phone, body); err != nil {
			log.Printf("sms to user %s failed: %v", id, err)
			failed = append(failed, dto.DistributionFailure{UserID: id, Error: err.Error()})
			continue
		}
		sent++
	}

	return &dto.DistributionResult{
		Message:   fmt.Sprintf("Tokens sent to %d users", sent),
		SentCount: sent,
		Failed:    failed,
	}
}
