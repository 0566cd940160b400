package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(repo *memUserRepo, id, phone string) {
	repo.users[id] = &domain.User{
		ID:    id,
		Name:  "User " + id,
		Email: id + "@example.com",
		Phone: phone,
		Role:  domain.RoleUser,
	}
}

func TestDistribute(t *testing.T) {
	ctx := context.Background()

	t.Run("sends composed message to each recipient", func(t *testing.T) {
		repo := newMemUserRepo()
		seedUser(repo, "u1", "+911111111111")
		seedUser(repo, "u2", "+912222222222")
		sender := &stubSender{}
		svc := NewNotifyService(repo, sender)

		result := svc.Distribute(ctx, dto.TokenDistribution{
			UserIDs:  []string{"u1", "u2"},
			Message:  "Ration tokens available",
			TimeSlot: "10:00-12:00",
		})

		assert.Equal(t, 2, result.SentCount)
		assert.Empty(t, result.Failed)
		assert.Equal(t, []string{"+911111111111", "+912222222222"}, sender.sent)
		assert.Equal(t, "Ration tokens available\nTime Slot: 10:00-12:00", sender.lastBody)
	})

	t.Run("caps the batch at fifty ids", func(t *testing.T) {
		repo := newMemUserRepo()
		ids := make([]string, 0, 60)
		for i := 0; i < 60; i++ {
			id := fmt.Sprintf("u%02d", i)
			seedUser(repo, id, fmt.Sprintf("+9190000000%02d", i))
			ids = append(ids, id)
		}
		sender := &stubSender{}
		svc := NewNotifyService(repo, sender)

		result := svc.Distribute(ctx, dto.TokenDistribution{UserIDs: ids, Message: "m", TimeSlot: "t"})

		assert.Equal(t, 50, result.SentCount)
		assert.Len(t, sender.sent, 50)
		assert.Empty(t, result.Failed)
	})

	t.Run("skips unknown users and users without a phone", func(t *testing.T) {
		repo := newMemUserRepo()
		seedUser(repo, "u1", "")
		seedUser(repo, "u2", "+912222222222")
		sender := &stubSender{}
		svc := NewNotifyService(repo, sender)

		result := svc.Distribute(ctx, dto.TokenDistribution{
			UserIDs:  []string{"u1", "missing", "u2"},
			Message:  "m",
			TimeSlot: "t",
		})

		assert.Equal(t, 1, result.SentCount)
		assert.Empty(t, result.Failed) // skips are silent, never failures
		assert.Equal(t, []string{"+912222222222"}, sender.sent)
	})

	t.Run("provider failure is collected and the batch continues", func(t *testing.T) {
		repo := newMemUserRepo()
		seedUser(repo, "u1", "+911111111111")
		seedUser(repo, "u2", "+912222222222")
		seedUser(repo, "u3", "+913333333333")
		sender := &stubSender{failFor: map[string]bool{"+912222222222": true}}
		svc := NewNotifyService(repo, sender)

		result := svc.Distribute(ctx, dto.TokenDistribution{
			UserIDs:  []string{"u1", "u2", "u3"},
			Message:  "m",
			TimeSlot: "t",
		})

		assert.Equal(t, 2, result.SentCount)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "u2", result.Failed[0].UserID)
		assert.NotEmpty(t, result.Failed[0].Error)
		assert.Equal(t, "Tokens sent to 2 users", result.Message)
	})
}
