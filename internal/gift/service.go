package gift

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/metrics"
	"github.com/gamevault/backend/internal/repository"
)

// Service creates and redeems game gifts
type Service interface {
	ListSent(ctx context.Context, senderID string) ([]domain.Gift, error)
	Create(ctx context.Context, senderID, recipientEmail string, gameID int, message string) (*domain.Gift, error)
	Redeem(ctx context.Context, giftCode string) (*domain.Gift, error)
}

type service struct {
	repo repository.Gift
	now  func() time.Time
}

// NewService creates a new gift service
func NewService(repo repository.Gift) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) ListSent(ctx context.Context, senderID string) ([]domain.Gift, error) {
	if senderID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.repo.ListSent(ctx, senderID)
}

func (s *service) Create(ctx context.Context, senderID, recipientEmail string, gameID int, message string) (*domain.Gift, error) {
	if senderID == "" || gameID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	recipientEmail = strings.TrimSpace(strings.ToLower(recipientEmail))
	if recipientEmail == "" || !strings.Contains(recipientEmail, "@") {
		return nil, domain.ErrInvalidInput
	}

	code, err := generateGiftCode()
	if err != nil {
		return nil, fmt.Errorf("generate gift code: %w", err)
	}

	gift := &domain.Gift{
		SenderID:       senderID,
		RecipientEmail: recipientEmail,
		GameID:         gameID,
		GiftCode:       code,
		Message:        strings.TrimSpace(message),
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, gift); err != nil {
		return nil, err
	}

	metrics.GiftsCreated.Inc()
	slog.Info(LogMsgGiftCreated,
		"sender_id", senderID,
		"game_id", gameID)
	return gift, nil
}

func (s *service) Redeem(ctx context.Context, giftCode string) (*domain.Gift, error) {
	giftCode = strings.TrimSpace(strings.ToUpper(giftCode))
	if giftCode == "" {
		return nil, domain.ErrInvalidInput
	}

	gift, err := s.repo.Redeem(ctx, giftCode, s.now())
	if err != nil {
		return nil, err
	}

	metrics.GiftsRedeemed.Inc()
	slog.Info(LogMsgGiftRedeemed,
		"gift_id", gift.ID,
		"game_id", gift.GameID)
	return gift, nil
}

// codeAlphabet omits characters that are easy to misread (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeSegments = 3
const codeSegmentLen = 4

// generateGiftCode produces a code like GIFT-XXXX-XXXX-XXXX.
func generateGiftCode() (string, error) {
	raw := make([]byte, codeSegments*codeSegmentLen)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("GIFT")
	for i, c := range raw {
		if i%codeSegmentLen == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(codeAlphabet[int(c)%len(codeAlphabet)])
	}
	return b.String(), nil
}
