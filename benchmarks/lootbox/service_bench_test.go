package lootbox_bench

import (
	"context"
	"testing"
	"time"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/lootbox"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubRepository struct {
	box   *domain.LootBox
	items []domain.LootBoxItem
}

func newStubRepository() *StubRepository {
	items := make([]domain.LootBoxItem, 0, 50)
	for i := 1; i <= 50; i++ {
		items = append(items, domain.LootBoxItem{
			ID:          i,
			LootBoxID:   1,
			ItemType:    domain.ItemTypeCosmetic,
			ItemName:    "Frame",
			Probability: float64(i),
		})
	}
	return &StubRepository{
		box: &domain.LootBox{
			ID:            1,
			Name:          "Bench Crate",
			Rarity:        "common",
			CooldownHours: 24,
		},
		items: items,
	}
}

func (s *StubRepository) GetBox(ctx context.Context, boxID int) (*domain.LootBox, error) {
	return s.box, nil
}

func (s *StubRepository) GetBoxItems(ctx context.Context, boxID int) ([]domain.LootBoxItem, error) {
	return s.items, nil
}

func (s *StubRepository) GetCooldown(ctx context.Context, userID string, boxID int) (*domain.LootBoxCooldown, error) {
	return nil, nil // always eligible
}

func (s *StubRepository) ApplyOutcome(ctx context.Context, userID string, box *domain.LootBox, item domain.LootBoxItem, now time.Time) (time.Time, error) {
	return now.Add(time.Duration(box.CooldownHours) * time.Hour), nil
}

func (s *StubRepository) ListBoxes(ctx context.Context, userID string) ([]domain.LootBoxListing, error) {
	return []domain.LootBoxListing{{LootBox: *s.box, IsAvailable: true}}, nil
}

func (s *StubRepository) GetHistory(ctx context.Context, userID string, limit int) ([]domain.LootBoxHistoryEntry, error) {
	return nil, nil
}

// --- Benchmark Functions ---

// BenchmarkOpen_WideItemTable measures the full open path (eligibility check,
// weighted draw, outcome persistence) against a 50-item prize table.
func BenchmarkOpen_WideItemTable(b *testing.B) {
	svc := lootbox.NewService(newStubRepository(), nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Open(ctx, "bench-user", 1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkList measures the listing path including the history fetch.
func BenchmarkList(b *testing.B) {
	svc := lootbox.NewService(newStubRepository(), nil)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.List(ctx, "bench-user"); err != nil {
			b.Fatal(err)
		}
	}
}
