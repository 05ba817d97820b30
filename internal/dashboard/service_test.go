package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type stubStatsRepo struct {
	campaignCounts map[string]int64
	bookingCounts  map[string]int64
	spend          decimal.Decimal
	err            error
}

func (s *stubStatsRepo) CountCampaigns(_ context.Context, status *enums.CampaignStatus) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	key := "all"
	if status != nil {
		key = string(*status)
	}
	return s.campaignCounts[key], nil
}

func (s *stubStatsRepo) CountBookings(_ context.Context, status *enums.BookingStatus) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	key := "all"
	if status != nil {
		key = string(*status)
	}
	return s.bookingCounts[key], nil
}

func (s *stubStatsRepo) SumBookingCosts(_ context.Context) (decimal.Decimal, error) {
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.spend, nil
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil)
	if err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestStatsAggregates(t *testing.T) {
	repo := &stubStatsRepo{
		campaignCounts: map[string]int64{"all": 5, "in_progress": 2},
		bookingCounts:  map[string]int64{"all": 12, "pending": 4, "completed": 3},
		spend:          decimal.RequireFromString("185000.50"),
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCampaigns != 5 {
		t.Fatalf("expected 5 campaigns, got %d", stats.TotalCampaigns)
	}
	if stats.ActiveCampaigns != 2 {
		t.Fatalf("expected 2 active campaigns, got %d", stats.ActiveCampaigns)
	}
	if stats.TotalBookings != 12 {
		t.Fatalf("expected 12 bookings, got %d", stats.TotalBookings)
	}
	if stats.PendingBookings != 4 {
		t.Fatalf("expected 4 pending bookings, got %d", stats.PendingBookings)
	}
	if stats.CompletedBookings != 3 {
		t.Fatalf("expected 3 completed bookings, got %d", stats.CompletedBookings)
	}
	if !stats.TotalSpend.Equal(decimal.RequireFromString("185000.50")) {
		t.Fatalf("expected exact spend, got %s", stats.TotalSpend)
	}
}

func TestStatsEmptySpendSerializesAsZeroString(t *testing.T) {
	repo := &stubStatsRepo{
		campaignCounts: map[string]int64{},
		bookingCounts:  map[string]int64{},
		spend:          decimal.Zero,
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"total_spend":"0"`) {
		t.Fatalf("expected total_spend \"0\", got %s", raw)
	}
}

func TestStatsDependencyError(t *testing.T) {
	svc, err := NewService(&stubStatsRepo{err: errors.New("boom")})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Stats(context.Background())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}
