package derive

import (
	"testing"
	"time"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
)

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func productExpiringIn(days int) model.Product {
	return model.Product{
		ID:        "p",
		MinExpiry: testNow.AddDate(0, 0, days),
	}
}

func TestClassifyStatusBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want Status
	}{
		{-1, StatusExpiringSoon},
		{0, StatusExpiringSoon},
		{29, StatusExpiringSoon},
		{30, StatusAtRisk}, // boundary falls in the less urgent bucket
		{31, StatusAtRisk},
		{89, StatusAtRisk},
		{90, StatusHealthy},
		{91, StatusHealthy},
		{365, StatusHealthy},
	}

	for _, tc := range cases {
		got := ClassifyStatus(productExpiringIn(tc.days), testNow)
		if got != tc.want {
			t.Errorf("days=%d: got %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestClassifyStatusIsTotal(t *testing.T) {
	valid := map[Status]bool{StatusHealthy: true, StatusAtRisk: true, StatusExpiringSoon: true}
	for days := -500; days <= 500; days += 7 {
		got := ClassifyStatus(productExpiringIn(days), testNow)
		if !valid[got] {
			t.Fatalf("days=%d: unexpected status %q", days, got)
		}
	}
}

func TestDaysUntilTruncates(t *testing.T) {
	// 29 days and 23 hours is still 29 whole days.
	target := testNow.Add(29*24*time.Hour + 23*time.Hour)
	if got := DaysUntil(testNow, target); got != 29 {
		t.Fatalf("got %d, want 29", got)
	}

	// Two days in the past.
	if got := DaysUntil(testNow, testNow.AddDate(0, 0, -2)); got != -2 {
		t.Fatalf("got %d, want -2", got)
	}
}
