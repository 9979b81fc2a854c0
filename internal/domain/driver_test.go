package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSafetyBand(t *testing.T) {
	tests := []struct {
		score int
		want  SafetyBand
	}{
		{score: 100, want: BandExcellent},
		{score: 90, want: BandExcellent},
		{score: 89, want: BandGood},
		{score: 75, want: BandGood},
		{score: 74, want: BandFair},
		{score: 60, want: BandFair},
		{score: 59, want: BandPoor},
		{score: 0, want: BandPoor},
	}

	for _, tt := range tests {
		if got := DefaultSafetyThresholds.Band(tt.score); got != tt.want {
			t.Errorf("Band(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}

	strict := SafetyThresholds{Excellent: 95, Good: 85, Fair: 70}
	if got := strict.Band(90); got != BandGood {
		t.Fatalf("custom Band(90) = %q, want Good", got)
	}
}

func TestLicenseExpiringSoon(t *testing.T) {
	d := Driver{LicenseExpiry: date(2025, time.January, 10)}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "well ahead", now: date(2024, time.November, 1), want: false},
		{name: "exactly thirty days", now: date(2024, time.December, 11), want: false},
		{name: "one second inside window", now: date(2024, time.December, 11).Add(time.Second), want: true},
		{name: "expiry day", now: date(2025, time.January, 10), want: true},
		{name: "already expired", now: date(2025, time.March, 1), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.LicenseExpiringSoon(tt.now); got != tt.want {
				t.Fatalf("LicenseExpiringSoon(%s) = %v, want %v", tt.now.Format(time.RFC3339), got, tt.want)
			}
		})
	}
}

func TestCriticalAlert(t *testing.T) {
	now := date(2024, time.December, 1)
	far := date(2026, time.January, 1)

	calm := Driver{LicenseExpiry: far, RecentAnomalies: []Anomaly{{Severity: SeverityHigh}}}
	if calm.CriticalAlert(now) {
		t.Fatal("high severity with a valid licence should not alert")
	}

	critical := Driver{LicenseExpiry: far, RecentAnomalies: []Anomaly{{Severity: SeverityLow}, {Severity: SeverityCritical}}}
	if !critical.CriticalAlert(now) {
		t.Fatal("critical anomaly should alert")
	}

	expiring := Driver{LicenseExpiry: date(2024, time.December, 20)}
	if !expiring.CriticalAlert(now) {
		t.Fatal("licence expiring in 19 days should alert")
	}
}

func TestSummarizeDrivers(t *testing.T) {
	now := date(2024, time.December, 1)
	far := date(2026, time.January, 1)

	drivers := []Driver{
		{Status: DriverActive, SafetyScore: 92, LicenseExpiry: far, RecentAnomalies: make([]Anomaly, 2)},
		{Status: DriverActive, SafetyScore: 78, LicenseExpiry: far, TrainingPending: []string{"Eco-Driving"}},
		{Status: DriverSuspended, SafetyScore: 65, LicenseExpiry: date(2024, time.November, 30),
			TrainingPending: []string{"Safety Protocols"}, RecentAnomalies: []Anomaly{{Severity: SeverityCritical}}},
	}

	got := SummarizeDrivers(drivers, now)
	want := DriverStats{
		Total:              3,
		Active:             2,
		Suspended:          1,
		AverageSafetyScore: 78, // 235 / 3 = 78.33
		TotalAnomalies:     3,
		TrainingPending:    2,
		CriticalAlerts:     1,
	}
	if got != want {
		t.Fatalf("SummarizeDrivers = %+v, want %+v", got, want)
	}

	if empty := SummarizeDrivers(nil, now); empty != (DriverStats{}) {
		t.Fatalf("empty = %+v, want zero", empty)
	}
}

func TestSeverityValid(t *testing.T) {
	if !SeverityCritical.Valid() || Severity("urgent").Valid() {
		t.Fatal("unexpected severity validity")
	}
}
