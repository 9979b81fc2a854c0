package domain

import (
	"math"
	"time"
)

type DriverStatus string

const (
	DriverActive    DriverStatus = "active"
	DriverSuspended DriverStatus = "suspended"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// LicenseWarningWindow is how far ahead an expiring licence raises an alert.
const LicenseWarningWindow = 30 * 24 * time.Hour

// Anomaly is one flagged driving event.
type Anomaly struct {
	Date        time.Time `json:"date" yaml:"date"`
	Type        string    `json:"type" yaml:"type"`
	Severity    Severity  `json:"severity" yaml:"severity"`
	Description string    `json:"description" yaml:"description"`
}

// Driver profile with behaviour counters and training state.
// TotalDistanceKm is lifetime kilometres; IdlingMinutes and NightDrivingHours
// are monthly figures.
type Driver struct {
	ID              int          `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	EmployeeID      string       `json:"employeeId" yaml:"employeeId"`
	LicenseNumber   string       `json:"licenseNumber" yaml:"licenseNumber"`
	LicenseClass    string       `json:"licenseClass" yaml:"licenseClass"`
	LicenseExpiry   time.Time    `json:"licenseExpiry" yaml:"licenseExpiry"`
	Phone           string       `json:"phone" yaml:"phone"`
	Email           string       `json:"email" yaml:"email"`
	JoinDate        time.Time    `json:"joinDate" yaml:"joinDate"`
	AssignedVehicle string       `json:"assignedVehicle" yaml:"assignedVehicle"`
	Status          DriverStatus `json:"status" yaml:"status"`

	SafetyScore             int     `json:"safetyScore" yaml:"safetyScore"`
	TotalTrips              int     `json:"totalTrips" yaml:"totalTrips"`
	TotalDistanceKm         float64 `json:"totalDistance" yaml:"totalDistance"`
	TotalHours              float64 `json:"totalHours" yaml:"totalHours"`
	SpeedingViolations      int     `json:"speedingViolations" yaml:"speedingViolations"`
	HardBrakingEvents       int     `json:"hardBrakingEvents" yaml:"hardBrakingEvents"`
	RapidAccelerationEvents int     `json:"rapidAccelerationEvents" yaml:"rapidAccelerationEvents"`
	IdlingMinutes           int     `json:"idlingTime" yaml:"idlingTime"`
	NightDrivingHours       int     `json:"nightDriving" yaml:"nightDriving"`

	TrainingCompleted []string  `json:"trainingCompleted" yaml:"trainingCompleted"`
	TrainingPending   []string  `json:"trainingPending" yaml:"trainingPending"`
	LastTrainingDate  time.Time `json:"lastTrainingDate" yaml:"lastTrainingDate"`
	NextTrainingDue   time.Time `json:"nextTrainingDue" yaml:"nextTrainingDue"`

	RecentAnomalies []Anomaly `json:"recentAnomalies" yaml:"recentAnomalies"`
}

func (d Driver) NeedsTraining() bool { return len(d.TrainingPending) > 0 }

func (d Driver) HasCriticalAnomaly() bool {
	for _, a := range d.RecentAnomalies {
		if a.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// LicenseExpiringSoon reports whether the licence expires before now plus
// LicenseWarningWindow. Already expired licences count.
func (d Driver) LicenseExpiringSoon(now time.Time) bool {
	return d.LicenseExpiry.Before(now.Add(LicenseWarningWindow))
}

// CriticalAlert is raised for a critical anomaly or a licence about to lapse.
func (d Driver) CriticalAlert(now time.Time) bool {
	return d.HasCriticalAnomaly() || d.LicenseExpiringSoon(now)
}

type SafetyBand string

const (
	BandExcellent SafetyBand = "Excellent"
	BandGood      SafetyBand = "Good"
	BandFair      SafetyBand = "Fair"
	BandPoor      SafetyBand = "Poor"
)

// SafetyThresholds are the lowest scores of each band. Anything below Fair is Poor.
type SafetyThresholds struct {
	Excellent int `json:"excellent" yaml:"excellent"`
	Good      int `json:"good" yaml:"good"`
	Fair      int `json:"fair" yaml:"fair"`
}

var DefaultSafetyThresholds = SafetyThresholds{Excellent: 90, Good: 75, Fair: 60}

func (t SafetyThresholds) Band(score int) SafetyBand {
	switch {
	case score >= t.Excellent:
		return BandExcellent
	case score >= t.Good:
		return BandGood
	case score >= t.Fair:
		return BandFair
	default:
		return BandPoor
	}
}

// Fleet-wide driver figures shown on the driver behaviour page.
type DriverStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Suspended int `json:"suspended"`
	// Rounded mean over every driver.
	AverageSafetyScore int `json:"averageSafetyScore"`
	TotalAnomalies     int `json:"totalAnomalies"`
	TrainingPending    int `json:"trainingPending"`
	CriticalAlerts     int `json:"criticalAlerts"`
}

// SummarizeDrivers aggregates drivers as of now.
func SummarizeDrivers(drivers []Driver, now time.Time) DriverStats {
	var st DriverStats
	scoreSum := 0
	for _, d := range drivers {
		st.Total++
		scoreSum += d.SafetyScore
		switch d.Status {
		case DriverActive:
			st.Active++
		case DriverSuspended:
			st.Suspended++
		}
		st.TotalAnomalies += len(d.RecentAnomalies)
		if d.NeedsTraining() {
			st.TrainingPending++
		}
		if d.CriticalAlert(now) {
			st.CriticalAlerts++
		}
	}
	if st.Total > 0 {
		st.AverageSafetyScore = int(math.Round(float64(scoreSum) / float64(st.Total)))
	}
	return st
}
