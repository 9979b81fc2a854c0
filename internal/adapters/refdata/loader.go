package refdata

import (
	"bytes"
	_ "embed"
	"errors"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fleet.yaml
var defaultDataset []byte

// Dataset is the static fixture data the dashboard is built on.
type Dataset struct {
	Vehicles          []domain.Vehicle              `yaml:"vehicles"`
	Locations         []domain.Location             `yaml:"locations"`
	Routes            []domain.Route                `yaml:"routes"`
	EmissionFactors   costmodel.EmissionFactors     `yaml:"emissionFactors"`
	Priorities        []domain.PriorityOption       `yaml:"priorities"`
	DefaultParameters domain.OptimizationParameters `yaml:"defaultParameters"`
	LiveVehicles      []domain.LiveVehicle          `yaml:"liveVehicles"`
	Drivers           []domain.Driver               `yaml:"drivers"`
	SafetyThresholds  domain.SafetyThresholds       `yaml:"safetyScoreThresholds"`
}

// Default returns the embedded Klang Valley dataset.
func Default() (*Dataset, error) {
	ds, err := Decode(defaultDataset)
	if err != nil {
		return nil, fmt.Errorf("load default dataset: %w", err)
	}
	return ds, nil
}

// Load reads a YAML (or JSON) dataset from path.
func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read %q: %w", path, err)
	}

	ds, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	return ds, nil
}

// Decode parses and validates a dataset.
// Unknown keys are rejected so typos in fixture files surface early.
func Decode(b []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	if len(ds.EmissionFactors) == 0 {
		ds.EmissionFactors = costmodel.DefaultEmissionFactors
	}
	if ds.SafetyThresholds == (domain.SafetyThresholds{}) {
		ds.SafetyThresholds = domain.DefaultSafetyThresholds
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Validate checks identifiers and numeric fields that the estimator relies on.
func (ds *Dataset) Validate() error {
	var errs []error

	vehicleIDs := make(map[int]struct{}, len(ds.Vehicles))
	for i, v := range ds.Vehicles {
		if v.ID <= 0 {
			errs = append(errs, fmt.Errorf("vehicle at index %d: invalid id %d", i+1, v.ID))
		}
		if _, ok := vehicleIDs[v.ID]; ok {
			errs = append(errs, fmt.Errorf("vehicle at index %d: duplicate id %d", i+1, v.ID))
		}
		vehicleIDs[v.ID] = struct{}{}

		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, fmt.Errorf("vehicle %d: name cannot be empty", v.ID))
		}
		if v.Capacity <= 0 {
			errs = append(errs, fmt.Errorf("vehicle %d: %w", v.ID, domain.ErrInvalidCapacity))
		}
		if v.CurrentLoad < 0 {
			errs = append(errs, fmt.Errorf("vehicle %d: %w", v.ID, domain.ErrInvalidLoad))
		}
	}

	names := make(map[string]struct{}, len(ds.Locations))
	for i, l := range ds.Locations {
		key := locationKey(l.Name)
		if key == "" {
			errs = append(errs, fmt.Errorf("location at index %d: name cannot be empty", i+1))
			continue
		}
		if _, ok := names[key]; ok {
			errs = append(errs, fmt.Errorf("location at index %d: duplicate name %q", i+1, l.Name))
		}
		names[key] = struct{}{}
	}

	routeIDs := make(map[int]struct{}, len(ds.Routes))
	for i, r := range ds.Routes {
		if _, ok := routeIDs[r.ID]; ok {
			errs = append(errs, fmt.Errorf("route at index %d: duplicate id %d", i+1, r.ID))
		}
		routeIDs[r.ID] = struct{}{}
	}

	driverIDs := make(map[int]struct{}, len(ds.Drivers))
	employeeIDs := make(map[string]struct{}, len(ds.Drivers))
	for i, d := range ds.Drivers {
		if d.ID <= 0 {
			errs = append(errs, fmt.Errorf("driver at index %d: invalid id %d", i+1, d.ID))
		}
		if _, ok := driverIDs[d.ID]; ok {
			errs = append(errs, fmt.Errorf("driver at index %d: duplicate id %d", i+1, d.ID))
		}
		driverIDs[d.ID] = struct{}{}

		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, fmt.Errorf("driver %d: name cannot be empty", d.ID))
		}
		emp := strings.ToLower(strings.TrimSpace(d.EmployeeID))
		if emp == "" {
			errs = append(errs, fmt.Errorf("driver %d: employeeId cannot be empty", d.ID))
		} else if _, ok := employeeIDs[emp]; ok {
			errs = append(errs, fmt.Errorf("driver %d: duplicate employeeId %q", d.ID, d.EmployeeID))
		}
		employeeIDs[emp] = struct{}{}

		if d.SafetyScore < 0 || d.SafetyScore > 100 {
			errs = append(errs, fmt.Errorf("driver %d: safety score %d out of range 0-100", d.ID, d.SafetyScore))
		}
		if d.LicenseExpiry.IsZero() {
			errs = append(errs, fmt.Errorf("driver %d: licenseExpiry is required", d.ID))
		}
		for j, a := range d.RecentAnomalies {
			if !a.Severity.Valid() {
				errs = append(errs, fmt.Errorf("driver %d anomaly %d: unknown severity %q", d.ID, j+1, a.Severity))
			}
		}
	}

	if t := ds.SafetyThresholds; t.Fair < 0 || t.Good <= t.Fair || t.Excellent <= t.Good {
		errs = append(errs, fmt.Errorf("safety thresholds must satisfy 0 <= fair < good < excellent, got %+v", t))
	}

	for ft, f := range ds.EmissionFactors {
		if f < 0 {
			errs = append(errs, fmt.Errorf("emission factor %q: must not be negative", ft))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}
	return nil
}

// locationKey folds case and whitespace so free-text parameters match fixtures.
func locationKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
