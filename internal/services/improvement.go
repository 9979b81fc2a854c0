package services

import "fleet-route-service/internal/domain"

// Fractional reductions applied to the baseline for one priority.
type ImprovementProfile struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Fuel     float64 `json:"fuel" yaml:"fuel"`
	Time     float64 `json:"time" yaml:"time"`
}

// Profiles indexes improvement profiles by priority.
type Profiles map[domain.Priority]ImprovementProfile

var DefaultProfiles = Profiles{
	domain.PriorityBalanced: {Distance: 0.12, Fuel: 0.15, Time: 0.10},
	domain.PriorityFuel:     {Distance: 0.08, Fuel: 0.22, Time: 0.05},
	domain.PriorityDistance: {Distance: 0.18, Fuel: 0.12, Time: 0.08},
	domain.PriorityTime:     {Distance: 0.10, Fuel: 0.10, Time: 0.18},
	domain.PriorityCarbon:   {Distance: 0.15, Fuel: 0.20, Time: 0.12},
}

// Lookup returns the profile for pr. Unknown priorities get the balanced
// profile of p, or of DefaultProfiles when p has none.
func (p Profiles) Lookup(pr domain.Priority) ImprovementProfile {
	if prof, ok := p[pr]; ok {
		return prof
	}
	if prof, ok := p[domain.PriorityBalanced]; ok {
		return prof
	}
	return DefaultProfiles[domain.PriorityBalanced]
}
