package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/JosephJoshua/posad/internal/core/aggregation"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"gopkg.in/yaml.v3"
)

// Offset is a calendar distance from today.
type Offset struct {
	Months int `yaml:"months"`
	Weeks  int `yaml:"weeks"`
	Days   int `yaml:"days"`
}

// From returns t moved forward by o. Month steps clamp to the last day of
// the target month, so Jan 31 plus one month is Feb 28 or 29.
func (o Offset) From(t time.Time) time.Time {
	if o.Months != 0 {
		y, m, d := t.Date()
		first := time.Date(y, m+time.Month(o.Months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		if last := first.AddDate(0, 1, -1).Day(); d > last {
			d = last
		}
		t = first.AddDate(0, 0, d-1)
	}
	return t.AddDate(0, 0, o.Weeks*7+o.Days)
}

// Tier selects products expiring between Start and End days from today and
// notifies each of them at most once per Cooldown days.
type Tier struct {
	Name     string `yaml:"name"`
	Start    Offset `yaml:"start"`
	End      Offset `yaml:"end"`
	Cooldown int    `yaml:"cooldown_days"`
}

// Query builds the store query for this tier. The window spans whole days in
// now's location.
func (t Tier) Query(now time.Time) storage.ExpiringQuery {
	return storage.ExpiringQuery{
		Start:          aggregation.StartOf(t.Start.From(now), aggregation.GranularityDay),
		End:            aggregation.EndOf(t.End.From(now), aggregation.GranularityDay),
		NotifiedBefore: aggregation.StartOf(now.AddDate(0, 0, -t.Cooldown), aggregation.GranularityDay),
	}
}

// DefaultTiers returns the built-in schedule: daily for the next three days,
// weekly up to a week out, monthly up to a month out.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "within_3_days", Start: Offset{}, End: Offset{Days: 3}, Cooldown: 1},
		{Name: "within_week", Start: Offset{Days: 4}, End: Offset{Weeks: 1}, Cooldown: 7},
		{Name: "within_month", Start: Offset{Weeks: 1, Days: 1}, End: Offset{Months: 1}, Cooldown: 30},
	}
}

type tierFile struct {
	Tiers []Tier `yaml:"tiers"`
}

// LoadTiers reads tiers from a YAML file. An empty path yields DefaultTiers.
func LoadTiers(path string) ([]Tier, error) {
	if path == "" {
		return DefaultTiers(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tier file %s: %w", path, err)
	}

	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing tier file %s: %w", path, err)
	}
	if len(f.Tiers) == 0 {
		return nil, fmt.Errorf("tier file %s defines no tiers", path)
	}

	if err := ValidateTiers(f.Tiers); err != nil {
		return nil, fmt.Errorf("tier file %s: %w", path, err)
	}
	return f.Tiers, nil
}

// ValidateTiers checks names are unique and each window is well formed.
func ValidateTiers(tiers []Tier) error {
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]struct{}, len(tiers))

	for _, t := range tiers {
		if t.Name == "" {
			return fmt.Errorf("tier name must not be empty")
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("tier %q: duplicate name", t.Name)
		}
		seen[t.Name] = struct{}{}

		if t.Cooldown < 1 {
			return fmt.Errorf("tier %q: cooldown_days must be at least 1", t.Name)
		}
		if t.End.From(ref).Before(t.Start.From(ref)) {
			return fmt.Errorf("tier %q: end is before start", t.Name)
		}
	}
	return nil
}
