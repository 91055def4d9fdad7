package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// BusinessRules holds the restaurant's opening schedule and party limits.
// Weekdays use 0 = Sunday.
type BusinessRules struct {
	OpeningTime     string `yaml:"opening_time"`
	ClosingTime     string `yaml:"closing_time"`
	LastSeatingTime string `yaml:"last_seating_time"`
	ClosedDays      []int  `yaml:"closed_days"`
	MinPartySize    int    `yaml:"min_party_size"`
	MaxPartySize    int    `yaml:"max_party_size"`
}

func DefaultBusinessRules() BusinessRules {
	return BusinessRules{
		OpeningTime:     "10:30",
		ClosingTime:     "21:30",
		LastSeatingTime: "20:30",
		ClosedDays:      []int{int(time.Tuesday)},
		MinPartySize:    1,
		MaxPartySize:    20,
	}
}

// LoadBusinessRules returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func LoadBusinessRules(path string) (BusinessRules, error) {
	rules := DefaultBusinessRules()
	if path == "" {
		return rules, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return rules, fmt.Errorf("open business rules: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&rules); err != nil {
		return rules, fmt.Errorf("decode business rules %s: %w", path, err)
	}
	return rules, nil
}

// ClosedWeekdays converts ClosedDays to time.Weekday values.
func (r BusinessRules) ClosedWeekdays() []time.Weekday {
	days := make([]time.Weekday, 0, len(r.ClosedDays))
	for _, d := range r.ClosedDays {
		days = append(days, time.Weekday(d))
	}
	return days
}

func (r BusinessRules) Validate() error {
	opening, err := utils.ClockMinutes(r.OpeningTime)
	if err != nil {
		return fmt.Errorf("opening_time: %w", err)
	}
	closing, err := utils.ClockMinutes(r.ClosingTime)
	if err != nil {
		return fmt.Errorf("closing_time: %w", err)
	}
	last, err := utils.ClockMinutes(r.LastSeatingTime)
	if err != nil {
		return fmt.Errorf("last_seating_time: %w", err)
	}
	if opening >= closing {
		return fmt.Errorf("opening_time %s must be before closing_time %s", r.OpeningTime, r.ClosingTime)
	}
	if last < opening || last > closing {
		return fmt.Errorf("last_seating_time %s must fall between opening and closing", r.LastSeatingTime)
	}
	for _, d := range r.ClosedDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("closed_days: weekday %d out of range 0-6", d)
		}
	}
	if r.MinPartySize < 1 || r.MaxPartySize < r.MinPartySize {
		return fmt.Errorf("party size range %d-%d is invalid", r.MinPartySize, r.MaxPartySize)
	}
	return nil
}
