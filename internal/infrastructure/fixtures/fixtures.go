// Package fixtures loads the demo data set used to populate an empty database.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var defaultDemo []byte

const dateLayout = "2006-01-02"

type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type Hackathon struct {
	Name            string          `yaml:"name"`
	TaskDescription string          `yaml:"task_description"`
	StartDate       string          `yaml:"start_date"`
	DurationDays    int             `yaml:"duration_days"`
	AmountMoney     decimal.Decimal `yaml:"amount_money"`
	Type            string          `yaml:"type"`
}

// Start parses StartDate as a UTC calendar date.
func (h Hackathon) Start() (time.Time, error) {
	return time.ParseInLocation(dateLayout, h.StartDate, time.UTC)
}

// Windows derives the registration and hack windows from the start date and
// duration: registration runs for a third of the duration, the hack starts two
// days later and lasts half of the duration.
func (h Hackathon) Windows() (regStart, regEnd, hackStart, hackEnd time.Time, err error) {
	regStart, err = h.Start()
	if err != nil {
		return
	}
	day := 24 * time.Hour
	regEnd = regStart.Add(time.Duration(h.DurationDays/3) * day)
	hackStart = regEnd.Add(2 * day)
	hackEnd = hackStart.Add(time.Duration(h.DurationDays/2) * day)
	return
}

type Demo struct {
	HackerNames         []string    `yaml:"hacker_names"`
	RolesPerHacker      Range       `yaml:"roles_per_hacker"`
	TeamNames           []string    `yaml:"team_names"`
	TeamMaxSize         Range       `yaml:"team_max_size"`
	WinnersPerHackathon int         `yaml:"winners_per_hackathon"`
	Hackathons          []Hackathon `yaml:"hackathons"`
}

// Default returns the embedded demo data set.
func Default() (*Demo, error) {
	return Parse(defaultDemo)
}

// Load reads a demo data set from path. An empty path yields the embedded one.
func Load(path string) (*Demo, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Demo, error) {
	var demo Demo
	if err := yaml.Unmarshal(data, &demo); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := demo.Validate(); err != nil {
		return nil, err
	}
	return &demo, nil
}

func (d *Demo) Validate() error {
	if d.RolesPerHacker.Min < 0 || d.RolesPerHacker.Min > d.RolesPerHacker.Max {
		return fmt.Errorf("invalid roles_per_hacker range %d..%d", d.RolesPerHacker.Min, d.RolesPerHacker.Max)
	}
	if len(d.TeamNames) > 0 && (d.TeamMaxSize.Min < 1 || d.TeamMaxSize.Min > d.TeamMaxSize.Max) {
		return fmt.Errorf("invalid team_max_size range %d..%d", d.TeamMaxSize.Min, d.TeamMaxSize.Max)
	}
	if d.WinnersPerHackathon < 0 {
		return fmt.Errorf("winners_per_hackathon must not be negative")
	}
	for _, h := range d.Hackathons {
		if _, err := h.Start(); err != nil {
			return fmt.Errorf("hackathon %q: invalid start_date: %w", h.Name, err)
		}
		if h.DurationDays <= 0 {
			return fmt.Errorf("hackathon %q: duration_days must be positive", h.Name)
		}
	}
	return nil
}
