package quote

import (
	"regexp"
	"strconv"
	"strings"
)

// ContactInfo identifies the customer behind an assessment.
type ContactInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

// Assessment is a construction project assessment as submitted by the form
// side. AreaSqm and Units are the structured quantity fields; ProjectSize is
// the free-text description kept only as a convenience fallback for callers
// that still send prose like "120 sqm apartment".
type Assessment struct {
	ProjectType string `json:"projectType"`

	AreaSqm     float64 `json:"areaSqm,omitempty"`
	Units       int     `json:"units,omitempty"`
	ProjectSize string  `json:"projectSize,omitempty"`

	Timeline        string `json:"timeline,omitempty"`
	BestContactTime string `json:"bestContactTime,omitempty"`
	MarketingSource string `json:"marketingSource,omitempty"`

	KitchenRequirements  map[string]bool `json:"kitchenRequirements,omitempty"`
	BathroomRequirements map[string]bool `json:"bathroomRequirements,omitempty"`
	FlooringRequirements map[string]bool `json:"flooringRequirements,omitempty"`
	WoodworkRequirements map[string]bool `json:"woodworkRequirements,omitempty"`
	PaintingRequirements map[string]bool `json:"paintingRequirements,omitempty"`
	AcRequirements       map[string]bool `json:"acRequirements,omitempty"`

	ContactInfo ContactInfo `json:"contactInfo"`
}

var (
	areaPattern  = regexp.MustCompile(`(?i)(\d+)\s*sqm`)
	unitsPattern = regexp.MustCompile(`(?i)(\d+)\s*unit`)
)

// ParseProjectSize extracts area and unit count from a free-text project size
// description. Absence yields area 0 and 1 unit. This heuristic lives at the
// boundary only; the calculator itself takes structured quantities.
func ParseProjectSize(projectSize string) (area float64, units int) {
	units = 1
	if m := areaPattern.FindStringSubmatch(projectSize); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			area = float64(v)
		}
	}
	if m := unitsPattern.FindStringSubmatch(projectSize); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			units = v
		}
	}
	return area, units
}

// Quantities returns the area and unit count for the assessment, preferring
// the structured fields and falling back to free-text parsing.
func (a Assessment) Quantities() (area float64, units int) {
	if a.AreaSqm > 0 || a.Units > 0 {
		area = a.AreaSqm
		units = a.Units
		if units < 1 {
			units = 1
		}
		return area, units
	}
	return ParseProjectSize(a.ProjectSize)
}

// Requirements returns the component flags matching the declared project type.
func (a Assessment) Requirements() map[string]bool {
	switch a.ProjectType {
	case "kitchen":
		return a.KitchenRequirements
	case "bathroom":
		return a.BathroomRequirements
	case "flooring":
		return a.FlooringRequirements
	case "woodwork":
		return a.WoodworkRequirements
	case "painting":
		return a.PaintingRequirements
	case "ac":
		return a.AcRequirements
	}
	return nil
}

// IsUrgent reports whether the free-text timeline signals urgency.
func (a Assessment) IsUrgent() bool {
	timeline := strings.ToLower(a.Timeline)
	return strings.Contains(timeline, "urgent") || strings.Contains(timeline, "immediate")
}

// IsWeekend reports whether the customer asked for weekend contact.
func (a Assessment) IsWeekend() bool {
	return a.BestContactTime == "weekend"
}

// HasContract reports whether this is a company customer, which qualifies
// for the contract discount.
func (a Assessment) HasContract() bool {
	return a.ContactInfo.Company != ""
}

// IsReferral reports whether the customer came in through a referral channel.
func (a Assessment) IsReferral() bool {
	return strings.Contains(a.MarketingSource, "referral")
}

// Priority classifies how quickly the team should respond.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityNormal   Priority = "normal"
)

// Priority classifies the assessment: urgent timelines are critical, company
// customers and multi-building projects are high, everything else normal.
func (a Assessment) Priority() Priority {
	if a.IsUrgent() {
		return PriorityCritical
	}
	size := strings.ToLower(a.ProjectSize)
	if a.HasContract() || strings.Contains(size, "building") || strings.Contains(size, "multiple") {
		return PriorityHigh
	}
	return PriorityNormal
}

// ResponseTime is the promised first-contact window for a priority.
func (p Priority) ResponseTime() string {
	switch p {
	case PriorityCritical:
		return "30 minutes"
	case PriorityHigh:
		return "1 hour"
	}
	return "2 hours"
}
