package experiment

import "time"

// Status is the lifecycle state of an experiment.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Experiment is a user-defined self-tracking protocol.
//
// Progress is advisory: consumers derive the displayed value from the date
// range (see stats.Progress) rather than trusting the stored number.
type Experiment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required"`
	Hypothesis string    `json:"hypothesis"`
	Duration   int       `json:"duration" validate:"gt=0"`
	StartDate  string    `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string    `json:"endDate" validate:"required,datetime=2006-01-02"`
	Variables  []string  `json:"variables"`
	Metrics    []string  `json:"metrics"`
	Notes      string    `json:"notes,omitempty"`
	Status     Status    `json:"status" validate:"oneof=active completed paused"`
	Progress   float64   `json:"progress" validate:"gte=0,lte=100"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateRequest holds the caller-supplied fields of a new experiment.
type CreateRequest struct {
	Name       string
	Hypothesis string
	Duration   int
	StartDate  string
	EndDate    string
	Variables  []string
	Metrics    []string
	Notes      string
	Status     Status
	Progress   float64
}

// Patch lists the fields an update may change. Nil fields are left alone.
type Patch struct {
	Name       *string
	Hypothesis *string
	Duration   *int
	StartDate  *string
	EndDate    *string
	Variables  []string
	Metrics    []string
	Notes      *string
	Status     *Status
	Progress   *float64
}

// Apply merges the set fields of p into exp.
func (p Patch) Apply(exp *Experiment) {
	if p.Name != nil {
		exp.Name = *p.Name
	}
	if p.Hypothesis != nil {
		exp.Hypothesis = *p.Hypothesis
	}
	if p.Duration != nil {
		exp.Duration = *p.Duration
	}
	if p.StartDate != nil {
		exp.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		exp.EndDate = *p.EndDate
	}
	if p.Variables != nil {
		exp.Variables = append([]string{}, p.Variables...)
	}
	if p.Metrics != nil {
		exp.Metrics = append([]string{}, p.Metrics...)
	}
	if p.Notes != nil {
		exp.Notes = *p.Notes
	}
	if p.Status != nil {
		exp.Status = *p.Status
	}
	if p.Progress != nil {
		exp.Progress = *p.Progress
	}
}

// Normalize replaces nil lists with empty ones so the record always
// serializes them as arrays.
func (e *Experiment) Normalize() {
	if e.Variables == nil {
		e.Variables = []string{}
	}
	if e.Metrics == nil {
		e.Metrics = []string{}
	}
}
