package wiki

import "time"

// Status is the publication state of an entry.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Priority ranks an entry for review.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Attachment references a file attached to an entry.
type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size" validate:"gte=0"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Link points at related reading.
type Link struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Entry is a knowledge-base note. LastEditedAt moves with every mutation,
// independently of UpdatedAt.
type Entry struct {
	ID           string       `json:"id"`
	Title        string       `json:"title" validate:"required"`
	Summary      string       `json:"summary"`
	Content      string       `json:"content,omitempty"`
	Tags         []string     `json:"tags"`
	Category     string       `json:"category"`
	Status       Status       `json:"status" validate:"oneof=draft published archived"`
	Priority     Priority     `json:"priority" validate:"oneof=low medium high"`
	IsPublic     bool         `json:"isPublic"`
	Rating       int          `json:"rating" validate:"gte=0,lte=5"`
	Attachments  []Attachment `json:"attachments" validate:"dive"`
	RelatedLinks []Link       `json:"relatedLinks" validate:"dive"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	LastEditedAt time.Time    `json:"lastEditedAt"`
}

// CreateRequest holds the caller-supplied fields of a new entry.
type CreateRequest struct {
	Title        string
	Summary      string
	Content      string
	Tags         []string
	Category     string
	Status       Status
	Priority     Priority
	IsPublic     bool
	Rating       int
	Attachments  []Attachment
	RelatedLinks []Link
}

// Patch lists the fields an update may change. Nil fields are left alone.
type Patch struct {
	Title        *string
	Summary      *string
	Content      *string
	Tags         []string
	Category     *string
	Status       *Status
	Priority     *Priority
	IsPublic     *bool
	Rating       *int
	Attachments  []Attachment
	RelatedLinks []Link
}

// Apply merges the set fields of p into entry.
func (p Patch) Apply(entry *Entry) {
	if p.Title != nil {
		entry.Title = *p.Title
	}
	if p.Summary != nil {
		entry.Summary = *p.Summary
	}
	if p.Content != nil {
		entry.Content = *p.Content
	}
	if p.Tags != nil {
		entry.Tags = append([]string{}, p.Tags...)
	}
	if p.Category != nil {
		entry.Category = *p.Category
	}
	if p.Status != nil {
		entry.Status = *p.Status
	}
	if p.Priority != nil {
		entry.Priority = *p.Priority
	}
	if p.IsPublic != nil {
		entry.IsPublic = *p.IsPublic
	}
	if p.Rating != nil {
		entry.Rating = *p.Rating
	}
	if p.Attachments != nil {
		entry.Attachments = append([]Attachment{}, p.Attachments...)
	}
	if p.RelatedLinks != nil {
		entry.RelatedLinks = append([]Link{}, p.RelatedLinks...)
	}
}

// Normalize replaces nil lists with empty ones.
func (e *Entry) Normalize() {
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Attachments == nil {
		e.Attachments = []Attachment{}
	}
	if e.RelatedLinks == nil {
		e.RelatedLinks = []Link{}
	}
}
