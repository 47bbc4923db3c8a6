package mcp

import (
	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
)

type EmptyParams struct{}

type IDParams struct {
	ID string `json:"id" jsonschema:"record identifier"`
}

type ListExperimentsParams struct {
	Status experiment.Status `json:"status,omitempty" jsonschema:"only return experiments in this state (active, completed, paused)"`
}

type CreateExperimentParams struct {
	Name       string            `json:"name"`
	Hypothesis string            `json:"hypothesis,omitempty"`
	Duration   int               `json:"duration" jsonschema:"length in days"`
	StartDate  string            `json:"start_date" jsonschema:"YYYY-MM-DD"`
	EndDate    string            `json:"end_date" jsonschema:"YYYY-MM-DD, not before start_date"`
	Variables  []string          `json:"variables,omitempty"`
	Metrics    []string          `json:"metrics,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Status     experiment.Status `json:"status,omitempty" jsonschema:"defaults to active"`
}

type UpdateExperimentParams struct {
	ID         string             `json:"id"`
	Name       *string            `json:"name,omitempty"`
	Hypothesis *string            `json:"hypothesis,omitempty"`
	Duration   *int               `json:"duration,omitempty"`
	StartDate  *string            `json:"start_date,omitempty"`
	EndDate    *string            `json:"end_date,omitempty"`
	Variables  []string           `json:"variables,omitempty"`
	Metrics    []string           `json:"metrics,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	Status     *experiment.Status `json:"status,omitempty"`
	Progress   *float64           `json:"progress,omitempty"`
}

type GetDailyLogParams struct {
	Date string `json:"date,omitempty" jsonschema:"YYYY-MM-DD, defaults to today"`
}

type SaveDailyLogParams struct {
	Date          string             `json:"date,omitempty" jsonschema:"YYYY-MM-DD, defaults to today"`
	SleepHours    float64            `json:"sleep_hours,omitempty" jsonschema:"0-24"`
	Mood          string             `json:"mood,omitempty" jsonschema:"very-low, low, neutral, good or excellent"`
	Energy        float64            `json:"energy" jsonschema:"1-10"`
	Notes         string             `json:"notes,omitempty"`
	Protocols     map[string]bool    `json:"protocols,omitempty" jsonschema:"experiment id to whether its protocol was followed"`
	CustomMetrics map[string]float64 `json:"custom_metrics,omitempty"`
}

type RecentDailyLogsParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of logs, defaults to 7"`
}

type CreateWikiEntryParams struct {
	Title        string            `json:"title"`
	Summary      string            `json:"summary,omitempty"`
	Content      string            `json:"content,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Category     string            `json:"category,omitempty"`
	Status       wiki.Status       `json:"status,omitempty" jsonschema:"draft, published or archived; defaults to draft"`
	Priority     wiki.Priority     `json:"priority,omitempty" jsonschema:"low, medium or high; defaults to medium"`
	IsPublic     bool              `json:"is_public,omitempty"`
	Rating       int               `json:"rating,omitempty" jsonschema:"1-5, 0 for unrated"`
	Attachments  []AttachmentParams `json:"attachments,omitempty"`
	RelatedLinks []LinkParams       `json:"related_links,omitempty"`
}

// AttachmentParams and LinkParams leave ids optional: new items get one
// assigned, existing ones keep theirs when the id is sent back.
type AttachmentParams struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type,omitempty" jsonschema:"MIME type"`
	Size int64  `json:"size,omitempty" jsonschema:"bytes"`
	URL  string `json:"url,omitempty"`
}

type LinkParams struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type UpdateWikiEntryParams struct {
	ID           string            `json:"id"`
	Title        *string           `json:"title,omitempty"`
	Summary      *string           `json:"summary,omitempty"`
	Content      *string           `json:"content,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Category     *string           `json:"category,omitempty"`
	Status       *wiki.Status      `json:"status,omitempty"`
	Priority     *wiki.Priority    `json:"priority,omitempty"`
	IsPublic     *bool             `json:"is_public,omitempty"`
	Rating       *int              `json:"rating,omitempty"`
	Attachments  []AttachmentParams `json:"attachments,omitempty"`
	RelatedLinks []LinkParams       `json:"related_links,omitempty"`
}

type SearchTemplatesParams struct {
	Query      string              `json:"query,omitempty" jsonschema:"case-insensitive match on name or description"`
	Category   string              `json:"category,omitempty"`
	Difficulty template.Difficulty `json:"difficulty,omitempty" jsonschema:"Beginner, Intermediate or Advanced"`
}

type SearchWikiEntriesParams struct {
	Query      string          `json:"query,omitempty" jsonschema:"case-insensitive match on title or summary"`
	Category   string          `json:"category,omitempty"`
	Status     wiki.Status     `json:"status,omitempty"`
	Visibility wiki.Visibility `json:"visibility,omitempty" jsonschema:"public or private"`
	Tag        string          `json:"tag,omitempty"`
	Limit      int             `json:"limit,omitempty"`
	Offset     int             `json:"offset,omitempty"`
}

type GetInsightsParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of logs charted, defaults to 30"`
}

type ListExperimentsResponse struct {
	Experiments []experiment.Experiment `json:"experiments"`
}

type ExperimentResponse struct {
	Experiment experiment.Experiment `json:"experiment"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ListDailyLogsResponse struct {
	Logs []dailylog.DailyLog `json:"logs"`
}

type DailyLogResponse struct {
	Found bool               `json:"found"`
	Log   *dailylog.DailyLog `json:"log,omitempty"`
}

type ListTemplatesResponse struct {
	Templates []template.Template `json:"templates"`
}

type TemplateResponse struct {
	Template template.Template `json:"template"`
}

type ListWikiEntriesResponse struct {
	Entries []wiki.Entry `json:"entries"`
}

type WikiEntryResponse struct {
	Entry wiki.Entry `json:"entry"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type StoreHealthResponse struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// toAttachments preserves the nil/empty distinction a patch relies on.
func toAttachments(in []AttachmentParams) []wiki.Attachment {
	if in == nil {
		return nil
	}
	out := make([]wiki.Attachment, 0, len(in))
	for _, a := range in {
		out = append(out, wiki.Attachment{ID: a.ID, Name: a.Name, Type: a.Type, Size: a.Size, URL: a.URL})
	}
	return out
}

func toLinks(in []LinkParams) []wiki.Link {
	if in == nil {
		return nil
	}
	out := make([]wiki.Link, 0, len(in))
	for _, l := range in {
		out = append(out, wiki.Link{ID: l.ID, Title: l.Title, URL: l.URL, Description: l.Description})
	}
	return out
}
