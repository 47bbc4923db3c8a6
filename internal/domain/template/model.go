package template

// Difficulty grades how demanding a template is to follow.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Template is a read-only experiment blueprint from the built-in catalog.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"`
	Goal        string     `json:"goal"`
	Rating      float64    `json:"rating"`
	Variables   []string   `json:"variables"`
	Metrics     []string   `json:"metrics"`
}

func (t *Template) Normalize() {
	if t.Variables == nil {
		t.Variables = []string{}
	}
	if t.Metrics == nil {
		t.Metrics = []string{}
	}
}
