package playbook

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies the kind of lesson a bullet carries.
type Category string

const (
	// CategoryStrategy holds approaches that worked (the default for new lessons)
	CategoryStrategy Category = "strategy"

	// CategoryPitfall holds things to avoid, recorded after failures
	CategoryPitfall Category = "pitfall"

	// CategoryDomain holds facts about the problem domain itself
	CategoryDomain Category = "domain"

	// CategoryEndpoint holds lessons tied to a specific API endpoint
	CategoryEndpoint Category = "endpoint"

	// CategoryCode holds code-level conventions and techniques
	CategoryCode Category = "code"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryStrategy,
	CategoryPitfall,
	CategoryDomain,
	CategoryEndpoint,
	CategoryCode,
}

// DisplayOrder is the fixed priority order used when rendering grouped
// output: pitfalls first so they are hardest to miss.
var DisplayOrder = []Category{
	CategoryPitfall,
	CategoryStrategy,
	CategoryDomain,
	CategoryEndpoint,
	CategoryCode,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the category name with its first letter uppercased,
// e.g. "Pitfall", for use as a display heading.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// CategoryNames returns the valid category values as a comma-separated list
// for usage and error messages.
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Bullet is one atomic lesson record in the playbook.
type Bullet struct {
	ID             string   `json:"id"`                        // Content-addressed id, e.g. "P-3f2a1c"
	Content        string   `json:"content"`                   // The lesson text itself
	Category       Category `json:"category"`                  // One of the enumerated categories
	HelpfulCount   int      `json:"helpful_count"`             // Times this bullet was credited after a success
	HarmfulCount   int      `json:"harmful_count"`             // Times this bullet was blamed after a failure
	SourceEndpoint string   `json:"source_endpoint,omitempty"` // Optional API route this lesson came from
	Created        string   `json:"created"`                   // RFC 3339 creation timestamp, immutable
	LastUsed       string   `json:"last_used,omitempty"`       // Updated whenever the bullet is marked helpful
}

// Score is the bullet's ranking value: helpful feedback minus harmful.
func (b *Bullet) Score() int {
	return b.HelpfulCount - b.HarmfulCount
}

// Metadata tracks document-level bookkeeping across task runs.
type Metadata struct {
	Created        string `json:"created"`
	Seeded         bool   `json:"seeded,omitempty"`
	PlaybookID     string `json:"playbook_id,omitempty"`
	LastSuccess    string `json:"last_success,omitempty"`
	LastFailure    string `json:"last_failure,omitempty"`
	TotalSuccesses int    `json:"total_successes,omitempty"`
	TotalFailures  int    `json:"total_failures,omitempty"`
}

// Playbook is the full persisted document: metadata plus bullets in
// insertion order.
type Playbook struct {
	Metadata Metadata `json:"metadata"`
	Bullets  []Bullet `json:"bullets"`
}

// New returns an empty playbook created at the given timestamp and stamped
// with a fresh identity.
func New(created string) *Playbook {
	return &Playbook{
		Metadata: Metadata{
			Created:    created,
			PlaybookID: uuid.New().String(),
		},
		Bullets: []Bullet{},
	}
}

// ContainsContent reports whether any bullet's content contains text as a
// case-insensitive substring. Used for cheap duplicate suppression before
// appending a new lesson.
func (p *Playbook) ContainsContent(text string) bool {
	needle := strings.ToLower(text)
	for i := range p.Bullets {
		if strings.Contains(strings.ToLower(p.Bullets[i].Content), needle) {
			return true
		}
	}
	return false
}

// MakeID derives a bullet id from its category and content: the category
// initial uppercased, a dash, then the first six hex characters of the
// content's MD5 digest. Same inputs always yield the same id. The prefix is
// short enough that collisions are possible; they are tolerated, and feedback
// by id simply credits every bullet carrying that id.
func MakeID(category Category, content string) string {
	sum := md5.Sum([]byte(content))
	return fmt.Sprintf("%s-%s", strings.ToUpper(string(category[:1])), hex.EncodeToString(sum[:])[:6])
}

// Timestamp returns the current local time as an RFC 3339 string, the format
// used for every timestamp field in the document.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}
