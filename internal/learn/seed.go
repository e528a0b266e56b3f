package learn

import (
	"fmt"
	"io"

	"github.com/dyluth/lore/internal/store"
	"github.com/dyluth/lore/pkg/playbook"
)

// SeedPattern is one starter lesson written into a fresh playbook.
type SeedPattern struct {
	Category playbook.Category
	Content  string
}

// starterPatterns is the built-in seed set: generic engineering advice that
// applies before a project has learned anything of its own.
var starterPatterns = []SeedPattern{
	{playbook.CategoryPitfall, "Don't ignore returned errors; handle or propagate every one"},
	{playbook.CategoryPitfall, "Always validate input at API boundaries before processing"},
	{playbook.CategoryPitfall, "Check for nil before dereferencing optional nested fields"},
	{playbook.CategoryStrategy, "Write tests before fixing bugs to prevent regression"},
	{playbook.CategoryStrategy, "Use environment variables for configuration, not hardcoded values"},
	{playbook.CategoryStrategy, "Log errors with context (request ID, user ID, operation) for debugging"},
	{playbook.CategoryCode, "Use defer to ensure resource cleanup on every return path"},
	{playbook.CategoryCode, "Prefer explicit imports over wildcard imports for clarity"},
}

// SeedOptions configures seeding.
type SeedOptions struct {
	// Force overwrites an existing playbook instead of refusing
	Force bool

	// Extra holds project-specific patterns (from lore.yml) appended after
	// the built-in starter set
	Extra []SeedPattern
}

// Seed writes a fresh playbook containing the starter patterns. An existing
// playbook is left untouched unless Force is set; refusing is reported on w
// and is not an error.
func Seed(st store.Store, w io.Writer, opts SeedOptions) error {
	if st.Exists() && !opts.Force {
		fmt.Fprintf(w, "Playbook exists at %s. Use --force to overwrite.\n", st.Path())
		return nil
	}

	now := nowFunc()
	pb := playbook.New(now)
	pb.Metadata.Seeded = true

	patterns := make([]SeedPattern, 0, len(starterPatterns)+len(opts.Extra))
	patterns = append(patterns, starterPatterns...)
	patterns = append(patterns, opts.Extra...)

	for _, p := range patterns {
		pb.Bullets = append(pb.Bullets, playbook.Bullet{
			ID:       playbook.MakeID(p.Category, p.Content),
			Content:  p.Content,
			Category: p.Category,
			Created:  now,
		})
	}

	if err := st.Save(pb); err != nil {
		return err
	}

	fmt.Fprintf(w, "[+] Seeded %d patterns -> %s\n", len(pb.Bullets), st.Path())
	return nil
}
