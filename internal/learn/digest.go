package learn

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dyluth/lore/internal/store"
	"github.com/dyluth/lore/pkg/playbook"
)

const (
	// maxDigestBullets caps the digest across all categories
	maxDigestBullets = 25

	// maxPerCategory caps each category group in the digest
	maxPerCategory = 5
)

// DigestOptions narrows and configures the load digest.
type DigestOptions struct {
	// Endpoint is an advisory case-insensitive substring filter against
	// bullet source endpoints. It never empties the digest: when nothing
	// matches, the full list is shown.
	Endpoint string

	// SeedExtra is appended to the built-in starter patterns when a missing
	// playbook is seeded on first run.
	SeedExtra []SeedPattern
}

// Load prints the ranked digest of learned patterns for the start of a task
// run. A missing document is seeded first so the first run always has
// content. A document with zero bullets produces no output at all.
func Load(st store.Store, w io.Writer, opts DigestOptions) error {
	if !st.Exists() {
		fmt.Fprintf(w, "[*] First run - initializing playbook with seed patterns...\n\n")
		if err := Seed(st, w, SeedOptions{Extra: opts.SeedExtra}); err != nil {
			return err
		}
	}

	pb, err := st.Load()
	if err != nil {
		return err
	}
	if len(pb.Bullets) == 0 {
		return nil
	}

	// Stable sort keeps insertion order among equal scores
	bullets := make([]playbook.Bullet, len(pb.Bullets))
	copy(bullets, pb.Bullets)
	sort.SliceStable(bullets, func(i, j int) bool {
		return bullets[i].Score() > bullets[j].Score()
	})

	if opts.Endpoint != "" {
		bullets = narrowToEndpoint(bullets, opts.Endpoint)
	}

	if len(bullets) > maxDigestBullets {
		bullets = bullets[:maxDigestBullets]
	}

	byCategory := make(map[playbook.Category][]playbook.Bullet)
	for _, b := range bullets {
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}

	fmt.Fprintf(w, "## Learned Patterns\n\n")
	for _, cat := range playbook.DisplayOrder {
		group := byCategory[cat]
		if len(group) == 0 {
			continue
		}
		if len(group) > maxPerCategory {
			group = group[:maxPerCategory]
		}
		fmt.Fprintf(w, "### %s\n", cat.Title())
		for _, b := range group {
			fmt.Fprintf(w, "- **[%s]** (+%d/-%d) %s\n", b.ID, b.HelpfulCount, b.HarmfulCount, b.Content)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// narrowToEndpoint keeps bullets relevant to the given endpoint: a source
// endpoint containing the filter substring, a score of 2 or more, or a
// domain/code category. Falls back to the full list when nothing qualifies.
func narrowToEndpoint(bullets []playbook.Bullet, endpoint string) []playbook.Bullet {
	needle := strings.ToLower(endpoint)

	var relevant []playbook.Bullet
	for _, b := range bullets {
		matchesEndpoint := b.SourceEndpoint != "" &&
			strings.Contains(strings.ToLower(b.SourceEndpoint), needle)
		if matchesEndpoint || b.Score() >= 2 ||
			b.Category == playbook.CategoryDomain || b.Category == playbook.CategoryCode {
			relevant = append(relevant, b)
		}
	}

	if len(relevant) == 0 {
		return bullets
	}
	return relevant
}
