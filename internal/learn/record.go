package learn

import (
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/lore/internal/store"
	"github.com/dyluth/lore/pkg/playbook"
)

// SuccessOptions carries the inputs for recording a completed task.
type SuccessOptions struct {
	Helpful  string            // comma-separated ids of bullets that helped
	Lesson   string            // optional new lesson to store
	Category playbook.Category // category for the new lesson; strategy when empty
	Endpoint string            // optional source endpoint for the new lesson
}

// Success credits helpful bullets, optionally stores a new lesson, and bumps
// the success counters. Unknown ids are ignored without comment: the caller
// is typically an automated agent replaying ids from an earlier digest, and
// a stale id is not worth failing the run over.
func Success(st store.Store, w io.Writer, opts SuccessOptions) error {
	pb, err := st.Load()
	if err != nil {
		return err
	}
	now := nowFunc()

	for _, id := range splitIDs(opts.Helpful) {
		for i := range pb.Bullets {
			if pb.Bullets[i].ID == id {
				pb.Bullets[i].HelpfulCount++
				pb.Bullets[i].LastUsed = now
			}
		}
	}

	if opts.Lesson != "" {
		category := opts.Category
		if category == "" {
			category = playbook.CategoryStrategy
		}
		id := playbook.MakeID(category, opts.Lesson)
		if !pb.ContainsContent(opts.Lesson) {
			pb.Bullets = append(pb.Bullets, playbook.Bullet{
				ID:             id,
				Content:        opts.Lesson,
				Category:       category,
				HelpfulCount:   1, // it just worked
				SourceEndpoint: opts.Endpoint,
				Created:        now,
			})
			fmt.Fprintf(w, "[+] Learned: [%s] %s\n", id, preview(opts.Lesson, 60))
		}
	}

	pb.Metadata.LastSuccess = now
	pb.Metadata.TotalSuccesses++

	return st.Save(pb)
}

// FailureOptions carries the inputs for recording a failed task.
type FailureOptions struct {
	Harmful  string // comma-separated ids of bullets that hurt
	Lesson   string // optional description of what went wrong
	Endpoint string // optional source endpoint for the new pitfall
}

// Failure blames harmful bullets, optionally stores a new pitfall, and bumps
// the failure counters. Blaming a bullet does not touch last_used; only
// helpful use counts as use.
func Failure(st store.Store, w io.Writer, opts FailureOptions) error {
	pb, err := st.Load()
	if err != nil {
		return err
	}
	now := nowFunc()

	for _, id := range splitIDs(opts.Harmful) {
		for i := range pb.Bullets {
			if pb.Bullets[i].ID == id {
				pb.Bullets[i].HarmfulCount++
			}
		}
	}

	if opts.Lesson != "" {
		content := opts.Lesson
		if !strings.HasPrefix(content, "AVOID") {
			content = "AVOID: " + content
		}
		id := playbook.MakeID(playbook.CategoryPitfall, content)
		// Duplicate check runs against the raw lesson text, not the stored
		// AVOID-prefixed form
		if !pb.ContainsContent(opts.Lesson) {
			pb.Bullets = append(pb.Bullets, playbook.Bullet{
				ID:             id,
				Content:        content,
				Category:       playbook.CategoryPitfall,
				SourceEndpoint: opts.Endpoint,
				Created:        now,
			})
			fmt.Fprintf(w, "[!] Pitfall recorded: [%s] %s\n", id, preview(content, 60))
		}
	}

	pb.Metadata.LastFailure = now
	pb.Metadata.TotalFailures++

	return st.Save(pb)
}
