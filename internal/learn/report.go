package learn

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dyluth/lore/internal/store"
	"github.com/dyluth/lore/pkg/playbook"
)

// topPatternCount is how many top-scoring bullets the stats report shows.
const topPatternCount = 3

// Stats prints a read-only summary of the playbook: per-category counts,
// aggregate feedback totals, task counters, and the top-scoring patterns.
func Stats(st store.Store, w io.Writer) error {
	pb, err := st.Load()
	if err != nil {
		return err
	}

	if len(pb.Bullets) == 0 {
		fmt.Fprintln(w, "No patterns learned yet.")
		return nil
	}

	// Category counts in first-appearance order
	counts := make(map[playbook.Category]int)
	var order []playbook.Category
	totalHelpful, totalHarmful := 0, 0
	for _, b := range pb.Bullets {
		if counts[b.Category] == 0 {
			order = append(order, b.Category)
		}
		counts[b.Category]++
		totalHelpful += b.HelpfulCount
		totalHarmful += b.HarmfulCount
	}

	parts := make([]string, len(order))
	for i, cat := range order {
		parts[i] = fmt.Sprintf("%s(%d)", cat, counts[cat])
	}

	fmt.Fprintf(w, "[i] Playbook: %d patterns\n", len(pb.Bullets))
	fmt.Fprintf(w, "   Categories: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(w, "   Feedback: +%d/-%d\n", totalHelpful, totalHarmful)
	fmt.Fprintf(w, "   Tasks: %d success, %d failures\n",
		pb.Metadata.TotalSuccesses, pb.Metadata.TotalFailures)

	top := make([]playbook.Bullet, len(pb.Bullets))
	copy(top, pb.Bullets)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score() > top[j].Score()
	})
	if len(top) > topPatternCount {
		top = top[:topPatternCount]
	}

	fmt.Fprintf(w, "\n[*] Top patterns:\n")
	for _, b := range top {
		fmt.Fprintf(w, "   [%s] score=%d: %s\n", b.ID, b.Score(), preview(b.Content, 50))
	}

	return nil
}
