// Package learn implements the five playbook operations: load (print the
// ranked digest), success and failure (record feedback and new lessons),
// seed (write the starter patterns), and stats (summarize the playbook).
//
// Every operation is a complete read-mutate-write cycle over an injected
// store, writing its plain-text output to an injected writer. The output
// format is part of the contract: calling agents parse bullet ids out of it.
package learn

import (
	"strings"

	"github.com/dyluth/lore/pkg/playbook"
)

// nowFunc supplies timestamps; tests substitute a fixed clock.
var nowFunc = playbook.Timestamp

// preview returns the first max characters of s with a trailing ellipsis.
// The ellipsis is appended whether or not truncation occurred.
func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}

// splitIDs parses a comma-separated id list, trimming whitespace around
// each entry.
func splitIDs(list string) []string {
	if list == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
