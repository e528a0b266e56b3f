package learn

import (
	"bytes"
	"testing"

	"github.com/dyluth/lore/pkg/playbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_CreditsHelpfulAndStoresLesson(t *testing.T) {
	withFixedClock(t, "2026-02-01T12:00:00Z")
	st := storeWith(t, playbook.Bullet{
		ID:       "P-abc123",
		Content:  "Always validate input at API boundaries before processing",
		Category: playbook.CategoryPitfall,
		Created:  "2026-01-01T00:00:00Z",
	})
	var buf bytes.Buffer

	err := Success(st, &buf, SuccessOptions{
		Helpful:  "P-abc123",
		Lesson:   "Use connection pooling",
		Category: playbook.CategoryStrategy,
	})
	require.NoError(t, err)
	assert.Equal(t, "[+] Learned: [S-81e980] Use connection pooling...\n", buf.String())

	pb, err := st.Load()
	require.NoError(t, err)
	require.Len(t, pb.Bullets, 2)

	credited := pb.Bullets[0]
	assert.Equal(t, 1, credited.HelpfulCount)
	assert.Equal(t, "2026-02-01T12:00:00Z", credited.LastUsed)

	added := pb.Bullets[1]
	assert.Equal(t, "S-81e980", added.ID)
	assert.Equal(t, "Use connection pooling", added.Content)
	assert.Equal(t, playbook.CategoryStrategy, added.Category)
	assert.Equal(t, 1, added.HelpfulCount)
	assert.Equal(t, 0, added.HarmfulCount)

	assert.Equal(t, 1, pb.Metadata.TotalSuccesses)
	assert.Equal(t, "2026-02-01T12:00:00Z", pb.Metadata.LastSuccess)
}

func TestSuccess_MultipleHelpfulIDs(t *testing.T) {
	st := storeWith(t,
		playbook.Bullet{ID: "P-aaaaaa", Content: "a", Category: playbook.CategoryPitfall, Created: "2026-01-01T00:00:00Z"},
		playbook.Bullet{ID: "S-bbbbbb", Content: "b", Category: playbook.CategoryStrategy, Created: "2026-01-01T00:00:00Z"},
		playbook.Bullet{ID: "C-cccccc", Content: "c", Category: playbook.CategoryCode, Created: "2026-01-01T00:00:00Z"},
	)
	var buf bytes.Buffer

	err := Success(st, &buf, SuccessOptions{Helpful: "P-aaaaaa, C-cccccc"})
	require.NoError(t, err)

	pb, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, pb.Bullets[0].HelpfulCount)
	assert.Equal(t, 0, pb.Bullets[1].HelpfulCount)
	assert.Equal(t, 1, pb.Bullets[2].HelpfulCount)
}

func TestSuccess_UnknownIDSilentlyIgnored(t *testing.T) {
	st := storeWith(t, playbook.Bullet{
		ID: "P-aaaaaa", Content: "a", Category: playbook.CategoryPitfall, Created: "2026-01-01T00:00:00Z",
	})
	var buf bytes.Buffer

	err := Success(st, &buf, SuccessOptions{Helpful: "Z-zzzzzz"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	pb, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, pb.Bullets[0].HelpfulCount)
	assert.Equal(t, 1, pb.Metadata.TotalSuccesses, "task counter still increments")
}

func TestSuccess_DuplicateLessonSuppressed(t *testing.T) {
	st := storeWith(t, playbook.Bullet{
		ID:       "S-000001",
		Content:  "Always use connection pooling for database access",
		Category: playbook.CategoryStrategy,
		Created:  "2026-01-01T00:00:00Z",
	})
	var buf bytes.Buffer

	// The new lesson is a substring of existing content: suppressed silently
	err := Success(st, &buf, SuccessOptions{Lesson: "use connection pooling"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	pb, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, pb.Bullets, 1)
	assert.Equal(t, 1, pb.Metadata.TotalSuccesses)
}

func TestSuccess_DefaultCategoryIsStrategy(t *testing.T) {
	st := storeWith(t)
	var buf bytes.Buffer

	err := Success(st, &buf, SuccessOptions{Lesson: "retry flaky downloads"})
	require.NoError(t, err)

	pb, err := st.Load()
	require.NoError(t, err)
	require.Len(t, pb.Bullets, 1)
	assert.Equal(t, playbook.CategoryStrategy, pb.Bullets[0].Category)
	assert.Equal(t, "S-232663", pb.Bullets[0].ID)
}

func TestSuccess_RecordsSourceEndpoint(t *testing.T) {
	st := storeWith(t)
	var buf bytes.Buffer

	err := Success(st, &buf, SuccessOptions{
		Lesson:   "Paginate user listings",
		Category: playbook.CategoryEndpoint,
		Endpoint: "GET /api/users",
	})
	require.NoError(t, err)

	pb, err := st.Load()
	require.NoError(t, err)
	require.Len(t, pb.Bullets, 1)
	assert.Equal(t, "GET /api/users", pb.Bullets[0].SourceEndpoint)
	assert.Equal(t, playbook.CategoryEndpoint, pb.Bullets[0].Category)
}

func TestFailure_RecordsPitfallWithAvoidPrefix(t *testing.T) {
	withFixedClock(t, "2026-02-01T12:00:00Z")
	st := storeWith(t)
	var buf bytes.Buffer

	err := Failure(st, &buf, FailureOptions{Lesson: "hardcoded secrets in config"})
	require.NoError(t, err)
	assert.Equal(t, "[!] Pitfall recorded: [P-f37d4f] AVOID: hardcoded secrets in config...\n", buf.String())

	pb, err := st.Load()
	require.NoError(t, err)
	require.Len(t, pb.Bullets, 1)

	added := pb.Bullets[0]
	assert.Equal(t, "AVOID: hardcoded secrets in config", added.Content)
	assert.Equal(t, playbook.CategoryPitfall, added.Category)
	assert.Equal(t, 0, added.HelpfulCount)
	assert.Equal(t, 0, added.HarmfulCount)

	assert.Equal(t, 1, pb.Metadata.TotalFailures)
	assert.Equal(t, "2026-02-01T12:00:00Z", pb.Metadata.LastFailure)
}

func TestFailure_KeepsExistingAvoidPrefix(t *testing.T) {
	st := storeWith(t)
	var buf bytes.Buffer

	err := Failure(st, &buf, FailureOptions{Lesson: "AVOID touching prod during deploys"})
	require.NoError(t, err)

	pb, err := st.Load()
	require.NoError(t, err)
	require.Len(t, pb.Bullets, 1)
	assert.Equal(t, "AVOID touching prod during deploys", pb.Bullets[0].Content)
}

func TestFailure_BlamesHarmfulWithoutTouchingLastUsed(t *testing.T) {
	st := storeWith(t, playbook.Bullet{
		ID: "S-bbbbbb", Content: "b", Category: playbook.CategoryStrategy, Created: "2026-01-01T00:00:00Z",
	})
	var buf bytes.Buffer

	err := Failure(st, &buf, FailureOptions{Harmful: "S-bbbbbb"})
	require.NoError(t, err)

	pb, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, pb.Bullets[0].HarmfulCount)
	assert.Empty(t, pb.Bullets[0].LastUsed, "blame is not use")
}

func TestFailure_DuplicateChecksRawLessonText(t *testing.T) {
	st := storeWith(t, playbook.Bullet{
		ID:       "P-f37d4f",
		Content:  "AVOID: hardcoded secrets in config",
		Category: playbook.CategoryPitfall,
		Created:  "2026-01-01T00:00:00Z",
	})
	var buf bytes.Buffer

	// The raw lesson is a substring of the stored AVOID-prefixed content,
	// so recording the same failure again is suppressed
	err := Failure(st, &buf, FailureOptions{Lesson: "hardcoded secrets in config"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	pb, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, pb.Bullets, 1)
	assert.Equal(t, 1, pb.Metadata.TotalFailures, "task counter still increments")
}
