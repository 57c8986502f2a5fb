package criteria

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	selection := Toggle(nil, "ISO_45001-abc")
	require.Equal(t, []string{"ISO_45001-abc"}, selection)

	selection = Toggle(selection, "ISO_45001-def")
	require.Equal(t, []string{"ISO_45001-abc", "ISO_45001-def"}, selection)

	selection = Toggle(selection, "ISO_45001-abc")
	require.Equal(t, []string{"ISO_45001-def"}, selection)

	// Toggling twice is a no-op.
	selection = Toggle(Toggle(selection, "x"), "x")
	require.Equal(t, []string{"ISO_45001-def"}, selection)
}

func TestHasStandardPrefix(t *testing.T) {
	require.True(t, HasStandardPrefix("ISO_9001-section-1", "ISO_9001"))
	require.True(t, HasStandardPrefix("ISO_9001-abc", "ISO_9001"))
	require.False(t, HasStandardPrefix("ISO_90011-abc", "ISO_9001"))
	require.False(t, HasStandardPrefix("ISO_14001-abc", "ISO_9001"))
}

func TestSelectAll_ReplacesOnlyOwnStandard(t *testing.T) {
	q1 := section("1", "1.1", "1.2")
	q2 := section("2", "2.1")
	for _, sec := range []*Section{q1, q2} {
		sec.ISOCode = "ISO_9001"
	}

	existing := []string{
		"ISO_14001-keep-me",
		"ISO_14001-section-3",
		"ISO_9001-stale-entry",
		"ISO_9001-section-9",
	}
	out := SelectAll(existing, "ISO_9001", []*Section{q1, q2})

	// ISO_14001 entries survive, stale ISO_9001 entries are gone.
	require.Contains(t, out, "ISO_14001-keep-me")
	require.Contains(t, out, "ISO_14001-section-3")
	require.NotContains(t, out, "ISO_9001-stale-entry")
	require.NotContains(t, out, "ISO_9001-section-9")

	require.Contains(t, out, "ISO_9001-"+q1.Subsections[0].ID.String())
	require.Contains(t, out, "ISO_9001-"+q1.Subsections[1].ID.String())
	require.Contains(t, out, "ISO_9001-"+q2.Subsections[0].ID.String())
	require.Contains(t, out, "ISO_9001-section-1")
	require.Contains(t, out, "ISO_9001-section-2")
	// 2 surviving foreign entries + 3 subsections + 2 section keys.
	require.Len(t, out, 7)
}

func TestSelectAll_Idempotent(t *testing.T) {
	sec := section("1", "1.1")
	sec.ISOCode = "ISO_50001"

	first := SelectAll([]string{"ISO_45001-other"}, "ISO_50001", []*Section{sec})
	second := SelectAll(first, "ISO_50001", []*Section{sec})
	require.Equal(t, first, second)
}
