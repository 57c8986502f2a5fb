package criteria

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func section(number string, subNumbers ...string) *Section {
	sec := &Section{
		ID:            uuid.New(),
		ISOCode:       "ISO_45001",
		SectionNumber: number,
	}
	for i, subNumber := range subNumbers {
		sec.Subsections = append(sec.Subsections, &Subsection{
			ID:               uuid.New(),
			SectionID:        sec.ID,
			SubsectionNumber: subNumber,
			SortOrder:        i + 1,
		})
	}
	return sec
}

func groupKeys(groups []Group) []string {
	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	return keys
}

func TestGroupSubsections_ByNumberPrefix(t *testing.T) {
	sections := []*Section{
		section("1", "1.2", "1.10"),
		section("2", "2.1"),
	}
	groups := GroupSubsections(sections)
	require.Equal(t, []string{"1", "2"}, groupKeys(groups))
	require.Len(t, groups[0].Subsections, 2)
	require.Len(t, groups[1].Subsections, 1)
}

func TestGroupSubsections_StableWithinGroup(t *testing.T) {
	// "1.10" was added after "1.2"; lexicographic ordering would flip them.
	sections := []*Section{section("1", "1.2", "1.10", "1.3")}
	groups := GroupSubsections(sections)
	require.Len(t, groups, 1)

	var numbers []string
	for _, sub := range groups[0].Subsections {
		numbers = append(numbers, sub.SubsectionNumber)
	}
	require.Equal(t, []string{"1.2", "1.10", "1.3"}, numbers)
}

func TestGroupSubsections_NumericKeysBeforeNonNumeric(t *testing.T) {
	sections := []*Section{
		section("7", "B.2", "10.1", "A.1", "2.1", "1.1"),
	}
	groups := GroupSubsections(sections)
	require.Equal(t, []string{"1", "2", "10", "A", "B"}, groupKeys(groups))
}

func TestGroupSubsections_NumericOrderIsNumeric(t *testing.T) {
	sections := []*Section{
		section("1", "1.1"),
		section("2", "2.1"),
		section("10", "10.1"),
	}
	groups := GroupSubsections(sections)
	// String sorting would yield 1, 10, 2.
	require.Equal(t, []string{"1", "2", "10"}, groupKeys(groups))
}

func TestGroupToken_FallsBackToParentSection(t *testing.T) {
	parent := section("3")
	sub := &Subsection{SubsectionNumber: ""}
	require.Equal(t, "3", sub.GroupToken(parent))

	sub = &Subsection{SubsectionNumber: "3.4"}
	require.Equal(t, "3", sub.GroupToken(parent))

	sub = &Subsection{SubsectionNumber: "9"}
	require.Equal(t, "9", sub.GroupToken(parent))
}

func TestCustomSectionNumber(t *testing.T) {
	require.Equal(t, "3", CustomSectionNumber("3.2"))
	require.Equal(t, "1", CustomSectionNumber("1.99"))
	require.Equal(t, "7", CustomSectionNumber("7.1"))

	// Out-of-range and non-numeric prefixes land in section 7.
	require.Equal(t, "7", CustomSectionNumber("9.1"))
	require.Equal(t, "7", CustomSectionNumber("0.5"))
	require.Equal(t, "7", CustomSectionNumber("A.1"))
	require.Equal(t, "7", CustomSectionNumber("8"))
}
