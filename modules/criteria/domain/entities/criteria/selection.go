package criteria

import "strings"

// Composite selection ids. A selection set mixes entries of several
// standards; the iso code prefix keeps them apart.

func SubsectionSelectionID(isoCode string, subsectionID string) string {
	return isoCode + "-" + subsectionID
}

func SectionSelectionID(isoCode, sectionNumber string) string {
	return isoCode + "-section-" + sectionNumber
}

func HasStandardPrefix(selectionID, isoCode string) bool {
	return strings.HasPrefix(selectionID, isoCode+"-")
}

// Toggle returns the selection with the id added or removed.
func Toggle(selection []string, id string) []string {
	for i, existing := range selection {
		if existing == id {
			out := make([]string, 0, len(selection)-1)
			out = append(out, selection[:i]...)
			return append(out, selection[i+1:]...)
		}
	}
	out := make([]string, 0, len(selection)+1)
	out = append(out, selection...)
	return append(out, id)
}

// SelectAll replaces every entry of one standard with the full id set
// computed from its tree. Entries belonging to other standards pass through
// untouched.
func SelectAll(selection []string, isoCode string, sections []*Section) []string {
	out := make([]string, 0, len(selection))
	for _, id := range selection {
		if !HasStandardPrefix(id, isoCode) {
			out = append(out, id)
		}
	}
	for _, section := range sections {
		for _, sub := range section.Subsections {
			out = append(out, SubsectionSelectionID(isoCode, sub.ID.String()))
		}
		out = append(out, SectionSelectionID(isoCode, section.SectionNumber))
	}
	return out
}
