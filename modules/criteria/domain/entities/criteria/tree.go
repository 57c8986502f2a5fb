package criteria

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrSectionNotFound    = errors.New("criteria section not found")
	ErrSubsectionNotFound = errors.New("criteria subsection not found")
)

type Section struct {
	ID            uuid.UUID
	ISOCode       string
	SectionNumber string
	Title         string
	TitleEN       string
	SortOrder     int
	Subsections   []*Subsection
}

type Subsection struct {
	ID               uuid.UUID
	SectionID        uuid.UUID
	SubsectionNumber string
	Title            string
	TitleEN          string
	SortOrder        int
	// CompanyID is set only on company-added custom criteria; catalog rows
	// imported from a standard bundle leave it nil.
	CompanyID *uuid.UUID
	Questions []*Question
}

type Question struct {
	ID             uuid.UUID
	SubsectionID   uuid.UUID
	QuestionText   string
	QuestionTextEN string
	SortOrder      int
}

// GroupToken is the part of a subsection number before the first dot, the key
// subsections are grouped under. Numbers without a dot group under themselves.
func (s *Subsection) GroupToken(parent *Section) string {
	token, _, _ := strings.Cut(s.SubsectionNumber, ".")
	if token == "" {
		return parent.SectionNumber
	}
	return token
}

// Group is one display bucket of subsections sharing a number prefix.
type Group struct {
	Key         string
	Subsections []*Subsection
}

// GroupSubsections partitions every subsection of the tree by its group
// token. Numeric keys come first in ascending numeric order ("1.10" files
// under "1", after "1.2" when inserted later); non-numeric keys follow,
// sorted alphabetically. Within a group the input order is preserved.
func GroupSubsections(sections []*Section) []Group {
	index := map[string]int{}
	var groups []Group
	for _, section := range sections {
		for _, sub := range section.Subsections {
			key := sub.GroupToken(section)
			i, ok := index[key]
			if !ok {
				i = len(groups)
				index[key] = i
				groups = append(groups, Group{Key: key})
			}
			groups[i].Subsections = append(groups[i].Subsections, sub)
		}
	}
	sortGroups(groups)
	return groups
}

func sortGroups(groups []Group) {
	less := func(a, b Group) bool {
		an, aErr := strconv.Atoi(a.Key)
		bn, bErr := strconv.Atoi(b.Key)
		aIsNum, bIsNum := aErr == nil, bErr == nil
		switch {
		case aIsNum && bIsNum:
			return an < bn
		case aIsNum:
			return true
		case bIsNum:
			return false
		default:
			return a.Key < b.Key
		}
	}
	// Insertion sort keeps equal keys stable; group counts are tiny.
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && less(groups[j], groups[j-1]); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}

// CustomSectionNumber maps a new criterion id onto its hosting section.
// Tokens 1 through 7 land in their own section, anything else lands in
// section 7.
func CustomSectionNumber(criterionID string) string {
	token, _, _ := strings.Cut(strings.TrimSpace(criterionID), ".")
	if n, err := strconv.Atoi(token); err == nil && n >= 1 && n <= 7 {
		return token
	}
	return "7"
}

type Repository interface {
	// LoadTree returns the full section tree for one standard, every level
	// ordered by sort_order.
	LoadTree(ctx context.Context, isoCode string) ([]*Section, error)
	GetSectionByNumber(ctx context.Context, isoCode, sectionNumber string) (*Section, error)
	MaxSubsectionSortOrder(ctx context.Context, sectionID uuid.UUID) (int, error)
	UpsertSection(ctx context.Context, section *Section) error
	UpsertSubsection(ctx context.Context, sub *Subsection) error
	InsertQuestion(ctx context.Context, question *Question) error
	DeleteSubsection(ctx context.Context, id uuid.UUID) error
	DeleteSubsections(ctx context.Context, ids []uuid.UUID) error
	DeleteSubsectionsBySection(ctx context.Context, sectionID uuid.UUID) error
	// DeleteSubsectionsByPrefix removes every subsection of the standard
	// whose number starts with the given prefix.
	DeleteSubsectionsByPrefix(ctx context.Context, isoCode, prefix string) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
	// DeleteStandardSections drops all sections of a standard; subsections
	// and questions go with them.
	DeleteStandardSections(ctx context.Context, isoCode string) error
	UpdateSectionTitle(ctx context.Context, id uuid.UUID, title string) error
	UpdateSubsectionTitle(ctx context.Context, id uuid.UUID, title string) error
}
