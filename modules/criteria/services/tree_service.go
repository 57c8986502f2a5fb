package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/bundles"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type TreeService struct {
	repo      criteria.Repository
	publisher eventbus.EventBus
}

func NewTreeService(repo criteria.Repository, publisher eventbus.EventBus) *TreeService {
	return &TreeService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TreeService) LoadTree(ctx context.Context, isoCode string) ([]*criteria.Section, error) {
	return s.repo.LoadTree(ctx, isoCode)
}

// Groups returns the display grouping of a standard's subsections.
func (s *TreeService) Groups(ctx context.Context, isoCode string) ([]criteria.Group, error) {
	sections, err := s.repo.LoadTree(ctx, isoCode)
	if err != nil {
		return nil, err
	}
	return criteria.GroupSubsections(sections), nil
}

// AddCustomCriterion files a company criterion under the section matching its
// number prefix; prefixes outside 1-7 land in section 7. A missing hosting
// section is terminal.
func (s *TreeService) AddCustomCriterion(ctx context.Context, isoCode, criterionID, title string) (*criteria.Subsection, error) {
	criterionID = strings.TrimSpace(criterionID)
	if criterionID == "" {
		return nil, serrors.NewValidationError("criterion_id")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, serrors.NewValidationError("title")
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	sectionNumber := criteria.CustomSectionNumber(criterionID)
	section, err := s.repo.GetSectionByNumber(ctx, isoCode, sectionNumber)
	if err != nil {
		return nil, errors.Wrapf(err, "no hosting section %s for standard %s", sectionNumber, isoCode)
	}
	maxOrder, err := s.repo.MaxSubsectionSortOrder(ctx, section.ID)
	if err != nil {
		return nil, err
	}

	sub := &criteria.Subsection{
		SectionID:        section.ID,
		SubsectionNumber: criterionID,
		Title:            title,
		SortOrder:        maxOrder + 1,
		CompanyID:        &companyID,
	}
	if err := s.repo.UpsertSubsection(ctx, sub); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "add_custom_criterion", sub.ID.String(), title, map[string]interface{}{
		"isoCode":     isoCode,
		"criterionId": criterionID,
		"section":     sectionNumber,
	})
	return sub, nil
}

func (s *TreeService) DeleteSubsection(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteSubsection(ctx, id); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_criterion", id.String(), "", nil)
	return nil
}

func (s *TreeService) DeleteSubsections(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.DeleteSubsections(ctx, ids); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_criteria_batch", "", "", map[string]interface{}{
		"count": len(ids),
	})
	return nil
}

// DeleteSectionGroup removes one display group. Numeric keys 1-7 drop the
// section's subsections and then the section row itself; any other key
// deletes by subsection-number prefix across the whole standard, which is
// how custom groups without an own section row go away.
func (s *TreeService) DeleteSectionGroup(ctx context.Context, isoCode, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return serrors.NewValidationError("section")
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 7 {
		section, err := s.repo.GetSectionByNumber(ctx, isoCode, key)
		if err != nil {
			return err
		}
		if err := s.repo.DeleteSubsectionsBySection(ctx, section.ID); err != nil {
			return err
		}
		if err := s.repo.DeleteSection(ctx, section.ID); err != nil {
			return err
		}
	} else {
		if err := s.repo.DeleteSubsectionsByPrefix(ctx, isoCode, key); err != nil {
			return err
		}
	}
	s.publishAudit(ctx, "delete_criteria_section", "", key, map[string]interface{}{
		"isoCode": isoCode,
	})
	return nil
}

type ImportResult struct {
	ISOCode     string
	Sections    int
	Subsections int
	Questions   int
}

// ImportStandard loads the embedded bundle and upserts it level by level.
// Rerunning accumulates: sections and subsections converge on their conflict
// keys while questions are inserted again. ReimportStandard is the
// duplication-safe variant.
func (s *TreeService) ImportStandard(ctx context.Context, isoCode string) (*ImportResult, error) {
	bundle, err := bundles.Load(isoCode)
	if err != nil {
		return nil, err
	}
	result := &ImportResult{ISOCode: bundle.ISOCode}
	for _, sectionData := range bundle.Sections {
		section := &criteria.Section{
			ISOCode:       bundle.ISOCode,
			SectionNumber: sectionData.SectionNumber,
			Title:         sectionData.Title,
			TitleEN:       sectionData.TitleEN,
			SortOrder:     sectionData.SortOrder,
		}
		if err := s.repo.UpsertSection(ctx, section); err != nil {
			return nil, errors.Wrapf(err, "failed to import section %s", sectionData.SectionNumber)
		}
		result.Sections++

		for _, subData := range sectionData.Subsections {
			sub := &criteria.Subsection{
				SectionID:        section.ID,
				SubsectionNumber: subData.SubsectionNumber,
				Title:            subData.Title,
				TitleEN:          subData.TitleEN,
				SortOrder:        subData.SortOrder,
			}
			if err := s.repo.UpsertSubsection(ctx, sub); err != nil {
				return nil, errors.Wrapf(err, "failed to import subsection %s", subData.SubsectionNumber)
			}
			result.Subsections++

			for _, questionData := range subData.Questions {
				question := &criteria.Question{
					SubsectionID:   sub.ID,
					QuestionText:   questionData.QuestionText,
					QuestionTextEN: questionData.QuestionTextEN,
					SortOrder:      questionData.SortOrder,
				}
				if err := s.repo.InsertQuestion(ctx, question); err != nil {
					return nil, errors.Wrap(err, "failed to import question")
				}
				result.Questions++
			}
		}
	}
	s.publishAudit(ctx, "import_standard", "", bundle.ISOCode, map[string]interface{}{
		"sections":    result.Sections,
		"subsections": result.Subsections,
	})
	return result, nil
}

// ReimportStandard drops the standard's tree before importing so questions
// cannot pile up across runs.
func (s *TreeService) ReimportStandard(ctx context.Context, isoCode string) (*ImportResult, error) {
	if err := s.repo.DeleteStandardSections(ctx, isoCode); err != nil {
		return nil, err
	}
	return s.ImportStandard(ctx, isoCode)
}

func (s *TreeService) publishAudit(ctx context.Context, action, targetID, targetName string, details map[string]interface{}) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: "criteria",
		TargetID:   targetID,
		TargetName: targetName,
		Details:    details,
	})
}
