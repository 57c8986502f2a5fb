package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/persistence/models"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

type CriteriaRepository struct{}

func NewCriteriaRepository() criteria.Repository {
	return &CriteriaRepository{}
}

func (r *CriteriaRepository) LoadTree(ctx context.Context, isoCode string) ([]*criteria.Section, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, iso_code, section_number, title, title_en, sort_order
		FROM iso_criteria_sections
		WHERE iso_code = $1
		ORDER BY sort_order
	`, isoCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*criteria.Section
	byID := map[uuid.UUID]*criteria.Section{}
	for rows.Next() {
		var row models.CriteriaSection
		if err := rows.Scan(&row.ID, &row.ISOCode, &row.SectionNumber, &row.Title, &row.TitleEN, &row.SortOrder); err != nil {
			return nil, err
		}
		section := toDomainSection(&row)
		sections = append(sections, section)
		byID[section.ID] = section
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	subRows, err := tx.Query(ctx, `
		SELECT sub.id, sub.section_id, sub.subsection_number, sub.title, sub.title_en, sub.sort_order, sub.company_id
		FROM iso_criteria_subsections sub
		JOIN iso_criteria_sections sec ON sec.id = sub.section_id
		WHERE sec.iso_code = $1
		ORDER BY sub.sort_order
	`, isoCode)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	subByID := map[uuid.UUID]*criteria.Subsection{}
	for subRows.Next() {
		var row models.CriteriaSubsection
		if err := subRows.Scan(&row.ID, &row.SectionID, &row.SubsectionNumber, &row.Title, &row.TitleEN, &row.SortOrder, &row.CompanyID); err != nil {
			return nil, err
		}
		sub := toDomainSubsection(&row)
		subByID[sub.ID] = sub
		if parent, ok := byID[sub.SectionID]; ok {
			parent.Subsections = append(parent.Subsections, sub)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, err
	}
	subRows.Close()

	qRows, err := tx.Query(ctx, `
		SELECT q.id, q.subsection_id, q.question_text, q.question_text_en, q.sort_order
		FROM iso_criteria_questions q
		JOIN iso_criteria_subsections sub ON sub.id = q.subsection_id
		JOIN iso_criteria_sections sec ON sec.id = sub.section_id
		WHERE sec.iso_code = $1
		ORDER BY q.sort_order
	`, isoCode)
	if err != nil {
		return nil, err
	}
	defer qRows.Close()

	for qRows.Next() {
		var row models.CriteriaQuestion
		if err := qRows.Scan(&row.ID, &row.SubsectionID, &row.QuestionText, &row.QuestionTextEN, &row.SortOrder); err != nil {
			return nil, err
		}
		question := toDomainQuestion(&row)
		if parent, ok := subByID[question.SubsectionID]; ok {
			parent.Questions = append(parent.Questions, question)
		}
	}
	if err := qRows.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *CriteriaRepository) GetSectionByNumber(ctx context.Context, isoCode, sectionNumber string) (*criteria.Section, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, iso_code, section_number, title, title_en, sort_order
		FROM iso_criteria_sections
		WHERE iso_code = $1 AND section_number = $2
	`, isoCode, sectionNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, criteria.ErrSectionNotFound
	}
	var row models.CriteriaSection
	if err := rows.Scan(&row.ID, &row.ISOCode, &row.SectionNumber, &row.Title, &row.TitleEN, &row.SortOrder); err != nil {
		return nil, err
	}
	return toDomainSection(&row), nil
}

func (r *CriteriaRepository) MaxSubsectionSortOrder(ctx context.Context, sectionID uuid.UUID) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var max int
	if err := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(sort_order), 0)
		FROM iso_criteria_subsections
		WHERE section_id = $1
	`, sectionID).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *CriteriaRepository) UpsertSection(ctx context.Context, section *criteria.Section) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO iso_criteria_sections (iso_code, section_number, title, title_en, sort_order)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT (iso_code, section_number) DO UPDATE
		SET title = EXCLUDED.title,
		    title_en = EXCLUDED.title_en,
		    sort_order = EXCLUDED.sort_order
		RETURNING id
	`,
		section.ISOCode,
		section.SectionNumber,
		section.Title,
		section.TitleEN,
		section.SortOrder,
	).Scan(&section.ID)
}

func (r *CriteriaRepository) UpsertSubsection(ctx context.Context, sub *criteria.Subsection) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO iso_criteria_subsections (section_id, subsection_number, title, title_en, sort_order, company_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		ON CONFLICT (section_id, subsection_number) DO UPDATE
		SET title = EXCLUDED.title,
		    title_en = EXCLUDED.title_en,
		    sort_order = EXCLUDED.sort_order
		RETURNING id
	`,
		sub.SectionID,
		sub.SubsectionNumber,
		sub.Title,
		sub.TitleEN,
		sub.SortOrder,
		sub.CompanyID,
	).Scan(&sub.ID)
}

func (r *CriteriaRepository) InsertQuestion(ctx context.Context, question *criteria.Question) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO iso_criteria_questions (subsection_id, question_text, question_text_en, sort_order)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id
	`,
		question.SubsectionID,
		question.QuestionText,
		question.QuestionTextEN,
		question.SortOrder,
	).Scan(&question.ID)
}

func (r *CriteriaRepository) DeleteSubsection(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM iso_criteria_subsections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return criteria.ErrSubsectionNotFound
	}
	return nil
}

func (r *CriteriaRepository) DeleteSubsections(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM iso_criteria_subsections WHERE id = ANY($1)`, ids)
	return err
}

func (r *CriteriaRepository) DeleteSubsectionsBySection(ctx context.Context, sectionID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM iso_criteria_subsections WHERE section_id = $1`, sectionID)
	return err
}

func (r *CriteriaRepository) DeleteSubsectionsByPrefix(ctx context.Context, isoCode, prefix string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM iso_criteria_subsections
		WHERE subsection_number ILIKE $1 || '%'
		  AND section_id IN (SELECT id FROM iso_criteria_sections WHERE iso_code = $2)
	`, prefix, isoCode)
	return err
}

func (r *CriteriaRepository) DeleteSection(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM iso_criteria_sections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return criteria.ErrSectionNotFound
	}
	return nil
}

func (r *CriteriaRepository) DeleteStandardSections(ctx context.Context, isoCode string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM iso_criteria_sections WHERE iso_code = $1`, isoCode)
	return err
}

func (r *CriteriaRepository) UpdateSectionTitle(ctx context.Context, id uuid.UUID, title string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE iso_criteria_sections SET title = $1 WHERE id = $2`, title, id)
	return err
}

func (r *CriteriaRepository) UpdateSubsectionTitle(ctx context.Context, id uuid.UUID, title string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE iso_criteria_subsections SET title = $1 WHERE id = $2`, title, id)
	return err
}
