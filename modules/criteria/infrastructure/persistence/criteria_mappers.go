package persistence

import (
	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/criteria"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/standard"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/persistence/models"
)

func toDomainSection(row *models.CriteriaSection) *criteria.Section {
	section := &criteria.Section{
		ID:            uuid.MustParse(row.ID),
		ISOCode:       row.ISOCode,
		SectionNumber: row.SectionNumber,
		Title:         row.Title,
		SortOrder:     row.SortOrder,
	}
	if row.TitleEN != nil {
		section.TitleEN = *row.TitleEN
	}
	return section
}

func toDomainSubsection(row *models.CriteriaSubsection) *criteria.Subsection {
	sub := &criteria.Subsection{
		ID:               uuid.MustParse(row.ID),
		SectionID:        uuid.MustParse(row.SectionID),
		SubsectionNumber: row.SubsectionNumber,
		Title:            row.Title,
		SortOrder:        row.SortOrder,
	}
	if row.TitleEN != nil {
		sub.TitleEN = *row.TitleEN
	}
	if row.CompanyID != nil {
		companyID := uuid.MustParse(*row.CompanyID)
		sub.CompanyID = &companyID
	}
	return sub
}

func toDomainQuestion(row *models.CriteriaQuestion) *criteria.Question {
	question := &criteria.Question{
		ID:           uuid.MustParse(row.ID),
		SubsectionID: uuid.MustParse(row.SubsectionID),
		QuestionText: row.QuestionText,
		SortOrder:    row.SortOrder,
	}
	if row.QuestionTextEN != nil {
		question.QuestionTextEN = *row.QuestionTextEN
	}
	return question
}

func toDomainStandard(row *models.StandardSelection) *standard.Selection {
	return &standard.Selection{
		ID:        uuid.MustParse(row.ID),
		CompanyID: uuid.MustParse(row.CompanyID),
		ISOCode:   row.ISOCode,
		ISOName:   row.ISOName,
		IsCustom:  row.IsCustom,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}
