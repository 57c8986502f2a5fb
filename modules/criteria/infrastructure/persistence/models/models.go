package models

import "time"

type CriteriaSection struct {
	ID            string
	ISOCode       string
	SectionNumber string
	Title         string
	TitleEN       *string
	SortOrder     int
}

type CriteriaSubsection struct {
	ID               string
	SectionID        string
	SubsectionNumber string
	Title            string
	TitleEN          *string
	SortOrder        int
	CompanyID        *string
}

type CriteriaQuestion struct {
	ID             string
	SubsectionID   string
	QuestionText   string
	QuestionTextEN *string
	SortOrder      int
}

type StandardSelection struct {
	ID        string
	CompanyID string
	ISOCode   string
	ISOName   string
	IsCustom  bool
	IsActive  bool
	CreatedAt time.Time
}
