// Package bundles ships the built-in criteria catalogs, one JSON file per
// standard. Only ISO 45001 carries the full subsection catalog; the other
// standards start with their top-level sections and grow through custom
// criteria.
package bundles

import (
	"embed"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

//go:embed *.json
var files embed.FS

type Question struct {
	QuestionText   string `json:"question_text"`
	QuestionTextEN string `json:"question_text_en"`
	SortOrder      int    `json:"sort_order"`
}

type Subsection struct {
	SubsectionNumber string     `json:"subsection_number"`
	Title            string     `json:"title"`
	TitleEN          string     `json:"title_en"`
	SortOrder        int        `json:"sort_order"`
	Questions        []Question `json:"questions"`
}

type Section struct {
	SectionNumber string       `json:"section_number"`
	Title         string       `json:"title"`
	TitleEN       string       `json:"title_en"`
	SortOrder     int          `json:"sort_order"`
	Subsections   []Subsection `json:"subsections"`
}

type Bundle struct {
	ISOCode       string    `json:"iso_code"`
	ISOName       string    `json:"iso_name"`
	TotalCriteria int       `json:"total_criteria"`
	Sections      []Section `json:"sections"`
}

// Load returns the embedded bundle for the iso code.
func Load(isoCode string) (*Bundle, error) {
	name := "iso_" + strings.TrimPrefix(strings.ToLower(isoCode), "iso_") + ".json"
	raw, err := files.ReadFile(name)
	if err != nil {
		return nil, errors.Errorf("no criteria bundle for %s", isoCode)
	}
	var bundle Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, errors.Wrapf(err, "failed to decode criteria bundle %s", name)
	}
	return &bundle, nil
}
