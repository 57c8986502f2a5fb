package gcode

import (
	"context"
	"strings"
)

// Code is one entry of the German occupational medical examination catalog
// (G-Untersuchungen).
type Code struct {
	Code        string
	Description string
}

// Catalog is the fixed examination catalog, in display order.
var Catalog = []Code{
	{Code: "G 1.1", Description: "General medical examination"},
	{Code: "G 1.2", Description: "Ophthalmological examination"},
	{Code: "G 1.3", Description: "Audiological examination"},
	{Code: "G 1.4", Description: "Examination for tropical service"},
	{Code: "G 2", Description: "Blood (e.g. lead, solvents)"},
	{Code: "G 3", Description: "Allergizing substances"},
	{Code: "G 4", Description: "Skin diseases"},
	{Code: "G 5", Description: "Tropical service"},
	{Code: "G 6", Description: "Compressed air"},
	{Code: "G 7", Description: "Hazardous substances"},
	{Code: "G 8", Description: "Benzene"},
	{Code: "G 9", Description: "Mercury"},
	{Code: "G 10", Description: "Methyl alcohol"},
	{Code: "G 11", Description: "Carbon disulfide"},
	{Code: "G 12", Description: "Phosphorus"},
	{Code: "G 13", Description: "Hydrocarbons"},
	{Code: "G 14", Description: "Chromium compounds"},
	{Code: "G 15", Description: "Carcinogenic substances"},
	{Code: "G 16", Description: "Arsenic"},
	{Code: "G 17", Description: "Vinyl chloride"},
	{Code: "G 18", Description: "Pesticides"},
	{Code: "G 19", Description: "Nitro compounds"},
	{Code: "G 20", Description: "Noise"},
	{Code: "G 21", Description: "Cold"},
	{Code: "G 22", Description: "Heat"},
	{Code: "G 23", Description: "Ionizing radiation"},
	{Code: "G 24", Description: "Skin cancer"},
	{Code: "G 25", Description: "Driving activities"},
	{Code: "G 26", Description: "Non-ionizing radiation"},
	{Code: "G 27", Description: "Isocyanates"},
	{Code: "G 28", Description: "Latex"},
	{Code: "G 29", Description: "Benzol homologues"},
	{Code: "G 30", Description: "Biological agents"},
	{Code: "G 31", Description: "Overpressure"},
	{Code: "G 32", Description: "Cadmium"},
	{Code: "G 33", Description: "Asbestos"},
	{Code: "G 34", Description: "Fluorine"},
	{Code: "G 35", Description: "Work abroad under special climatic and health stresses"},
	{Code: "G 36", Description: "Bitumen"},
	{Code: "G 37", Description: "Display screen work"},
	{Code: "G 38", Description: "Nickel dusts"},
	{Code: "G 39", Description: "Welding fumes"},
	{Code: "G 40", Description: "Carcinogenic and mutagenic substances"},
	{Code: "G 41", Description: "Risk of falling"},
	{Code: "G 42", Description: "Infectious hazards"},
	{Code: "G 43", Description: "Biotechnology"},
	{Code: "G 44", Description: "Hardwood dusts"},
	{Code: "G 45", Description: "Styrene"},
	{Code: "G 46", Description: "Musculoskeletal stress including vibrations"},
}

var descriptions = func() map[string]string {
	m := make(map[string]string, len(Catalog))
	for _, entry := range Catalog {
		m[entry.Code] = entry.Description
	}
	return m
}()

// StoredName is the persisted "CODE - Description" form. Codes outside the
// catalog repeat the code as their own description.
func StoredName(code string) string {
	if description, ok := descriptions[code]; ok {
		return code + " - " + description
	}
	return code + " - " + code
}

// ParseCode recovers the code from a stored name. Names without the
// separator are taken as the code itself.
func ParseCode(name string) string {
	if code, _, ok := strings.Cut(name, " - "); ok {
		return code
	}
	return name
}

// AllCodes returns the catalog codes in order.
func AllCodes() []string {
	codes := make([]string, 0, len(Catalog))
	for _, entry := range Catalog {
		codes = append(codes, entry.Code)
	}
	return codes
}

type Repository interface {
	// ListNames returns the stored names of the company's selected
	// examinations.
	ListNames(ctx context.Context) ([]string, error)
	// Replace swaps the company's whole set for the given names in one
	// transaction.
	Replace(ctx context.Context, names []string) error
}
