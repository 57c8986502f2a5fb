package services

import "context"

// Fixed German titles applied to ISO 45001 trees that were imported from an
// older English-only catalog.
var germanSectionTitles = map[string]string{
	"1": "Kontext der Organisation",
	"2": "Führung (Leadership)",
	"3": "Planung",
	"4": "Unterstützung",
	"5": "Betrieb",
	"6": "Bewertung der Leistung",
	"7": "Verbesserung",
	"8": "Glossar",
}

var germanSubsectionTitles = map[string]string{
	"1.1":  "Externe und interne Themen identifizieren",
	"1.2":  "Interessierte Parteien und deren Anforderungen",
	"1.3":  "Anwendungsbereich des Arbeitsschutzmanagementsystems",
	"1.4":  "Managementsystem und Schnittstellen",
	"2.1":  "Verantwortung und Verpflichtung der obersten Leitung",
	"2.2":  "Arbeitsschutzpolitik",
	"2.3":  "Rollen, Verantwortlichkeiten und Befugnisse",
	"2.4":  "Beteiligung und Konsultation der Beschäftigten",
	"2.5":  "Besondere Beauftragte und Fachfunktionen",
	"3.1":  "Maßnahmen zum Umgang mit Risiken und Chancen",
	"3.2":  "Rechtliche und andere Anforderungen",
	"3.3":  "Arbeitsschutzziele",
	"3.4":  "Notfall- und Krisenplanung",
	"3.6":  "Detaillierte Zielplanung",
	"4.1":  "Ressourcenmanagement & Budget",
	"4.2":  "Kompetenz und Qualifikation",
	"4.3":  "Bewusstsein und Kommunikation",
	"4.4":  "Dokumentierte Information",
	"4.5":  "Wissensmanagement",
	"4.6":  "Kommunikation & Dokumentation",
	"5.1":  "Betriebliche Planung und Steuerung",
	"5.2":  "Gefährdungsbeurteilung & Schutzmaßnahmen",
	"5.3":  "Management of Change",
	"5.4":  "Beschaffung & Lieferantenmanagement",
	"5.5":  "Notfallvorsorge und Gefahrenabwehr",
	"5.6":  "Instandhaltungsmanagement",
	"5.7":  "Betriebliche Steuerung und Prozessorganisation",
	"5.9":  "Sicherheits- und Gesundheitsmanagement",
	"5.10": "Nachhaltigkeit und Umweltschutz",
	"6.1":  "Überwachung, Messung, Analyse",
	"6.2":  "Interne Audits",
	"6.3":  "Managementbewertung",
	"6.4":  "Feedback & Lernen",
	"7.1":  "Kontinuierliche Verbesserung",
	"7.2":  "Nichtkonformitäten & Korrekturmaßnahmen",
	"7.3":  "Management psychosozialer Risiken",
	"7.4":  "Lessons Learned",
	"7.5":  "Compliance & Ethik",
	"7.6":  "Innovation und Gesundheitsprogramme",
	"8.1":  "Zusätzliche Informationen",
}

// ApplyGermanTranslations backfills German titles on the ISO 45001 tree and
// returns how many rows changed. Numbers without a translation are left
// alone.
func (s *TreeService) ApplyGermanTranslations(ctx context.Context) (int, error) {
	sections, err := s.repo.LoadTree(ctx, "ISO_45001")
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, section := range sections {
		if title, ok := germanSectionTitles[section.SectionNumber]; ok && section.Title != title {
			if err := s.repo.UpdateSectionTitle(ctx, section.ID, title); err != nil {
				return updated, err
			}
			updated++
		}
		for _, sub := range section.Subsections {
			if title, ok := germanSubsectionTitles[sub.SubsectionNumber]; ok && sub.Title != title {
				if err := s.repo.UpdateSubsectionTitle(ctx, sub.ID, title); err != nil {
					return updated, err
				}
				updated++
			}
		}
	}
	return updated, nil
}
