package standard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrStandardNotFound = errors.New("standard selection not found")

// Selection is one standard a company works against.
type Selection struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	ISOCode   string
	ISOName   string
	IsCustom  bool
	IsActive  bool
	CreatedAt time.Time
}

// Predefined is the built-in standard catalog.
type Predefined struct {
	ID          string
	Name        string
	Description string
}

var PredefinedStandards = []Predefined{
	{ID: "ISO_45001", Name: "ISO 45001", Description: "Occupational Health and Safety"},
	{ID: "ISO_14001", Name: "ISO 14001", Description: "Environmental Management"},
	{ID: "ISO_9001", Name: "ISO 9001", Description: "Quality Management"},
	{ID: "ISO_50001", Name: "ISO 50001", Description: "Energy Management"},
}

type Repository interface {
	List(ctx context.Context) ([]*Selection, error)
	// Upsert writes the selection keyed on (company_id, iso_code).
	Upsert(ctx context.Context, data *Selection) error
	Delete(ctx context.Context, isoCode string) error
}
