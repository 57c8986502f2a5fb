package profilefield

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrFieldNotFound = errors.New("profile field not found")

// Field is one configurable employee profile attribute. FieldName is the
// technical key and never changes after creation; only the label and
// behavior flags are editable.
type Field struct {
	ID                  uuid.UUID
	CompanyID           uuid.UUID
	FieldName           string
	FieldLabel          string
	FieldType           string
	ExtractedFromResume bool
	IsRequired          bool
	DisplayOrder        int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UpdateData carries the editable subset of a field. The technical name is
// deliberately absent.
type UpdateData struct {
	FieldLabel          string
	FieldType           string
	ExtractedFromResume bool
	IsRequired          bool
}

type Repository interface {
	// List returns the company's fields ordered by display order.
	List(ctx context.Context) ([]*Field, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, field *Field) error
	Update(ctx context.Context, id uuid.UUID, data UpdateData) error
	Delete(ctx context.Context, id uuid.UUID) error
}
