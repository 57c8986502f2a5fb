package taxonomy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrItemNotFound = errors.New("taxonomy item not found")

// Item is one named entry in a taxonomy collection, scoped to a company.
type Item struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Collection describes one taxonomy table. NameColumn exists because
// job_roles persists the display name under "title"; every other collection
// uses "name".
type Collection struct {
	Key        string
	Table      string
	NameColumn string
	Singular   string
}

var collections = []Collection{
	{Key: "departments", Table: "departments", NameColumn: "name", Singular: "department"},
	{Key: "locations", Table: "locations", NameColumn: "name", Singular: "location"},
	{Key: "job-roles", Table: "job_roles", NameColumn: "title", Singular: "job_role"},
	{Key: "exposure-groups", Table: "exposure_groups", NameColumn: "name", Singular: "exposure_group"},
	{Key: "risk-categories", Table: "risk_categories", NameColumn: "name", Singular: "risk_category"},
	{Key: "training-types", Table: "training_types", NameColumn: "name", Singular: "training_type"},
	{Key: "audit-categories", Table: "audit_categories", NameColumn: "name", Singular: "audit_category"},
	{Key: "measure-building-blocks", Table: "measure_building_blocks", NameColumn: "name", Singular: "measure_building_block"},
}

func Collections() []Collection {
	out := make([]Collection, len(collections))
	copy(out, collections)
	return out
}

func CollectionByKey(key string) (Collection, bool) {
	for _, c := range collections {
		if c.Key == key {
			return c, true
		}
	}
	return Collection{}, false
}

type Repository interface {
	List(ctx context.Context, col Collection) ([]*Item, error)
	Create(ctx context.Context, col Collection, item *Item) error
	Update(ctx context.Context, col Collection, item *Item) error
	Delete(ctx context.Context, col Collection, id uuid.UUID) error
}
