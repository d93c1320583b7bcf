package repository

import (
	"context"

	"github.com/wolverinesfitness/backend/internal/content"
)

// ListQuery is an equality filter plus an optional result cap. Keys use wire
// names (category, type, program, isFeatured, isActive, ...). Result order is
// always (isFeatured desc, order asc, createdAt desc) when the section has a
// featured flag, else (order asc, createdAt desc).
type ListQuery struct {
	Filter map[string]interface{}
	Limit  int64
}

// Min is a filter value matching documents whose numeric field is >= Value
// (testimonial minimum-rating queries).
type Min struct {
	Value int
}

// FlagClearer is implemented by sections with a mutually-exclusive flag
// (Pricing.isPopular).
type FlagClearer interface {
	ClearFlag(name string)
}

// Store is the persistence surface of one section collection. PT is the
// pointer type of a section document (e.g. *content.Hero).
type Store[PT content.Section] interface {
	Insert(ctx context.Context, doc PT) error
	Get(ctx context.Context, id string) (PT, error)
	First(ctx context.Context) (PT, error)
	List(ctx context.Context, q ListQuery) ([]PT, error)
	Replace(ctx context.Context, doc PT) error
	Remove(ctx context.Context, id string) error
	Distinct(ctx context.Context, field string, q ListQuery) ([]string, error)
	// UnsetFlagExcept clears a boolean flag on every document except id.
	// Used for the pricing popularity exclusivity rule; best effort, not
	// atomic with the accompanying write.
	UnsetFlagExcept(ctx context.Context, flag, exceptID string) error
}
