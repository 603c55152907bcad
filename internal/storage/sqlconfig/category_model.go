package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Titles are intended to be unique per
// exact string match but are not guarded by a storage-level constraint, so
// concurrent resolutions of the same new title can each create a row.
type Category struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Title string
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByTitle(ctx context.Context, title string) (*Category, error)
	FindByTitles(ctx context.Context, titles []string) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	BulkInsert(ctx context.Context, creates []*CategoryCreate) ([]*Category, error)
}
