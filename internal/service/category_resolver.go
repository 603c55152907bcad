package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// CategoryResolver maps category titles to existing or newly created
// categories. Matching is by exact string equality, case-sensitive, with no
// trimming beyond what the caller already did.
type CategoryResolver struct {
	storage *storage.Storage
}

// NewCategoryResolver creates a new CategoryResolver.
func NewCategoryResolver(store *storage.Storage) *CategoryResolver {
	return &CategoryResolver{storage: store}
}

// ResolveOne returns the category with the given title, creating it when no
// exact match exists.
func (r *CategoryResolver) ResolveOne(ctx context.Context, title string) (Category, error) {
	row, err := r.storage.Categories.FindByTitle(ctx, title)
	if errors.Is(err, sql.ErrNoRows) {
		// Find-then-insert with no uniqueness constraint on title: two
		// concurrent resolutions of the same new title can both land here
		// and each create a row.
		row, err = r.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{Title: title})
	}
	if err != nil {
		return Category{}, err
	}

	return categoryFromStorage(row), nil
}

// ResolveMany resolves a set of titles in two bulk storage operations: one
// lookup for the titles that already exist and one insert for the rest. The
// caller passes distinct titles. The result maps every requested title to its
// category.
func (r *CategoryResolver) ResolveMany(ctx context.Context, titles []string) (map[string]Category, error) {
	resolved := make(map[string]Category, len(titles))
	if len(titles) == 0 {
		return resolved, nil
	}

	existing, err := r.storage.Categories.FindByTitles(ctx, titles)
	if err != nil {
		return nil, err
	}
	for _, row := range existing {
		resolved[row.Title] = categoryFromStorage(row)
	}

	var missing []*sqlconfig.CategoryCreate
	for _, title := range titles {
		if _, ok := resolved[title]; !ok {
			missing = append(missing, &sqlconfig.CategoryCreate{Title: title})
		}
	}

	if len(missing) > 0 {
		created, err := r.storage.Categories.BulkInsert(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, row := range created {
			resolved[row.Title] = categoryFromStorage(row)
		}
	}

	return resolved, nil
}
