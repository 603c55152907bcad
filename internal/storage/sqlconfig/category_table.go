package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []any{"id", "title", "created_at"}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable for the given database.
func NewCategoriesTable(db *sql.DB) CategoriesTable {
	return CategoriesTable{exec: bob.NewDB(db)}
}

// FindByTitle retrieves a category by exact title match. Returns sql.ErrNoRows
// when no category has the given title.
func (t *CategoriesTable) FindByTitle(ctx context.Context, title string) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("title").EQ(psql.Arg(title))),
		sm.Limit(1),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
}

// FindByTitles returns every category whose title is in the given set.
// Titles with no matching row are simply absent from the result.
func (t *CategoriesTable) FindByTitles(ctx context.Context, titles []string) ([]*Category, error) {
	if len(titles) == 0 {
		return nil, nil
	}
	args := make([]any, len(titles))
	for i, title := range titles {
		args[i] = title
	}
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("title").In(psql.Arg(args...))),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
}

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", "title"),
		im.Values(psql.Arg(create.Title)),
		im.Returning(categoryColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Category]())
}

// BulkInsert creates all given categories in a single statement and returns
// the stored rows.
func (t *CategoriesTable) BulkInsert(ctx context.Context, creates []*CategoryCreate) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("categories", "title"),
		im.Returning(categoryColumns...),
	}
	for _, create := range creates {
		queryMods = append(queryMods, im.Values(psql.Arg(create.Title)))
	}
	return bob.All(ctx, t.exec, psql.Insert(queryMods...), scan.StructMapper[*Category]())
}
