package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{"id", "title", "value", "type", "category_id", "created_at"}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) TransactionsTable {
	return TransactionsTable{exec: bob.NewDB(db)}
}

// FindByID retrieves a transaction by primary key. Returns sql.ErrNoRows when
// no transaction has the given id.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", "title", "value", "type", "category_id"),
		im.Values(psql.Arg(create.Title, create.Value, create.Type, create.CategoryID)),
		im.Returning(transactionColumns...),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// BulkInsert creates all given transactions in a single statement and returns
// the stored rows. All rows are inserted or none are.
func (t *TransactionsTable) BulkInsert(ctx context.Context, creates []*TransactionCreate) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transactions", "title", "value", "type", "category_id"),
		im.Returning(transactionColumns...),
	}
	for _, create := range creates {
		queryMods = append(queryMods, im.Values(psql.Arg(create.Title, create.Value, create.Type, create.CategoryID)))
	}
	return bob.All(ctx, t.exec, psql.Insert(queryMods...), scan.StructMapper[*Transaction]())
}

// Delete removes a transaction by primary key.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns transactions matching the filter, newest first. Nil filter
// returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		var whereMods []mods.Where[*dialect.SelectQuery]
		if filter.CategoryID != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.Type != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
		}
		if len(whereMods) == 1 {
			queryMods = append(queryMods, whereMods[0])
		} else if len(whereMods) > 1 {
			queryMods = append(queryMods, psql.WhereAnd(whereMods...))
		}
	}
	queryMods = append(queryMods,
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}
