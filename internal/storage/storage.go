package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Storage aggregates the per-table stores. Fields are interfaces so services
// can be tested against mocks.
type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	transactions := sqlconfig.NewTransactionsTable(db)
	categories := sqlconfig.NewCategoriesTable(db)

	return &Storage{
		DB:           db,
		Transactions: &transactions,
		Categories:   &categories,
	}
}
