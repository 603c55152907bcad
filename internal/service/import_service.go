package service

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Import files carry four columns in fixed order: title, type, value,
// category. The first row is a header and is skipped.
const importFieldCount = 4

type pendingRow struct {
	title    string
	rowType  string
	value    decimal.Decimal
	category string
}

// ImportService ingests transactions in bulk from a CSV file. The import is
// best-effort: rows missing required fields are dropped without surfacing an
// error, while a storage failure aborts the whole run with nothing persisted.
type ImportService struct {
	storage    *storage.Storage
	categories *CategoryResolver
	log        *logrus.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(store *storage.Storage, categories *CategoryResolver, log *logrus.Logger) *ImportService {
	return &ImportService{
		storage:    store,
		categories: categories,
		log:        log,
	}
}

// Execute reads the file at path to the end, resolves every referenced
// category in one bulk operation, inserts all surviving rows in one bulk
// operation, and removes the file. The file is removed even when it produced
// zero rows; a failed bulk insert aborts before cleanup.
func (s *ImportService) Execute(ctx context.Context, path string) ([]Transaction, error) {
	pending, titles, err := s.readRows(path)
	if err != nil {
		return nil, err
	}

	if len(pending) == 0 {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
		return nil, nil
	}

	resolved, err := s.categories.ResolveMany(ctx, distinct(titles))
	if err != nil {
		return nil, err
	}

	drafts := make([]*sqlconfig.TransactionCreate, len(pending))
	for i, row := range pending {
		drafts[i] = &sqlconfig.TransactionCreate{
			Title:      row.title,
			Value:      row.value,
			Type:       sqlconfig.TransactionType(row.rowType),
			CategoryID: resolved[row.category].ID,
		}
	}

	rows, err := s.storage.Transactions.BulkInsert(ctx, drafts)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}

	return transactions, nil
}

// readRows consumes the whole file before any category resolution happens.
// Rows with an empty title, type, or value after trimming are dropped
// silently, as are rows whose type is not a known transaction type; a missing
// category is not validated and passes through as-is.
func (s *ImportService) readRows(path string) ([]pendingRow, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// Header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var pending []pendingRow
	var titles []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		fields := make([]string, importFieldCount)
		for i := range fields {
			if i < len(record) {
				fields[i] = strings.TrimSpace(record[i])
			}
		}
		title, rowType, rawValue, category := fields[0], fields[1], fields[2], fields[3]

		if title == "" || rowType == "" || rawValue == "" {
			s.log.WithField("row", spew.Sdump(record)).Debug("import: dropping incomplete row")
			continue
		}

		if !sqlconfig.TransactionType(rowType).Valid() {
			s.log.WithField("row", spew.Sdump(record)).Debug("import: dropping row with unknown type")
			continue
		}

		value, err := decimal.NewFromString(rawValue)
		if err != nil {
			s.log.WithField("row", spew.Sdump(record)).Debug("import: dropping row with non-numeric value")
			continue
		}

		titles = append(titles, category)
		pending = append(pending, pendingRow{
			title:    title,
			rowType:  rowType,
			value:    value,
			category: category,
		})
	}

	return pending, titles, nil
}

// distinct reduces the referenced titles to their first occurrence, keeping
// arrival order.
func distinct(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}
