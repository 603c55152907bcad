package sqlconfig

import (
	"database/sql/driver"
	"fmt"
)

// TransactionType is the kind of monetary movement a transaction records.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeOutcome TransactionType = "outcome"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeOutcome
}

// Scan implements sql.Scanner.
func (t *TransactionType) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*t = TransactionType(v)
	case []byte:
		*t = TransactionType(v)
	default:
		return fmt.Errorf("sqlconfig: cannot scan %T into TransactionType", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (t TransactionType) Value() (driver.Value, error) {
	return string(t), nil
}
