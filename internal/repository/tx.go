package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// withTx runs fn inside a single transaction.  The transaction is
// committed when fn returns nil and rolled back otherwise, so no partial
// write survives an error.  The connection goes back to the pool on
// every exit path, including a panic inside fn.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()
	return fn(tx)
}

// likePattern builds a case-insensitive "contains" pattern for a LIKE
// clause using '\' as the escape character.  An empty term yields "%",
// which matches every row.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
