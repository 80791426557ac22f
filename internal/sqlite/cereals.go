// CRUD, filter, and bulk-load operations on the cereals table. Statements
// use positional bind parameters throughout; the only identifiers spliced
// into SQL are column names resolved through the whitelist map.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dukaforge/pantry/pkg/types"
)

// bindArgs returns the record's non-id values in cerealColumns order.
func bindArgs(c *types.Cereal) []any {
	return []any{
		c.Name, c.Mfr, c.Type, c.Calories, c.Protein, c.Fat, c.Sodium,
		c.Fiber, c.Carbo, c.Sugars, c.Potass, c.Vitamins, c.Shelf,
		c.Weight, c.Cups, c.Rating,
	}
}

// Create inserts a new record. The passed record keeps a zero ID; callers
// re-read when they need the assigned one.
func (s *Store) Create(c *types.Cereal) *types.Response {
	query := fmt.Sprintf(
		"INSERT INTO cereals (%s) VALUES (%s)",
		strings.Join(cerealColumns, ", "), placeholders(len(cerealColumns)),
	)
	if _, err := s.db.Exec(query, bindArgs(c)...); err != nil {
		return s.failure("create", err)
	}
	return types.NewSuccess("created", http.StatusCreated, nil)
}

// ReadAll returns every record in insertion order.
func (s *Store) ReadAll() *types.Response {
	rows, err := s.db.Query(selectCereals + " ORDER BY id ASC")
	if err != nil {
		return s.failure("read all", err)
	}
	defer rows.Close()

	cereals, err := scanCereals(rows)
	if err != nil {
		return s.failure("read all", err)
	}
	return types.NewSuccess("fetched all cereals", http.StatusOK, cereals)
}

// ReadByID returns the matching record as a one-element list, or an empty
// list when no row matches. Interpreting the empty case is the caller's
// job.
func (s *Store) ReadByID(id int64) *types.Response {
	rows, err := s.db.Query(selectCereals+" WHERE id = ?", id)
	if err != nil {
		return s.failure("read by id", err)
	}
	defer rows.Close()

	cereals, err := scanCereals(rows)
	if err != nil {
		return s.failure("read by id", err)
	}
	return types.NewSuccess("fetched cereal", http.StatusOK, cereals)
}

// Update replaces all non-id columns of the row matching id. No existence
// check is made here; the dispatcher checks via Exists first.
func (s *Store) Update(id int64, c *types.Cereal) *types.Response {
	assignments := make([]string, len(cerealColumns))
	for i, col := range cerealColumns {
		assignments[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE cereals SET %s WHERE id = ?", strings.Join(assignments, ", "))

	args := append(bindArgs(c), id)
	if _, err := s.db.Exec(query, args...); err != nil {
		return s.failure("update", err)
	}
	return types.NewSuccess("updated", http.StatusOK, nil)
}

// Delete removes the row matching id, reading it first so a missing row
// yields a 404 envelope rather than a silent no-op.
func (s *Store) Delete(id int64) *types.Response {
	if !s.Exists(id) {
		return types.NewError("not found", http.StatusNotFound, "")
	}
	if _, err := s.db.Exec("DELETE FROM cereals WHERE id = ?", id); err != nil {
		return s.failure("delete", err)
	}
	return types.NewSuccess("deleted", http.StatusOK, nil)
}

// Exists reports whether a row with the given id is present.
func (s *Store) Exists(id int64) bool {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM cereals WHERE id = ?", id).Scan(&one)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Error("existence check failed", zap.Int64("id", id), zap.Error(err))
		}
		return false
	}
	return true
}

// FilterBy returns the records matching every filter in the sequence.
// Field names were whitelist-checked by the builder and are re-resolved
// against the column map here; values are always bound.
func (s *Store) FilterBy(filters []types.Filter) *types.Response {
	if len(filters) == 0 {
		return s.ReadAll()
	}

	conditions := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		col, ok := columnForField[f.Field]
		if !ok {
			return types.NewError("invalid filter field", http.StatusBadRequest, f.Field)
		}
		conditions = append(conditions, col+" = ?")
		args = append(args, f.Value)
	}

	query := selectCereals + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY id ASC"
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return s.failure("filter", err)
	}
	defer rows.Close()

	cereals, err := scanCereals(rows)
	if err != nil {
		return s.failure("filter", err)
	}
	if len(cereals) == 0 {
		return types.NewError("no records found for filters", http.StatusNotFound, "")
	}
	return types.NewSuccess(
		fmt.Sprintf("found %d cereals for filters", len(cereals)),
		http.StatusOK, cereals,
	)
}

// BulkInsert loads records in one transaction using INSERT OR IGNORE, so
// rows already present under the natural key are skipped. Re-running the
// startup load against a populated table is a no-op.
func (s *Store) BulkInsert(cereals []*types.Cereal) *types.Response {
	if len(cereals) == 0 {
		return types.NewSuccess("nothing to insert", http.StatusCreated, nil)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return s.failure("bulk insert", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(
		"INSERT OR IGNORE INTO cereals (%s) VALUES (%s)",
		strings.Join(cerealColumns, ", "), placeholders(len(cerealColumns)),
	)
	stmt, err := tx.Prepare(query)
	if err != nil {
		return s.failure("bulk insert", err)
	}
	defer stmt.Close()

	for _, c := range cereals {
		if _, err := stmt.Exec(bindArgs(c)...); err != nil {
			return s.failure("bulk insert", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return s.failure("bulk insert", err)
	}
	return types.NewSuccess("inserted cereals", http.StatusCreated, nil)
}

// selectCereals is the shared projection in cerealColumns order.
const selectCereals = "SELECT id, name, mfr, type_, calories, protein, fat, sodium, " +
	"fiber, carbo, sugars, potass, vitamins, shelf, weight, cups, rating FROM cereals"

// scanCereals hydrates all rows into records. Returns an empty (non-nil)
// slice when no rows match so the envelope serializes data as a list.
func scanCereals(rows *sql.Rows) ([]*types.Cereal, error) {
	cereals := []*types.Cereal{}
	for rows.Next() {
		var c types.Cereal
		err := rows.Scan(
			&c.ID, &c.Name, &c.Mfr, &c.Type, &c.Calories, &c.Protein,
			&c.Fat, &c.Sodium, &c.Fiber, &c.Carbo, &c.Sugars, &c.Potass,
			&c.Vitamins, &c.Shelf, &c.Weight, &c.Cups, &c.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning cereal: %w", err)
		}
		cereals = append(cereals, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cereals: %w", err)
	}
	return cereals, nil
}
