package history

import (
	"fmt"
	"strings"
	"time"
)

// timeLayout is fixed width so stored timestamps sort as text in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Entry struct {
	ID         int64
	SessionID  string
	Expression string
	System     string // "arabic", "roman" or "" when the operands were never classified
	Result     string
	Error      string
	CreatedAt  time.Time
}

// Failed reports whether the evaluation produced an error instead of a result.
func (e Entry) Failed() bool { return e.Error != "" }

type Query struct {
	System     string // "" = all, "arabic", "roman"
	FailedOnly bool
	Since      string // "" = no filter, e.g. "2026-01-01", local midnight
	Limit      int
}

func (d *DB) Insert(e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(
		`INSERT INTO evaluations (session_id, expression, system, result, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Expression, e.System, e.Result, e.Error, e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert evaluation: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns evaluations newest first.
func (d *DB) Recent(q Query) ([]Entry, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}

	var conditions []string
	var args []interface{}

	switch q.System {
	case "":
	case "arabic", "roman":
		conditions = append(conditions, "system = ?")
		args = append(args, q.System)
	default:
		return nil, fmt.Errorf("unknown numeral system %q (want arabic or roman)", q.System)
	}

	if q.FailedOnly {
		conditions = append(conditions, "error != ''")
	}

	if q.Since != "" {
		since, err := time.ParseInLocation("2006-01-02", q.Since, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --since date %q: %w", q.Since, err)
		}
		conditions = append(conditions, "created_at >= ?")
		args = append(args, since.UTC().Format(timeLayout))
	}

	query := "SELECT id, session_id, expression, system, result, error, created_at FROM evaluations"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, q.Limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Expression, &e.System, &e.Result, &e.Error, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
