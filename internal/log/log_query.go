// log_query.go reads and prunes the audit log for the `lned log` command.

package log

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable is returned when the log is disabled or was never opened.
var ErrUnavailable = errors.New("audit log unavailable")

// DefaultLimit is the number of entries Recent returns when none is given.
const DefaultLimit = 20

// Record is a stored log entry as read back from the database.
type Record struct {
	ID      int64     `json:"id"`
	Time    time.Time `json:"time"`
	Source  string    `json:"source"`
	Action  string    `json:"action"`
	Path    string    `json:"path,omitempty"`
	Line    int       `json:"line,omitempty"`
	Count   int       `json:"count,omitempty"`
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
}

// QueryOptions selects entries for Recent.
type QueryOptions struct {
	Limit       int  // Maximum entries (0 = DefaultLimit)
	AllProjects bool // Include entries from every directory
}

func current() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrUnavailable
	}
	return global, nil
}

// Recent returns the newest entries first. Unless opts.AllProjects is set,
// only entries recorded for the current project are returned.
func Recent(opts QueryOptions) ([]Record, error) {
	l, err := current()
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := `SELECT id, start, source, action, COALESCE(path, ''), COALESCE(line, 0),
	             COALESCE(result_count, 0), success, COALESCE(error, '')
	      FROM log`
	args := []any{}
	if !opts.AllProjects {
		q += ` WHERE project = ?`
		args = append(args, l.project)
	}
	q += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying log: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var start int64
		var success int
		if err := rows.Scan(&r.ID, &start, &r.Source, &r.Action, &r.Path, &r.Line, &r.Count, &success, &r.Error); err != nil {
			return nil, fmt.Errorf("reading log: %w", err)
		}
		r.Time = time.Unix(start, 0)
		r.Success = success == 1
		records = append(records, r)
	}
	return records, rows.Err()
}

// Prune deletes entries that started before cutoff and returns how many
// there were. With dryRun the entries are only counted.
func Prune(cutoff time.Time, dryRun bool) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}

	if dryRun {
		var n int64
		err := l.db.QueryRow(`SELECT COUNT(*) FROM log WHERE start < ?`, cutoff.Unix()).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("counting log entries: %w", err)
		}
		return n, nil
	}

	res, err := l.db.Exec(`DELETE FROM log WHERE start < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("pruning log: %w", err)
	}
	return res.RowsAffected()
}
