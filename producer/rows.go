package producer

import (
	"database/sql"
)

// Rows adapts a [sql.Rows] cursor, the canonical single-pass stream, into a
// producer. The first scan or cursor error ends the stream; check [Rows.Err]
// after traversal, mirroring sql.Rows itself.
type Rows[E any] struct {
	rows *sql.Rows
	scan func(*sql.Rows) (E, error)
	err  error
}

// FromRows wraps rows with a scan function that reads the current row.
//
// Pass (*Rows).Next to memoseq.New to get a multi-pass view over a query
// result without loading it up front:
//
//	rows, err := db.Query(`select name from user order by name`)
//	...
//	src := producer.FromRows(rows, func(rows *sql.Rows) (string, error) {
//		var name string
//		err := rows.Scan(&name)
//		return name, err
//	})
//	users := memoseq.New(src.Next)
func FromRows[E any](rows *sql.Rows, scan func(*sql.Rows) (E, error)) *Rows[E] {
	if rows == nil {
		panic("rows can't be nil")
	}
	if scan == nil {
		panic("scan can't be nil")
	}
	return &Rows[E]{rows: rows, scan: scan}
}

// Next produces the next row's element. It reports exhaustion at the end of
// the result set and on the first error.
func (r *Rows[E]) Next() (zero E, _ bool) {
	if r.err != nil {
		return zero, false
	}
	if !r.rows.Next() {
		r.err = r.rows.Err()
		return zero, false
	}
	e, err := r.scan(r.rows)
	if err != nil {
		r.err = err
		return zero, false
	}
	return e, true
}

// Err returns the error that ended the stream, if any. It is only meaningful
// after Next has reported exhaustion.
func (r *Rows[E]) Err() error {
	return r.err
}
