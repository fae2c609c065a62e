package agent

import (
	"context"
	"database/sql"
)

// QueryExecutor runs literal SQL text against the database and materializes
// the result set. It does not inspect or rewrite the statement.
type QueryExecutor struct {
	db *sql.DB
}

func NewQueryExecutor(db *sql.DB) *QueryExecutor {
	return &QueryExecutor{db: db}
}

// Execute runs the statement on a connection scoped to this call. The
// connection is returned to the pool on every exit path.
func (e *QueryExecutor) Execute(ctx context.Context, sqlText string) ([]Row, error) {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}

	var results []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, &ExecutionError{Err: err}
		}

		row := make(Row, 0, len(columns))
		for i, column := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row = append(row, Field{Name: column, Value: val})
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ExecutionError{Err: err}
	}

	return results, nil
}
