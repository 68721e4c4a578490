package paramtable

import (
	"database/sql"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// LoadSQLite reads every row of a parameter table from a SQLite database and
// returns it as a Table. Cell values keep the driver's native types; BLOB
// columns come back as strings.
func LoadSQLite(path, table string) (*Table, error) {
	if strings.TrimSpace(table) == "" {
		return nil, pkgerrors.New("sqlite parameter table name cannot be empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open sqlite parameter database failed")
	}
	defer db.Close()
	return QueryTable(db, table)
}

// QueryTable reads every row of table from an open database handle.
func QueryTable(db *sql.DB, table string) (*Table, error) {
	rows, err := db.Query("SELECT * FROM " + quoteIdent(table))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "query sqlite parameter table %s failed", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read sqlite parameter columns failed")
	}

	data := make([][]any, 0, 4)
	for rows.Next() {
		holders := make([]any, len(columns))
		for i := range holders {
			holders[i] = new(any)
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, pkgerrors.Wrap(err, "scan sqlite parameter row failed")
		}
		cells := make([]any, len(columns))
		for i, holder := range holders {
			cells[i] = normalizeSQLValue(*holder.(*any))
		}
		data = append(data, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "iterate sqlite parameter rows failed")
	}
	log.Debug().Str("table", table).Int("rows", len(data)).Msg("loaded sqlite parameter table")
	return New(columns, data), nil
}

func normalizeSQLValue(value any) any {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
