package paramtable

import (
	"encoding/csv"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LoadCSV reads a CSV file whose first record is the header and returns its
// rows as a Table. Cells come back as strings; typed interpretation is the
// coercer's job.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open csv parameter file failed")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read csv parameter file failed")
	}
	if len(records) == 0 {
		return nil, pkgerrors.Errorf("csv parameter file %s has no header row", path)
	}

	rows := make([][]any, 0, len(records)-1)
	for _, record := range records[1:] {
		cells := make([]any, len(record))
		for i, field := range record {
			cells[i] = field
		}
		rows = append(rows, cells)
	}
	log.Debug().Str("csv", path).Int("rows", len(rows)).Int("columns", len(records[0])).Msg("loaded csv parameter table")
	return New(records[0], rows), nil
}
