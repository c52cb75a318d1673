package formatter

import (
	"encoding/csv"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
)

// WriteStationsCSV writes records as CSV in the table's column order, with
// the coerced values of Table.Row.
func WriteStationsCSV(w io.Writer, tbl *ridership.Table, records []ridership.Record) error {
	if len(records) == 0 {
		// dataframe refuses a frame without rows
		cw := csv.NewWriter(w)
		if err := cw.Write(tbl.Columns); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, tbl.Columns)
	for _, r := range records {
		rows = append(rows, tbl.Row(r))
	}
	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}
