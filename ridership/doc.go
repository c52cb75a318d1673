/*
Package ridership loads the annual traffic table.

The source file is semicolon-delimited, but its first line is a single
(usually quoted) field whose text is the real header. Parsing is therefore
done in two phases: every line is first read as one raw field, then the
header is split out of line 0 and every following line is re-split on ';'
into that many columns.

	tbl, err := ridership.Load("data_ratp.csv", ridership.DefaultSchema())
	if err != nil {
	    log.Fatal(err)
	}
	for _, rec := range tbl.Records {
	    fmt.Println(rec.Station, rec.Traffic, rec.CorrespondenceCount)
	}

Header tokens are normalized with dataset.NormalizeHeader. The columns that
carry meaning (network, station, traffic, rank, arrondissement and the
correspondence slots) are named explicitly in a Schema; every named column
must be present.

Coercions never drop a row: unparsable traffic or rank values are missing,
an empty arrondissement is missing rather than zero, and an empty
correspondence slot holds the explicit "no correspondence" value. The
correspondence count of each record is always recomputed from its slots.

A loaded Table is read-only. Filtering builds new record slices.
*/
package ridership
