/*
Package dataset holds the plumbing shared by the ridership and geocode loaders.

It covers:

  - reading a source file and decoding it to UTF-8 (a leading BOM is dropped,
    and content that is not valid UTF-8 is decoded as Windows-1252)
  - header token normalization (lowercase, spaces and hyphens to underscores,
    French accents folded)
  - null-able numeric values used for coerced fields
  - the load error taxonomy

# Errors

Loaders return errors wrapping one of two sentinels so that callers can tell
a missing file apart from a file with an unexpected layout:

	tbl, err := ridership.Load(path, schema)
	switch {
	case errors.Is(err, dataset.ErrFileAccess):
	    // file not found, unreadable or empty
	case errors.Is(err, dataset.ErrSchema):
	    // unexpected file format
	}

Field-level coercion problems are never errors: they become invalid
NullFloat/NullInt values.
*/
package dataset
