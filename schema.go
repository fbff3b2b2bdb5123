package pdo

import "context"

// TableColumns restricts the keys of input to columns that actually exist on
// table, preserving the order the database's metadata statement reports
// them. Map key semantics deduplicate the input implicitly.
//
// The metadata statement runs through Run like any other read, so a
// configured error sink sees metadata failures too. When the query fails or
// yields nothing usable the result is an empty set; insert/update then build
// a zero-column statement which the driver rejects, surfacing the problem as
// an ordinary execution error.
func (c *Conn) TableColumns(ctx context.Context, table string, input map[string]any) []string {
	res, err := c.Run(ctx, c.dialect.ColumnQuery(table), nil)
	if err != nil {
		return nil
	}

	var columns []string
	for _, row := range res.Rows {
		name, ok := columnName(row[c.dialect.NameField])
		if !ok {
			continue
		}
		if _, wanted := input[name]; wanted {
			columns = append(columns, name)
		}
	}
	return columns
}

// columnName coerces a metadata value into a column name. Drivers disagree
// on whether text columns scan as string or []byte.
func columnName(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, s != ""
	case []byte:
		return string(s), len(s) > 0
	default:
		return "", false
	}
}
