package main

import (
	"fmt"
	"strings"
)

// defaultColumns is the column set ingested when COLUMNS is not configured
const defaultColumns = "asset_id,timestamp,value"

// Columns is the ordered set of CSV columns carried into each table item.
// The first column is the item's partition key attribute and the second its
// sort key attribute, so together they identify a row.
type Columns struct {
	names []string
}

func NewColumns(columnsConfig string) (Columns, error) {
	if columnsConfig == "" {
		columnsConfig = defaultColumns
	}
	var names []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(columnsConfig, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return Columns{}, fmt.Errorf("empty column name in '%s'", columnsConfig)
		}
		if seen[name] {
			return Columns{}, fmt.Errorf("duplicate column name '%s'", name)
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) < 2 {
		return Columns{}, fmt.Errorf("at least 2 columns are required to identify an item, got %d", len(names))
	}

	return Columns{names: names}, nil
}

func (c Columns) PartitionKey() string {
	return c.names[0]
}

func (c Columns) SortKey() string {
	return c.names[1]
}

// ItemFromRow extracts the configured columns from a parsed row. Every column
// must be present with a non-empty value; other row data is dropped.
func (c Columns) ItemFromRow(row map[string]string) (map[string]string, error) {
	item := make(map[string]string, len(c.names))
	for _, name := range c.names {
		value, ok := row[name]
		if !ok {
			return nil, fmt.Errorf("missing column '%s'", name)
		}
		if value == "" {
			return nil, fmt.Errorf("empty value for column '%s'", name)
		}
		item[name] = value
	}

	return item, nil
}
