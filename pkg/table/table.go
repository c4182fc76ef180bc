package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ColumnType selects how a column's cells are coerced during load.
type ColumnType string

const (
	ColumnTypeString ColumnType = "string"
	ColumnTypeInt    ColumnType = "int"
)

// Column declares one required table column and its target type.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is the ordered set of columns a table must provide. Columns not
// named in the schema are ignored during load.
type Schema []Column

// Value is a single typed cell. The zero Value is null; cells whose source
// field is empty or whitespace-only load as null regardless of column type.
type Value struct {
	text  string
	num   int
	valid bool
}

// NewString creates a non-null string cell.
func NewString(text string) Value {
	return Value{text: text, valid: true}
}

// NewInt creates a non-null integer cell.
func NewInt(num int) Value {
	return Value{text: strconv.Itoa(num), num: num, valid: true}
}

// Null returns the null cell.
func Null() Value {
	return Value{}
}

// IsNull reports whether the cell carries no value.
func (v Value) IsNull() bool {
	return !v.valid
}

// Text returns the cell text. Cells of int columns carry the canonical
// decimal form; null cells return "".
func (v Value) Text() string {
	return v.text
}

// Int returns the coerced integer of a cell loaded from an int column.
// It is 0 for null cells and for cells of string columns.
func (v Value) Int() int {
	return v.num
}

// Row maps column names to loaded cells. Indexing a column that is not part
// of the schema yields the null Value.
type Row map[string]Value

// NotFoundError is returned when the table file does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table file does not exist: %s", e.Path)
}

// ParseError is returned when the table contents cannot be read against the
// schema. Line is the 1-based record number counting the header, 0 when the
// failure is not tied to a record. Column names the offending column when
// the failure is cell-level.
type ParseError struct {
	Path    string
	Line    int
	Column  string
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("table %s: line %d: column %q: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("table %s: line %d: %s", e.Path, e.Line, e.Message)
	case e.Column != "":
		return fmt.Sprintf("table %s: column %q: %s", e.Path, e.Column, e.Message)
	default:
		return fmt.Sprintf("table %s: %s", e.Path, e.Message)
	}
}

// Load reads the delimited table at path and coerces every record against
// the schema. The first record is the header; every schema column must
// appear in it. Blank records are skipped. A missing file yields a
// *NotFoundError, every other failure a *ParseError.
func Load(path string, schema Schema) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Message: "table is empty, header row required"}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Line: 1, Message: err.Error()}
	}

	fields := make(map[string]int, len(header))
	for i, name := range header {
		fields[strings.TrimSpace(name)] = i
	}
	indexes := make([]int, len(schema))
	for i, col := range schema {
		idx, ok := fields[col.Name]
		if !ok {
			return nil, &ParseError{Path: path, Column: col.Name, Message: "required column missing from header"}
		}
		indexes[i] = idx
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Message: err.Error()}
		}
		if isEmptyRecord(record) {
			continue
		}

		row := make(Row, len(schema))
		for i, col := range schema {
			var field string
			if indexes[i] < len(record) {
				field = record[indexes[i]]
			}
			cell, err := coerce(field, col.Type)
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Column: col.Name, Message: err.Error()}
			}
			row[col.Name] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func coerce(field string, typ ColumnType) (Value, error) {
	if strings.TrimSpace(field) == "" {
		return Value{}, nil
	}

	switch typ {
	case ColumnTypeInt:
		num, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Value{}, fmt.Errorf("cannot parse %q as integer", field)
		}
		return NewInt(num), nil
	default:
		return NewString(field), nil
	}
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
