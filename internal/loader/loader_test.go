package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalimdor-ml/kalimdor/internal/tensor"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"x.json", FormatJSON},
		{"dir/X.JSON", FormatJSON},
		{"x.yaml", FormatYAML},
		{"x.yml", FormatYAML},
		{"iris.csv", FormatCSV},
		{"model.gguf", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
	assert.Equal(t, "YAML", FormatYAML.String())
	assert.Equal(t, "Unknown", FormatUnknown.String())
}

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON([]byte(`[[1, 2, 3], [4, 5, 6]]`))
	require.NoError(t, err)
	shape, err := tensor.InferShape(v)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, shape)

	v, err = ParseJSON([]byte(`["a", true, null, 1.5]`))
	require.NoError(t, err)
	assert.Equal(t, `["a",true,null,1.5]`, tensor.Render(v))

	// Ragged input is loaded as-is; the validators reject it.
	v, err = ParseJSON([]byte(`[[1, 2], [3]]`))
	require.NoError(t, err)
	_, err = tensor.InferShape(v)
	assert.ErrorIs(t, err, tensor.ErrRaggedShape)

	_, err = ParseJSON([]byte(`[1, 2`))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`{"a": 1}`))
	assert.ErrorIs(t, err, tensor.ErrTypeContract)
}

func TestParseYAML(t *testing.T) {
	doc := `
- [1, 2]
- [3, 4]
- [5, 6]
`
	v, err := ParseYAML([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, tensor.ValidateMatrix2D(v))
	assert.Equal(t, "[[1,2],[3,4],[5,6]]", tensor.Render(v))

	v, err = ParseYAML([]byte("[yes, no, 'x', ~]"))
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.True(t, v.At(3).IsNull())

	_, err = ParseYAML([]byte("a: 1\nb: 2\n"))
	assert.ErrorIs(t, err, tensor.ErrTypeContract)

	_, err = ParseYAML([]byte("[1, 2"))
	assert.Error(t, err)
}

func TestReadCSVTable(t *testing.T) {
	input := "a,b,c\n1,2.5,x\n3,,true\n"
	table, err := ReadCSVTable(strings.NewReader(input), CSVOptions{Header: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Columns)
	assert.Equal(t, `[[1,2.5,"x"],[3,null,true]]`, tensor.Render(table.Values))

	table, err = ReadCSVTable(strings.NewReader("1;2\n3;4\n"), CSVOptions{Comma: ';'})
	require.NoError(t, err)
	assert.Nil(t, table.Columns)
	assert.Equal(t, "[[1,2],[3,4]]", tensor.Render(table.Values))
}

func TestReadCSVTable_Errors(t *testing.T) {
	_, err := ReadCSVTable(strings.NewReader(""), CSVOptions{Header: true})
	assert.Error(t, err)

	_, err = ReadCSVTable(strings.NewReader("1,2\n3\n"), CSVOptions{})
	assert.Error(t, err, "field count mismatch must be rejected by the csv reader")
}

func TestReadCSV(t *testing.T) {
	input := "x1,x2,label\n1,2,0\n3,4,1\n5,6,0\n"
	ds, err := ReadCSV(strings.NewReader(input), CSVOptions{Header: true, Target: "label"})
	require.NoError(t, err)

	assert.Equal(t, []string{"x1", "x2"}, ds.Features)
	assert.Equal(t, "label", ds.Target)
	assert.Equal(t, "[[1,2],[3,4],[5,6]]", tensor.Render(ds.X))
	assert.Equal(t, "[0,1,0]", tensor.Render(ds.Y))
	assert.NoError(t, tensor.ValidateFitInputs(ds.X, ds.Y))

	// Target in the middle.
	ds, err = ReadCSV(strings.NewReader("a,t,b\n1,9,2\n"), CSVOptions{Header: true, Target: "t"})
	require.NoError(t, err)
	assert.Equal(t, "[[1,2]]", tensor.Render(ds.X))
	assert.Equal(t, "[9]", tensor.Render(ds.Y))

	// No target keeps every column.
	ds, err = ReadCSV(strings.NewReader("a,b\n1,2\n"), CSVOptions{Header: true})
	require.NoError(t, err)
	assert.Equal(t, "[[1,2]]", tensor.Render(ds.X))
	assert.True(t, ds.Y.IsNull())
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,2\n"), CSVOptions{Target: "y"})
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n"), CSVOptions{Header: true, Target: "y"})
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		cell string
		want tensor.Value
	}{
		{"", tensor.Null()},
		{"  ", tensor.Null()},
		{"42", tensor.Num(42)},
		{"-1.5e2", tensor.Num(-150)},
		{"TRUE", tensor.Boolean(true)},
		{"false", tensor.Boolean(false)},
		{"t", tensor.Str("t")},
		{"setosa", tensor.Str("setosa")},
	}
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.True(t, tensor.Equal(tt.want, parseCell(tt.cell)), "got %s", parseCell(tt.cell))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	v, err := LoadFile(write("x.json", "[[1,2],[3,4]]"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, "[[1,2],[3,4]]", tensor.Render(v))

	v, err = LoadFile(write("x.yml", "[1, 2, 3]"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", tensor.Render(v))

	v, err = LoadFile(write("x.csv", "a,b\n1,2\n"), CSVOptions{Header: true})
	require.NoError(t, err)
	assert.Equal(t, "[[1,2]]", tensor.Render(v))

	_, err = LoadFile(write("x.txt", "[]"), CSVOptions{})
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.json"), CSVOptions{})
	assert.Error(t, err)
}

func TestQueryTable(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	// One connection keeps the in-memory database alive across statements.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE samples (x1 REAL, x2 INTEGER, name TEXT, label INTEGER)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO samples VALUES (1.5, 2, 'a', 0), (3.5, 4, NULL, 1)`)
	require.NoError(t, err)

	table, err := QueryTable(ctx, db, `SELECT x1, x2, name FROM samples ORDER BY rowid`)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "name"}, table.Columns)
	assert.Equal(t, `[[1.5,2,"a"],[3.5,4,null]]`, tensor.Render(table.Values))

	ds, err := QueryDataset(ctx, db, "label", `SELECT x1, x2, label FROM samples WHERE x2 >= ? ORDER BY rowid`, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2"}, ds.Features)
	assert.Equal(t, "[[1.5,2],[3.5,4]]", tensor.Render(ds.X))
	assert.Equal(t, "[0,1]", tensor.Render(ds.Y))
	assert.NoError(t, tensor.ValidateFitInputs(ds.X, ds.Y))

	_, err = QueryTable(ctx, db, `SELECT * FROM missing`)
	assert.Error(t, err)

	_, err = QueryDataset(ctx, db, "nope", `SELECT x1 FROM samples`)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestQueryTable_Empty(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE t (a REAL)`)
	require.NoError(t, err)

	table, err := QueryTable(ctx, db, `SELECT a FROM t`)
	require.NoError(t, err)

	shape, err := tensor.InferShape(table.Values)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0}, shape)
}
