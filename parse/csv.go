package parse

import (
	"encoding/csv"
	"os"

	"github.com/katalvlaran/structdiff/treenode"
)

// BuildTreeCSV reads path and decodes it as CSV: a ListNode of rows, each
// a ListNode of unquoted StringNode cells, letting the existing sequence
// aligner diff rows and StringEdit diff cells without a dedicated CSV
// edit type.
func BuildTreeCSV(path string) (treenode.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newParseError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may have a ragged number of columns
	records, err := r.ReadAll()
	if err != nil {
		return nil, newParseError(path, err)
	}

	rows := make([]treenode.Node, len(records))
	for i, rec := range records {
		cells := make([]treenode.Node, len(rec))
		for j, cell := range rec {
			cells[j] = treenode.NewStringNode(cell, false)
		}
		row, err := treenode.NewListNode(cells)
		if err != nil {
			return nil, newParseError(path, err)
		}
		rows[i] = row
	}

	tree, err := treenode.NewListNode(rows)
	if err != nil {
		return nil, newParseError(path, err)
	}

	return tree, nil
}
