// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// readTable reads a CSV table with a header row, coercing numeric
// columns.
func readTable(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// distinctStrings returns the distinct values of a column in order
// of first appearance.
func distinctStrings(tab *table.Table, col string) []string {
	rv := reflect.ValueOf(tab.MustColumn(col))
	seen := make(map[string]bool)
	var out []string
	for i := 0; i < rv.Len(); i++ {
		v := fmt.Sprint(rv.Index(i).Interface())
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
