// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortRows orders rows by the comma separated column names in spec. A leading
// "-" sorts that column descending and a leading "!" makes it case sensitive.
// Unknown columns are ignored. The sort is stable.
func SortRows(headers []string, rows [][]string, spec string) {
	type key struct {
		col           int
		ascending     bool
		caseSensitive bool
	}

	var keys []key
	for _, field := range strings.Split(spec, ",") {
		k := key{ascending: true}
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			k.ascending = false
		}
		if strings.HasPrefix(field, "!") {
			field = strings.TrimPrefix(field, "!")
			k.caseSensitive = true
		}

		k.col = -1
		for i, h := range headers {
			if strings.EqualFold(h, field) {
				k.col = i
				break
			}
		}
		if k.col >= 0 {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(rows, func(one, two int) bool {
		for _, k := range keys {
			oneStr := cellAt(rows[one], k.col)
			twoStr := cellAt(rows[two], k.col)
			if !k.caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if k.ascending {
					return oneStr < twoStr
				}
				return oneStr > twoStr
			}
		}
		return false
	})
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
