// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Cell converts a value, usually an AWS SDK field, to its table text. Nil
// pointers, zero times and other zero values become the empty value, which
// defaults to "". Stringers always render through String.
func Cell(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil {
		return emptyValue[0]
	}

	// SDK structs hand out pointers for almost everything.
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return emptyValue[0]
		}
		rv = rv.Elem()
	}
	value = rv.Interface()

	// A zero timestamp is unset, but any other zero Stringer still names
	// something.
	switch value := value.(type) {
	case time.Time:
		if value.IsZero() {
			return emptyValue[0]
		}
		return value.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return value.String()
	}

	if rv.IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	}

	// Enum types in the SDK are named strings.
	if rv.Kind() == reflect.String {
		return rv.String()
	}

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(jsonBytes)
}
