package server

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// looseBool accepts the boolean-ish encodings clients actually send for flag
// fields: true/false, 0/1, "true"/"yes"/"0", null. Anything non-empty and not
// an explicit falsy value counts as true.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = looseBool(v)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*b = n != 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = parseLooseString(s)
		return nil
	}

	// Anything else (objects, arrays) is present, so truthy.
	*b = true
	return nil
}

func parseLooseString(s string) looseBool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "no", "off":
		return false
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return looseBool(n != 0)
	}
	return true
}
