package utils

import "encoding/json"

// PresentFields reports which top-level keys a PATCH body actually sent.
// JSON cannot distinguish an absent field from a zero value after
// unmarshalling into a struct, and partial updates must only touch the
// fields the caller named (including explicit nulls).
func PresentFields(raw []byte) (map[string]bool, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(body))
	for key := range body {
		present[key] = true
	}
	return present, nil
}
