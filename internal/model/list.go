package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNullItem = errors.New("null item in array")

// List is a JSON array whose items must not be null. A null array decodes to nil.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*l = nil
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(List[T], len(items))
	for i, item := range items {
		if isNull(item) {
			return fmt.Errorf("item %d: %w", i, errNullItem)
		}
		if err := json.Unmarshal(item, &out[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	*l = out
	return nil
}

func isNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}
