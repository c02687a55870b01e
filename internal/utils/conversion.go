package utils

import (
	ierr "github.com/flexpay/flexpay-go/internal/errors"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToStruct converts a decoded JSON value (maps, slices, scalars) to T.
// A nil value yields the zero T.
// Custom types with UnmarshalJSON (time.Time, decimal.Decimal) convert as usual.
func ToStruct[T any](value any) (T, error) {
	var result T

	if value == nil {
		return result, nil
	}

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return result, ierr.WithError(err).
			WithHint("Failed to marshal value to JSON").
			Mark(ierr.ErrResponse)
	}

	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return result, ierr.WithError(err).
			WithHintf("Failed to unmarshal JSON to %T", result).
			Mark(ierr.ErrResponse)
	}

	return result, nil
}
