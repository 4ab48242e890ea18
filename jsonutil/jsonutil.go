// Package jsonutil provides small generic JSON helpers.
package jsonutil

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// Encode returns the JSON encoding of v.
func Encode(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// EncodeIndent returns the JSON encoding of v with the given prefix and
// indent applied to every line.
func EncodeIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// Decode parses data into a fresh value of type T.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := gojson.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeFrom parses one JSON value from r into a fresh value of type T.
func DecodeFrom[T any](r io.Reader) (T, error) {
	var v T
	if err := gojson.NewDecoder(r).Decode(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
