package utils

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ConvertJson turns a loosely decoded value (e.g. a message payload read
// into `any`) into T by a JSON round trip. A nil value yields the zero T.
func ConvertJson[T any](v any) (T, error) {
	var result T
	if v == nil {
		return result, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return result, errors.WithMessage(err, "marshal json")
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, errors.WithMessage(err, "unmarshal json")
	}
	return result, nil
}

// DecodeJson reads one JSON value from r into T. An empty body yields the
// zero T.
func DecodeJson[T any](r io.Reader) (T, error) {
	var result T
	err := json.NewDecoder(r).Decode(&result)
	switch {
	case errors.Is(err, io.EOF):
		return result, nil
	case err != nil:
		return result, errors.WithMessage(err, "decode json")
	}
	return result, nil
}

func WriteJson(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return errors.WithMessage(err, "encode json")
	}
	return nil
}
