package req

import (
	"encoding/json"
	"errors"
	"io"
)

var ErrEmptyBody = errors.New("empty request body")

// Decode Разбирает JSON тело запроса в T, лишние поля запрещены
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	dec := json.NewDecoder(io.LimitReader(body, 1<<20))
	dec.DisallowUnknownFields()

	err := dec.Decode(&payload)
	if errors.Is(err, io.EOF) {
		return payload, ErrEmptyBody
	}
	if err != nil {
		return payload, err
	}
	return payload, nil
}
