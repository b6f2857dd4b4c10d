package endpoint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/StevenGabule/portfolio/pkg/portal"
)

const MaxRequestSize = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

// ParseRequestBody decodes a JSON body of at most MaxRequestSize bytes.
// Unknown fields are rejected.
func ParseRequestBody[T any](r *http.Request) (T, error) {
	var request T

	if r.Body == nil {
		return request, ErrEmptyBody
	}

	defer portal.CloseWithLog(r.Body)

	data, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestSize+1))
	if err != nil {
		return request, fmt.Errorf("failed to read the given request body: %w", err)
	}

	if len(data) > MaxRequestSize {
		return request, fmt.Errorf("request body exceeds %d bytes", MaxRequestSize)
	}

	if len(data) == 0 {
		return request, ErrEmptyBody
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(&request); err != nil {
		return request, fmt.Errorf("failed to unmarshal the given request body: %w", err)
	}

	return request, nil
}
