/*
Package req provides helper functions for HTTP request parsing and data binding.

It decodes JSON request bodies with size and format checks and validates the decoded
structs against their `validate` tags.
*/
package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"rbxpresence/internal/pkg/errs"
)

// MaxJSONBodySize caps the size of a JSON request body (64 KB).
const MaxJSONBodySize int64 = 64 << 10

// ErrInvalidValue marks a field holding well-formed JSON of an unacceptable value.
var ErrInvalidValue = errors.New("invalid field value")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ID is an integer identifier that also accepts a quoted decimal string ("123").
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidValue, raw)
		}
		raw = unquoted
	}

	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, raw)
	}

	*id = ID(v)
	return nil
}

// BindJSON decodes the JSON body of r into dst and validates it.
// Unknown fields are ignored. A bad field value or a failed `validate` rule yields
// ErrInvalidParams; a body that is not JSON yields ErrInvalidJSONFormat.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, ErrInvalidValue) {
			return errs.NewError(errs.ErrInvalidParams)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	if err := validate.Struct(dst); err != nil {
		return errs.NewError(errs.ErrInvalidParams)
	}

	return nil
}
