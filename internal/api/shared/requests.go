package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes bounds the size of decoded request bodies.
const MaxRequestBodyBytes = 1 << 20

var validate = validator.New()

// selfValidator is implemented by request types with rules that struct tags
// cannot express.
type selfValidator interface {
	Validate() error
}

// DecodeJSON decodes at most MaxRequestBodyBytes of the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes)).Decode(v)
}

// ValidateRequest runs v's own Validate method when it has one and its
// validate struct tags otherwise.
func ValidateRequest(v interface{}) error {
	if sv, ok := v.(selfValidator); ok {
		return sv.Validate()
	}
	return validate.Struct(v)
}
