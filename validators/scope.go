package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// Scope is the per-request state shared by a guard chain. Existence guards
// store what they load here for the guards and handler that follow.
type Scope struct {
	Ctx *gin.Context
	// Data is the "data" object of the JSON body, nil when absent or not an object.
	Data map[string]interface{}
	Now  time.Time

	Reservation *models.Reservation
	Table       *models.Table
}

// Guard inspects the scope and returns the single error to report, or nil.
type Guard func(s *Scope) error

// Run applies guards in order and stops at the first failure.
func Run(s *Scope, guards []Guard) error {
	for _, guard := range guards {
		if err := guard(s); err != nil {
			return err
		}
	}
	return nil
}

// NewScope decodes the request body, if any. Numbers are kept as json.Number
// so that guards can tell 2 from "2".
func NewScope(c *gin.Context, now time.Time) (*Scope, error) {
	s := &Scope{Ctx: c, Now: now}
	if c.Request.Body == nil {
		return s, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &utils.AppError{Status: http.StatusRequestEntityTooLarge, Message: "Request body too large"}
		}
		return nil, utils.BadRequest("Request body could not be read")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return s, nil
	}

	var body map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, utils.BadRequest("Request body must be valid JSON")
	}
	if data, ok := body["data"].(map[string]interface{}); ok {
		s.Data = data
	}
	return s, nil
}

// Has reports whether field is present with a non-empty value.
func (s *Scope) Has(field string) bool {
	v, ok := s.Data[field]
	if !ok || v == nil {
		return false
	}
	if str, isStr := v.(string); isStr {
		return strings.TrimSpace(str) != ""
	}
	return true
}

// String returns the trimmed string value of field and whether it is a string.
func (s *Scope) String(field string) (string, bool) {
	str, ok := s.Data[field].(string)
	return strings.TrimSpace(str), ok
}

// Int returns the value of field when it is a JSON number with no fractional
// part. Strings are never coerced.
func (s *Scope) Int(field string) (int, bool) {
	n, ok := s.Data[field].(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ID returns a positive id from a JSON number or a numeric string.
func (s *Scope) ID(field string) (uint, bool) {
	switch v := s.Data[field].(type) {
	case json.Number:
		if n, ok := s.Int(field); ok && n > 0 {
			return uint(n), true
		}
	case string:
		return parseID(strings.TrimSpace(v))
	}
	return 0, false
}

func parseID(value string) (uint, bool) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
