package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"triviaapi/internal/models"
)

var (
	errNotObject     = errors.New("request body must be a JSON object")
	errTrailingData  = errors.New("unexpected data after JSON object")
	errEmptyPayload  = errors.New("question, answer, category and difficulty are all empty")
	errNotInteger    = errors.New("must be an integer")
	errOutOfRange    = errors.New("integer out of range")
	errBadSearchTerm = errors.New("searchTerm must be a string, number or boolean")
)

// presenceOrder is the order in which question fields are checked for
// presence. The first non-empty field ends the check.
var presenceOrder = []string{"answer", "question", "category", "difficulty"}

// checkPresence rejects payloads in which every question field is empty.
// A missing key reached before any non-empty field fails; once a non-empty
// field is seen the remaining keys are not inspected. Type checks happen later in parseQuestion.
func checkPresence(payload map[string]any) error {
	for _, key := range presenceOrder {
		v, ok := payload[key]
		if !ok {
			return fmt.Errorf("missing field %q", key)
		}
		if truthy(v) {
			return nil
		}
	}
	return errEmptyPayload
}

// parseQuestion converts a decoded request body into a Question.
func parseQuestion(payload map[string]any) (*models.Question, error) {
	if err := checkPresence(payload); err != nil {
		return nil, err
	}

	question, err := stringField(payload, "question")
	if err != nil {
		return nil, err
	}
	answer, err := stringField(payload, "answer")
	if err != nil {
		return nil, err
	}
	category, err := intField(payload, "category")
	if err != nil {
		return nil, err
	}
	difficulty, err := intField(payload, "difficulty")
	if err != nil {
		return nil, err
	}

	return &models.Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}, nil
}

// truthy reports whether a decoded JSON value is non-empty: not null, not
// false, not zero, not an empty string, array or object.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func stringField(payload map[string]any, key string) (string, error) {
	s, ok := payload[key].(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", key)
	}
	return s, nil
}

// intField reads an integer field. See intValue for the accepted forms.
func intField(payload map[string]any, key string) (int, error) {
	n, err := intValue(payload[key])
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return n, nil
}

// intValue converts a decoded JSON value to an int, accepting numbers with
// no fractional part and numeric strings. The value must fit a PostgreSQL
// INTEGER column.
func intValue(v any) (int, error) {
	var n int64
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n = i
		} else if f, err := v.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			n = int64(f)
		} else {
			return 0, errNotInteger
		}
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, errNotInteger
		}
		n = i
	default:
		return 0, errNotInteger
	}

	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errOutOfRange
	}
	return int(n), nil
}
