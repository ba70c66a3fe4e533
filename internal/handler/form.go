package handler

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "selli/internal/errors"
	"selli/internal/validation"
)

// collectFields reads the request payload into a field bag. JSON bodies
// decode as-is; form and multipart bodies yield string values for every
// present field, which the coercion step then parses. Both submission
// styles end up validating identically.
func collectFields(c echo.Context) (validation.Fields, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		fields := validation.Fields{}
		if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
			return nil, apperrors.NewBadRequest("Invalid JSON syntax")
		}
		return fields, nil
	}

	params, err := c.FormParams()
	if err != nil {
		return nil, apperrors.NewBadRequest("Invalid form data")
	}
	fields := make(validation.Fields, len(params))
	for key, values := range params {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}

// fieldString returns the field as a string when present and non-blank.
func fieldString(fields validation.Fields, key string) (string, bool) {
	s, ok := fields[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
