package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// airDateFormats are the accepted air-date encodings. Both forms show up
// in client payloads, so the rule and the parser accept either.
var airDateFormats = []string{"2006-01-02", "02.01.2006"}

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("airdate", validAirDate)

	// Register the same rule with gin's binding engine so request
	// structs can use the `airdate` tag directly.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = engine.RegisterValidation("airdate", validAirDate)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

func validAirDate(fl validator.FieldLevel) bool {
	_, err := ParseAirDate(fl.Field().String())
	return err == nil
}

// ParseAirDate parses an air date in any of the accepted formats.
func ParseAirDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range airDateFormats {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
