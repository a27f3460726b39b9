// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerRegex matches exchange symbols: uppercase letters and digits,
// optionally with a dot-separated exchange suffix (e.g. "CEZ.PR") or an
// FX pseudo-ticker suffix (e.g. "USDCZK=X").
var tickerRegex = regexp.MustCompile(`^[A-Z0-9]+([.\-][A-Z0-9]+)*(=X)?$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticker", validateTicker)
	}
}

// validateTicker checks that a field is a well-formed exchange symbol.
func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(fl.Field().String())
}
