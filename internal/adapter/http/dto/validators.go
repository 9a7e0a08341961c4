package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"wallet-ledger/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("tier_code", validateTierCode)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateTierCode accepts BASIC, STANDARD, PREMIUM and VIP.
func validateTierCode(fl validator.FieldLevel) bool {
	return domain.Tier(fl.Field().String()).IsKnown()
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field of a struct pointer, descending into nested structs and slices of
// structs. Maps are left alone.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		sanitizeValue(f)
	}
}

func sanitizeValue(f reflect.Value) {
	switch f.Kind() {
	case reflect.String:
		f.SetString(sanitize(f.String()))
	case reflect.Ptr:
		if f.IsNil() {
			return
		}
		sanitizeValue(f.Elem())
	case reflect.Struct:
		// decimal.Decimal and time.Time have no exported strings and are skipped.
		sanitizeFields(f)
	case reflect.Slice:
		for i := 0; i < f.Len(); i++ {
			sanitizeValue(f.Index(i))
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
