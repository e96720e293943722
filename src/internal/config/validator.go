package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/engutil/src/internal/lifecycle"
	"github.com/maksimkurb/engutil/src/internal/utils"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "color_name":
		return "must be a color name (e.g. red) or a hex color (#rgb, #rrggbb)"
	case "app_mode":
		return fmt.Sprintf("must be one of: %s, %s, %s", lifecycle.ModeProduction, lifecycle.ModeSignal, lifecycle.ModeInteractive)
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // Name of the item the error belongs to, if any
	FieldPath string // Dot-notation field path (e.g., "log.verbosity", "app.mode")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("color_name", validateColorName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("app_mode", validateAppMode); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: markup color name or hex color
func validateColorName(fl validator.FieldLevel) bool {
	return utils.IsMarkupColor(fl.Field().String())
}

// Custom validator: termination mode
func validateAppMode(fl validator.FieldLevel) bool {
	return lifecycle.IsValidMode(fl.Field().String())
}
