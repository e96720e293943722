package config

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(&c.Log); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "log", "")...)
	}

	if err := validate.Struct(&c.App); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "app", "")...)
	}

	if c.Log.Disabled && c.Log.File != "" {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "log.file",
			Message:   "cannot be set while logging is disabled",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if stderrors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	} else {
		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: fieldPrefix,
			Message:   fmt.Sprintf("validation failed: %v", err),
		})
	}

	return validationErrors
}
