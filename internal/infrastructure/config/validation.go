package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report keys the way they are spelled in config.toml
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateConfig checks every field and reports all violations at once.
func validateConfig(config *Config) error {
	err := structValidator().Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

func describe(fe validator.FieldError) string {
	// Namespace is "Config.logging.level"; drop the root type name.
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	switch fe.Tag() {
	case "required":
		return key + " must not be empty"
	case "url":
		return fmt.Sprintf("%s must be an absolute URL (got %q)", key, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %v)", key, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s (got %v)", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got %v)", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}
