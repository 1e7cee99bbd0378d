package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var customValidators = map[string]validator.Func{
	"project_name":  isProjectName,
	"resource_name": isResourceName,
	"namespace":     isNamespace,
	"template_name": isTemplateName,
}

var customTranslations = map[string]string{
	"project_name":  "{0} must start with a letter and contain only letters, digits, hyphens and underscores (max 64 characters): {1}",
	"resource_name": "{0} must start with a letter and contain only lowercase letters, digits and hyphens (max 64 characters): {1}",
	"namespace":     "{0} must be a lowercase kebab-case identifier (max 63 characters): {1}",
	"template_name": "{0} must be a known template name: {1}",
	"dir":           "{0} must be a valid existing directory: {1}",
	"file":          "{0} must be a valid existing file: {1}",
	"oneof":         "{0} must be one of the allowed values: {1}",
}

type ValidationError struct {
	Field  string
	Detail string
}

type ValidationErrors []ValidationError

func NewValidationError(key, detail string) error {
	return &ValidationError{
		Field:  key,
		Detail: detail,
	}
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// Add error interface implementation for ValidationErrors
func (ve ValidationErrors) Error() string {
	msg := "validation error\n"
	for _, err := range ve {
		msg += err.Detail + "\n"
	}
	return msg
}

// Validator wraps a validator instance and a translator.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator creates a new Validator with English translations registered.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	// Use the "cli" tag to override the field name if present.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		cliTag := fld.Tag.Get("cli")
		if cliTag != "" {
			return cliTag
		}
		return fld.Name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("translator not found")
	}

	if err := registerDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	for validatorName, validatorFunc := range customValidators {
		if err := validate.RegisterValidation(validatorName, validatorFunc); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// RegisterCustomTranslation registers a custom translation for a given tag.
func (v *Validator) RegisterCustomTranslation(tag, msg string) error {
	return v.validate.RegisterTranslation(tag, v.trans,
		func(ut ut.Translator) error {
			// The first argument {0} in the message template represents the field name.
			return ut.Add(tag, msg, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field(), fmt.Sprintf("%v", fe.Value()))
			return t
		},
	)
}

// Struct validates a struct and returns translated errors if any.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		// Collect translated errors
		var msg string
		for _, e := range verrs {
			msg += e.Translate(v.trans) + "\n"
		}
		// Wrap the original error with the translated message
		return fmt.Errorf("validation error:\n%s: %w", msg, verrs)
	}
	return err
}

// Validate returns the underlying *validator.Validate instance if you need it directly.
func (v *Validator) Validate() *validator.Validate {
	return v.validate
}

func registerDefaultTranslations(v *validator.Validate, trans ut.Translator) error {
	// Register default translations for all built-in tags
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return fmt.Errorf("failed to register default translations: %w", err)
	}

	for tag, message := range customTranslations {
		if err := v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(tag, fe.Field(), fmt.Sprintf("%v", fe.Value()))
				return t
			},
		); err != nil {
			return fmt.Errorf("failed to register custom translation for %s: %w", tag, err)
		}
	}

	return nil
}
