package stylesheet

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/pipe"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the style sheet tags
// registered. Field names in errors are the YAML keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := tui.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("attribute", func(fl validator.FieldLevel) bool {
			_, ok := tui.ParseAttribute(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("glyph", func(fl validator.FieldLevel) bool {
			_, err := tui.ParseGlyph(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("focus_policy", func(fl validator.FieldLevel) bool {
			_, ok := tui.ParseFocusPolicy(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("shape", func(fl validator.FieldLevel) bool {
			_, ok := shapes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("glyph_set", func(fl validator.FieldLevel) bool {
			_, ok := glyphSets[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("wall", func(fl validator.FieldLevel) bool {
			_, ok := walls[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := tui.Themes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, ok := pipe.ParseRole(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// validateRule checks r and converts the first failure into a RuleError.
func validateRule(index int, r *Rule) error {
	err := validatorInstance().Struct(r)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.TrimPrefix(ve.Namespace(), "Rule.")
		return &RuleError{Rule: index, Field: field, Err: fmt.Errorf("%w: %v failed validation for tag '%s'", ErrInvalid, ve.Value(), ve.Tag())}
	}
	return &RuleError{Rule: index, Err: err}
}
