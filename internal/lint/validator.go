package lint

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	registryNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$.-]*$`)

	namedColors = map[string]struct{}{
		"transparent": {}, "black": {}, "white": {}, "gray": {}, "grey": {}, "silver": {},
		"red": {}, "maroon": {}, "orange": {}, "yellow": {}, "olive": {}, "lime": {},
		"green": {}, "aqua": {}, "cyan": {}, "teal": {}, "blue": {}, "navy": {},
		"fuchsia": {}, "magenta": {}, "purple": {}, "pink": {}, "brown": {},
		"dodgerblue": {}, "rebeccapurple": {},
	}
)

// componentRules mirrors a manifest component for struct-tag validation.
type componentRules struct {
	Name            string `json:"name" validate:"registry_name"`
	DisplayName     string `json:"displayName" validate:"required"`
	BackgroundColor string `json:"backgroundColor" validate:"rn_color"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("registry_name", func(fl validator.FieldLevel) bool {
			return registryNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("rn_color", func(fl validator.FieldLevel) bool {
			color := strings.TrimSpace(fl.Field().String())
			if color == "" {
				return false
			}
			if _, ok := namedColors[strings.ToLower(color)]; ok {
				return true
			}
			return v.Var(color, "iscolor") == nil
		})

		validateInst = v
	})

	return validateInst
}
