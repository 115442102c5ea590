package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	itemIDPattern  = regexp.MustCompile(`^[a-z0-9_-]+$`)
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{4,}$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			return itemIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("video_id", func(fl validator.FieldLevel) bool {
			return videoIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
