package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	inkerrors "github.com/inkmatch/inkdeck/pkg/errors"
)

// ValidateConfig checks structural rules and cross-item invariants. Item IDs
// must be unique; everything else is per-field tag validation.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return inkerrors.NewValidationError("", "configuration is empty", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidatorError(err)
	}

	seen := make(map[string]int, len(cfg.Items))
	for i, item := range cfg.Items {
		if prev, ok := seen[item.ID]; ok {
			return inkerrors.NewValidationError(
				fmt.Sprintf("items[%d].id", i),
				fmt.Sprintf("duplicate item id %q (first used by items[%d])", item.ID, prev),
				nil,
			)
		}
		seen[item.ID] = i
	}

	return nil
}

func convertValidatorError(err error) error {
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return inkerrors.NewValidationError(
			fe.Namespace(),
			fmt.Sprintf("failed %q validation", fe.Tag()),
			err,
		)
	}

	return inkerrors.NewValidationError("", err.Error(), err)
}
