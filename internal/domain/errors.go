package domain

import "github.com/travel-agency/internal/pkg/errors"

func invalidArgument(format string, args ...interface{}) error {
	return errors.ErrInvalidArgument.WithMessage(format, args...)
}
