package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/pkg/validator"
)

func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("invalid %s: %q", name, c.Params(name))
	}
	return id, nil
}

func indexParam(c *fiber.Ctx, name string) (int, error) {
	idx, err := strconv.Atoi(c.Params(name))
	if err != nil || idx < 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("invalid %s: %q", name, c.Params(name))
	}
	return idx, nil
}

// parseBody - разбор тела запроса и проверка тегов validate
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("invalid request body").Wrap(err)
	}
	return validator.Validate(req)
}
