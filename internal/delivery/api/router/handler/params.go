// Package handler maps HTTP requests onto the leafcare use cases.
package handler

import (
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.Validation("%s must be a valid identifier", name))
	}

	return id, nil
}

// bindBody decodes the JSON body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(domainerrors.Validation("request body must be a JSON object matching the resource"))
	}

	return nil
}

// bindQuery decodes and validates query parameters into dst.
func bindQuery(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return errors.WithStack(domainerrors.Validation("invalid query parameters"))
	}

	return c.Validate(dst)
}

// optionalUUID parses s when present.
func optionalUUID(s string) uuid.UUID {
	if s == "" {
		return uuid.Nil
	}

	return uuid.MustParse(s)
}
