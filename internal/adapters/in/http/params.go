package http

import (
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// pathUUID binds a uuid path parameter the way generated servers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapitypes.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid format for parameter "+name, err)
	}

	return kernel.UUIDFromBytes(raw[:])
}

// queryUUID binds an optional uuid query parameter.
func queryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	var raw *openapitypes.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &raw); err != nil {
		return nil, badRequest("Invalid format for parameter "+name, err)
	}
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryString(c echo.Context, name string) (*string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, badRequest("Invalid format for parameter "+name, err)
	}
	return value, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, badRequest("Invalid format for parameter "+name, err)
	}
	return value, nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	var value *float64
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, badRequest("Invalid format for parameter "+name, err)
	}
	return value, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	var value *bool
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, badRequest("Invalid format for parameter "+name, err)
	}
	return value, nil
}

// queryPage reads page and limit. Missing values fall back to the defaults.
func queryPage(c echo.Context) (queries.Page, error) {
	number, err := queryInt(c, "page")
	if err != nil {
		return queries.Page{}, err
	}
	size, err := queryInt(c, "limit")
	if err != nil {
		return queries.Page{}, err
	}

	var n, l int
	if number != nil {
		n = *number
	}
	if size != nil {
		l = *size
	}
	return queries.NewPage(n, l)
}
