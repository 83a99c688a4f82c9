package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiSpec []byte

// LoadOpenAPIDocument parses and validates the embedded API contract.
func LoadOpenAPIDocument(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// NewOpenAPIValidator builds echo middleware that rejects requests not
// conforming to the embedded contract before they reach a handler. Routes
// absent from the document pass through untouched.
func NewOpenAPIValidator(ctx context.Context) (echo.MiddlewareFunc, error) {
	doc, err := LoadOpenAPIDocument(ctx)
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				// Unspecified routes are not this middleware's concern.
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: validationErr.Error(),
				})
			}

			return next(c)
		}
	}, nil
}
