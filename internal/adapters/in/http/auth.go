package http

import (
	"courier/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// authenticate verifies the Authorization header. A missing header is an
// errs.ErrUnauthorized error.
func (s *Server) authenticate(ctx echo.Context) (ports.Claims, error) {
	req := ctx.Request()
	return s.auth.Verify(req.Context(), req.Header.Get(echo.HeaderAuthorization))
}

// authenticateOptional verifies the Authorization header when one is sent.
// ok is false for anonymous requests.
func (s *Server) authenticateOptional(ctx echo.Context) (claims ports.Claims, ok bool, err error) {
	if ctx.Request().Header.Get(echo.HeaderAuthorization) == "" {
		return ports.Claims{}, false, nil
	}

	claims, err = s.authenticate(ctx)
	if err != nil {
		return ports.Claims{}, false, err
	}
	return claims, true, nil
}
