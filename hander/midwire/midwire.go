package midwire

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echoMiddleware "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Auth guards admin routes with an HS256 bearer token. The token may also
// come as the token query parameter, browsers cannot set headers on a
// websocket handshake. An empty secret lets every request through.
func Auth(secret string) echo.MiddlewareFunc {
	if secret == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	jwtMiddleware := echoMiddleware.WithConfig(echoMiddleware.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:Authorization:Bearer ,query:token",
		ContextKey:  "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "invalid token: " + err.Error()})
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "invalid token type"})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"msg": "invalid claims type"})
			}
			sub, _ := claims.GetSubject()
			c.Set("subject", sub)
			return next(c)
		})
	}
}
