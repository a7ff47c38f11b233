package serve

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type HttpServer struct {
	Echo *echo.Echo
}

func NewHttpServer() *HttpServer {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	return &HttpServer{
		Echo: e,
	}
}
