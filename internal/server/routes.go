package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

// /api配下のハンドラの約束。
type apiHandler interface {
	RegisterRoutes(g *echo.Group)
}

// RegisterRoutesは全ルートを登録する。
// /auth配下は公開（meだけhandler側でguard）、/api配下は全てguard必須。
func RegisterRoutes(e *echo.Echo, authH *handler.AuthHandler, guard echo.MiddlewareFunc, apiHandlers ...apiHandler) {
	authH.RegisterRoutes(e)

	api := e.Group("/api", guard)
	for _, h := range apiHandlers {
		h.RegisterRoutes(api)
	}
}
