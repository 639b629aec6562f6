package router

import (
	"github.com/labstack/echo/v4"

	"marketplus/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	verifiedMiddleware *middleware.VerifiedMiddleware,
) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e)
	SetupStoreRouter(e, authMiddleware, verifiedMiddleware)
	SetupCartRouter(e, authMiddleware, verifiedMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
