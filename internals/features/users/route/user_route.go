package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "ftms_backend/internals/features/users/controller"
)

// Public: login only. The /me endpoint mounts behind AuthJWT.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := &userController.Handler{DB: db}
	public.Post("/auth/login", h.Login)
}

func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &userController.Handler{DB: db}
	user.Get("/auth/me", h.Me)
}
