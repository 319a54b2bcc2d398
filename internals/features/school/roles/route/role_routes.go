package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rolectl "schoolku_backend/internals/features/school/roles/controller"
)

// Admin routes (role definitions & assignment).
func RoleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := rolectl.NewRoleHandler(db)

	{
		admin.Get("/roles", ctl.List)
		admin.Post("/roles", ctl.Create)
		admin.Patch("/roles/:id", ctl.Update)
		admin.Delete("/roles/:id", ctl.Delete)
		admin.Post("/roles/assign", ctl.Assign)
	}
}
