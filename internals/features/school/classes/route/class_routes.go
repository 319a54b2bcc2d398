package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctl "schoolku_backend/internals/features/school/classes/controller"
)

// Admin routes (CRUD class & section).
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	cls := classctl.NewClassHandler(db)
	sec := classctl.NewSectionHandler(db)

	{
		admin.Get("/classes", cls.List)
		admin.Post("/classes", cls.Create)
		admin.Patch("/classes/:id", cls.Update)
		admin.Delete("/classes/:id", cls.Delete)

		admin.Get("/sections", sec.List)
		admin.Post("/sections", sec.Create)
		admin.Patch("/sections/:id", sec.Update)
		admin.Delete("/sections/:id", sec.Delete)
	}
}
