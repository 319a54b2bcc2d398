package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentctl "schoolku_backend/internals/features/school/students/controller"
)

// Admin routes (CRUD student).
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := studentctl.NewStudentHandler(db)

	{
		admin.Get("/students", ctl.List)
		admin.Get("/students/:id", ctl.GetByID)
		admin.Post("/students", ctl.Create)
		admin.Patch("/students/:id", ctl.Update)
		admin.Delete("/students/:id", ctl.Delete)
	}
}
