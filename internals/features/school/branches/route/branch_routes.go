package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchctl "schoolku_backend/internals/features/school/branches/controller"
)

// Admin routes (CRUD branch) — diproteksi IsBranchAdmin().
func BranchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := branchctl.NewBranchHandler(db)

	grp := admin.Group("/branches")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
