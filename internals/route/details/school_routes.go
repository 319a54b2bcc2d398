// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchroute "schoolku_backend/internals/features/school/branches/route"
	classroute "schoolku_backend/internals/features/school/classes/route"
	roleroute "schoolku_backend/internals/features/school/roles/route"
	studentroute "schoolku_backend/internals/features/school/students/route"
	authmw "schoolku_backend/internals/middlewares/auth"
	featuremw "schoolku_backend/internals/middlewares/features"
)

// SchoolRoutes: master data sekolah — branch, class/section, student, role.
func SchoolRoutes(api fiber.Router, db *gorm.DB, jwtSecret string) {
	school := api.Group("/school",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}),
		featuremw.UseBranchScope(),
		featuremw.IsBranchAdmin(),
	)

	branchroute.BranchAdminRoutes(school, db)
	classroute.ClassAdminRoutes(school, db)
	studentroute.StudentAdminRoutes(school, db)
	roleroute.RoleAdminRoutes(school, db)
}
