package constants

// Role names (dipakai di claims JWT & tabel roles)
const (
	RoleOwner      = "owner" // global, lintas branch
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
	RoleUser       = "user"
)

// Prioritas role — dipakai auto-pick saat user punya lebih dari satu role di branch
var RolePriority = map[string]int{
	RoleOwner:      100,
	RoleAdmin:      90,
	RoleAccountant: 70,
	RoleTeacher:    60,
	RoleStudent:    40,
	RoleUser:       10,
}
