package constants

// Capability: kemampuan terenumerasi per role — pengganti cek role
// berbasis raw SQL di versi lama.
type Capability string

const (
	CapBranchManage  Capability = "branch:manage"
	CapStudentManage Capability = "student:manage"
	CapClassManage   Capability = "class:manage"
	CapRoleManage    Capability = "role:manage"
	CapFeeTypeManage Capability = "fee_type:manage"
	CapFeeAssign     Capability = "fee:assign"
	CapFeeCollect    Capability = "fee:collect"
	CapFeeView       Capability = "fee:view"
	CapInvoiceView   Capability = "invoice:view"
	CapReportView    Capability = "report:view"
)

// baseline capability set per role bawaan; role kustom di tabel roles
// bisa menambah di atasnya.
var roleCapabilities = map[string][]Capability{
	RoleOwner: {
		CapBranchManage, CapStudentManage, CapClassManage, CapRoleManage,
		CapFeeTypeManage, CapFeeAssign, CapFeeCollect, CapFeeView,
		CapInvoiceView, CapReportView,
	},
	RoleAdmin: {
		CapBranchManage, CapStudentManage, CapClassManage, CapRoleManage,
		CapFeeTypeManage, CapFeeAssign, CapFeeCollect, CapFeeView,
		CapInvoiceView, CapReportView,
	},
	RoleAccountant: {
		CapFeeTypeManage, CapFeeAssign, CapFeeCollect, CapFeeView,
		CapInvoiceView, CapReportView,
	},
	RoleTeacher: {CapFeeView, CapInvoiceView},
	RoleStudent: {CapInvoiceView},
	RoleUser:    {},
}

// AllCapabilities: daftar capability yang dikenal sistem.
var AllCapabilities = []Capability{
	CapBranchManage, CapStudentManage, CapClassManage, CapRoleManage,
	CapFeeTypeManage, CapFeeAssign, CapFeeCollect, CapFeeView,
	CapInvoiceView, CapReportView,
}

// IsValidCapability: validasi input role kustom.
func IsValidCapability(s string) bool {
	for _, c := range AllCapabilities {
		if string(c) == s {
			return true
		}
	}
	return false
}

// RoleHas: typed permission check.
func RoleHas(role string, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// CapabilitiesOf: salinan capability set sebuah role (untuk response API).
func CapabilitiesOf(role string) []Capability {
	src := roleCapabilities[role]
	out := make([]Capability, len(src))
	copy(out, src)
	return out
}
