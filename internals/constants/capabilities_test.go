package constants

import "testing"

func TestRoleHas(t *testing.T) {
	cases := []struct {
		role string
		cap  Capability
		want bool
	}{
		{RoleOwner, CapBranchManage, true},
		{RoleAdmin, CapFeeCollect, true},
		{RoleAccountant, CapFeeCollect, true},
		{RoleAccountant, CapBranchManage, false},
		{RoleAccountant, CapStudentManage, false},
		{RoleAccountant, CapClassManage, false},
		{RoleTeacher, CapFeeView, true},
		{RoleTeacher, CapFeeCollect, false},
		{RoleStudent, CapInvoiceView, true},
		{RoleStudent, CapReportView, false},
		{RoleUser, CapFeeView, false},
		{"unknown", CapFeeView, false},
	}
	for _, tc := range cases {
		if got := RoleHas(tc.role, tc.cap); got != tc.want {
			t.Fatalf("RoleHas(%s, %s) = %v, want %v", tc.role, tc.cap, got, tc.want)
		}
	}
}

func TestIsValidCapability(t *testing.T) {
	for _, c := range AllCapabilities {
		if !IsValidCapability(string(c)) {
			t.Fatalf("capability %s dianggap tidak valid", c)
		}
	}
	if IsValidCapability("fee:delete_everything") {
		t.Fatal("capability asing lolos validasi")
	}
}

func TestCapabilitiesOfReturnsCopy(t *testing.T) {
	a := CapabilitiesOf(RoleTeacher)
	if len(a) == 0 {
		t.Fatal("teacher harus punya capability")
	}
	a[0] = Capability("tampered")
	b := CapabilitiesOf(RoleTeacher)
	if b[0] == Capability("tampered") {
		t.Fatal("CapabilitiesOf membocorkan slice internal")
	}
}
