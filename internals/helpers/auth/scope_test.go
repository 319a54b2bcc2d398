package auth

import (
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

func TestCanAccessBranch(t *testing.T) {
	branchA := uuid.New()
	branchB := uuid.New()

	owner := Scope{UserID: uuid.New(), Role: constants.RoleOwner}
	if !owner.CanAccessBranch(branchA) || !owner.CanAccessBranch(branchB) {
		t.Fatal("owner harus bisa akses semua branch")
	}

	admin := Scope{UserID: uuid.New(), Role: constants.RoleAdmin, BranchID: branchA}
	if !admin.CanAccessBranch(branchA) {
		t.Fatal("admin harus bisa akses branch sendiri")
	}
	if admin.CanAccessBranch(branchB) {
		t.Fatal("admin tidak boleh akses branch lain")
	}
}

func TestEnsureBranch(t *testing.T) {
	branchA := uuid.New()
	branchB := uuid.New()
	sc := Scope{UserID: uuid.New(), Role: constants.RoleAccountant, BranchID: branchA}

	if err := EnsureBranch(sc, branchA); err != nil {
		t.Fatalf("branch sendiri ditolak: %v", err)
	}
	if err := EnsureBranch(sc, branchB); err == nil {
		t.Fatal("lintas branch harus ditolak")
	}
}

func TestEnsureCapability(t *testing.T) {
	sc := Scope{UserID: uuid.New(), Role: constants.RoleTeacher, BranchID: uuid.New()}
	if err := EnsureCapability(sc, constants.CapFeeView); err != nil {
		t.Fatalf("teacher harus boleh lihat fee: %v", err)
	}
	if err := EnsureCapability(sc, constants.CapFeeCollect); err == nil {
		t.Fatal("teacher tidak boleh collect")
	}
}

func TestBestRoleFor(t *testing.T) {
	if got := BestRoleFor([]string{"student", "accountant", "teacher"}); got != constants.RoleAccountant {
		t.Fatalf("BestRoleFor = %s, want accountant", got)
	}
	if got := BestRoleFor([]string{" ADMIN "}); got != constants.RoleAdmin {
		t.Fatalf("BestRoleFor normalisasi gagal: %s", got)
	}
	if got := BestRoleFor(nil); got != "" {
		t.Fatalf("BestRoleFor(nil) = %q, want kosong", got)
	}
}
