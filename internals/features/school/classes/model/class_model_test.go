package model

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// Nama class harus unik per branch, bukan global — index komposit
// (branch_id, name) harus benar-benar terbentuk dari tag gorm.
func TestClassUniqueIndexPerBranch(t *testing.T) {
	s, err := schema.Parse(&Class{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema Class: %v", err)
	}
	idx, ok := s.ParseIndexes()["uniq_class_branch_name"]
	if !ok {
		t.Fatal("index uniq_class_branch_name tidak ditemukan")
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("uniq_class_branch_name punya %d kolom, harusnya 2", len(idx.Fields))
	}
	if got := idx.Fields[0].DBName; got != "class_branch_id" {
		t.Fatalf("kolom pertama = %s, harusnya class_branch_id", got)
	}
	if got := idx.Fields[1].DBName; got != "class_name" {
		t.Fatalf("kolom kedua = %s, harusnya class_name", got)
	}
}

func TestSectionUniqueIndexPerClass(t *testing.T) {
	s, err := schema.Parse(&Section{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema Section: %v", err)
	}
	idx, ok := s.ParseIndexes()["uniq_section_class_name"]
	if !ok {
		t.Fatal("index uniq_section_class_name tidak ditemukan")
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("uniq_section_class_name punya %d kolom, harusnya 2", len(idx.Fields))
	}
	if got := idx.Fields[0].DBName; got != "section_class_id" {
		t.Fatalf("kolom pertama = %s, harusnya section_class_id", got)
	}
	if got := idx.Fields[1].DBName; got != "section_name" {
		t.Fatalf("kolom kedua = %s, harusnya section_name", got)
	}
}
