package importer

import (
	"strings"
	"testing"

	"go-inventory-admin/internal/model"
)

func TestReadRows(t *testing.T) {
	input := "Cup,2,5,Kitchen\nMug,20,8,Kitchen\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// No header line: the first record is data.
	want := model.ImportRow{Name: "Cup", Stock: "2", Price: "5", Category: "Kitchen"}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
}

func TestReadRows_RaggedRecords(t *testing.T) {
	input := "Cup,2\nMug,20,8,Kitchen,extra\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Price != "" || rows[0].Category != "" {
		t.Errorf("short record = %+v, want empty trailing fields", rows[0])
	}
	if rows[1].Category != "Kitchen" {
		t.Errorf("Category = %q, want Kitchen (extra column dropped)", rows[1].Category)
	}
}

func TestReadRows_SkipsBlankLines(t *testing.T) {
	input := "Cup,2,5,Kitchen\n\n,,,\nMug,20,8,Kitchen\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("len(rows) = %d, want 2 (blank records dropped)", len(rows))
	}
}

func TestReadRows_QuotedFields(t *testing.T) {
	input := "\"Mug, large\",20,8,\"Kitchen\"\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if rows[0].Name != "Mug, large" {
		t.Errorf("Name = %q, want quoted comma preserved", rows[0].Name)
	}
}

func TestReadRows_Empty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}
