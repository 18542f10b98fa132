package parser

import (
	"testing"
)

func testRowContext() *RowContext {
	return &RowContext{
		SheetName: "Infrastructure",
		Header: SheetHeader{
			CategoryRow:       0,
			RoleRow:           1,
			AccountCol:        1,
			ClientTypeCol:     2,
			LeaderCol:         3,
			ManagerCol:        4,
			FirstPersonnelCol: 5,
		},
		Roles: BuildRoleMap(
			[]string{"", "", "", "", "", "Cloud", "Security"},
			[]string{"", "Coverage Name", "Client Sub Type", "Leader", "ATL Manager", "AWS Lead", "Sec Lead"},
		),
		Classifier: NewClassifier([]string{"TBD", "N/A", "None", "Select"}),
	}
}

func TestExtractRowSplitsMultiNameCells(t *testing.T) {
	rc := testRowContext()
	row := []string{"", "RBC", "Enterprise", "J.Smith", "K.Patel", "Alice, Bob"}

	records := rc.ExtractRow(row)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i, person := range []string{"Alice", "Bob"} {
		r := records[i]
		if r.Person != person {
			t.Errorf("record %d person = %q, expected %q", i, r.Person, person)
		}
		if r.Account != "RBC" || r.Role != "AWS Lead" || r.RoleCategory != "Cloud" {
			t.Errorf("record %d = %+v, expected account RBC, role AWS Lead, category Cloud", i, r)
		}
	}
}

func TestExtractRowSkipsPlaceholderCells(t *testing.T) {
	rc := testRowContext()
	row := []string{"", "RBC", "Enterprise", "J.Smith", "K.Patel", "A.Lee", "TBD"}

	records := rc.ExtractRow(row)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Person != "A.Lee" || r.Role != "AWS Lead" || r.RoleCategory != "Cloud" {
		t.Errorf("record = %+v, expected A.Lee / AWS Lead / Cloud", r)
	}
	if r.TechnologyArea != "Infrastructure" {
		t.Errorf("technology area = %q, expected Infrastructure", r.TechnologyArea)
	}
	if r.ClientType != "Enterprise" || r.Leader != "J.Smith" || r.ATLManager != "K.Patel" {
		t.Errorf("management fields = %+v", r)
	}
}

func TestExtractRowSkipsMissingAccount(t *testing.T) {
	rc := testRowContext()

	for _, account := range []string{"", "   ", "TBD", "---"} {
		row := []string{"", account, "Enterprise", "J.Smith", "K.Patel", "Alice, Bob", "Carol"}
		if records := rc.ExtractRow(row); len(records) != 0 {
			t.Errorf("account %q: expected 0 records, got %d", account, len(records))
		}
	}
}

func TestExtractRowAccountNeverSplit(t *testing.T) {
	rc := testRowContext()
	row := []string{"", "Smith, Jones & Co", "", "", "", "Alice"}

	records := rc.ExtractRow(row)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Account != "Smith, Jones & Co" {
		t.Errorf("account = %q, expected the whole cell value", records[0].Account)
	}
}

func TestExtractRowToleratesShortRows(t *testing.T) {
	rc := testRowContext()

	// Row ends before the management block does.
	if records := rc.ExtractRow([]string{"", "RBC"}); len(records) != 0 {
		t.Errorf("expected 0 records from a row with no personnel cells, got %d", len(records))
	}

	// Management fields missing entirely become empty strings.
	records := rc.ExtractRow([]string{"", "RBC", "", "", "", "Alice"})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ClientType != "" || records[0].Leader != "" || records[0].ATLManager != "" {
		t.Errorf("expected empty management fields, got %+v", records[0])
	}
}
