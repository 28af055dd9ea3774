package diag_test

import (
	"testing"

	"natlint/internal/diag"
	"natlint/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := diag.NewBag(2)
	sp := source.Span{Start: 1, End: 2}
	if !bag.Add(diag.New(diag.SevWarning, diag.SynInfo, sp, "w")) {
		t.Fatal("first add must succeed")
	}
	if bag.HasErrors() {
		t.Fatal("warnings are not errors")
	}
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, sp, "e"))
	if bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, sp, "dropped")) {
		t.Fatal("bag must respect its limit")
	}
	if !bag.HasErrors() || bag.Len() != 2 {
		t.Fatalf("unexpected bag state: len=%d", bag.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(0)
	r := diag.BagReporter{Bag: bag}
	diag.ReportError(r, diag.SynExpectSemicolon, source.Span{Start: 9, End: 10}, "b").Emit()
	diag.ReportError(r, diag.LexUnknownChar, source.Span{Start: 3, End: 4}, "a").Emit()
	diag.ReportError(r, diag.LexUnknownChar, source.Span{Start: 3, End: 4}, "a again").Emit()

	bag.Sort()
	bag.Dedup()
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	if items[0].Code != diag.LexUnknownChar || items[1].Code != diag.SynExpectSemicolon {
		t.Fatalf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
	if got := items[0].Code.ID(); got != "LEX1001" {
		t.Fatalf("ID() = %q", got)
	}
}

func TestSeverityNames(t *testing.T) {
	cases := []struct {
		sev         diag.Severity
		name, level string
	}{
		{diag.SevInfo, "info", "note"},
		{diag.SevWarning, "warning", "warning"},
		{diag.SevError, "error", "error"},
		{diag.Severity(9), "unknown", "none"},
	}
	for _, tc := range cases {
		if got := tc.sev.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.sev.SarifLevel(); got != tc.level {
			t.Errorf("SarifLevel() = %q, want %q", got, tc.level)
		}
	}
}
