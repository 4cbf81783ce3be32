package models

import (
	"testing"

	"sitedesk/internal/taxonomy"
)

func TestDocumentTotals(t *testing.T) {
	docs := []Document{
		{DocType: taxonomy.DocEstimate, Status: taxonomy.DocApproved, Amount: 1_000_000},
		{DocType: taxonomy.DocEstimate, Status: taxonomy.DocApproved, Amount: 250_000},
		{DocType: taxonomy.DocEstimate, Status: taxonomy.DocPending, Amount: 9_999_999},
		{DocType: taxonomy.DocEstimate, Status: taxonomy.DocRejected, Amount: 777},
		{DocType: taxonomy.DocOrder, Status: taxonomy.DocApproved, Amount: 400_000},
		{DocType: taxonomy.DocOrder, Status: taxonomy.DocDraft, Amount: 123},
		{DocType: taxonomy.DocContract, Status: taxonomy.DocApproved, Amount: 5_000_000},
		{DocType: taxonomy.DocInvoice, Status: taxonomy.DocApproved, Amount: 2_000_000},
	}

	estimateTotal, orderTotal := DocumentTotals(docs)
	if estimateTotal != 1_250_000 {
		t.Errorf("estimateTotal = %d, want 1250000", estimateTotal)
	}
	if orderTotal != 400_000 {
		t.Errorf("orderTotal = %d, want 400000", orderTotal)
	}
}

func TestDocumentTotalsEmpty(t *testing.T) {
	estimateTotal, orderTotal := DocumentTotals(nil)
	if estimateTotal != 0 || orderTotal != 0 {
		t.Errorf("totals over no documents = %d, %d, want 0, 0", estimateTotal, orderTotal)
	}
}

func TestImageListRoundTrip(t *testing.T) {
	list := ImageList{"/uploads/site-logs/a.jpg", "/uploads/site-logs/b.png"}

	v, err := list.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var back ImageList
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(back) != 2 || back[0] != list[0] || back[1] != list[1] {
		t.Errorf("round trip = %v, want %v", back, list)
	}

	var empty ImageList
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("Scan(nil) = %v, want empty list", empty)
	}
}
