package clean

import (
	"testing"

	"github.com/GermanMF/table-reader-bank/model"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"currency and separators", "$21,098.00", "21098.00"},
		{"letter O misread", "2O.50", "20.50"},
		{"negative", "-$1,500.00", "-1500.00"},
		{"internal spaces", "$ 3 500.00", "3500.00"},
		{"no numeric token", "N/A", "N/A"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.in); got != tt.want {
				t.Errorf("Amount(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0%", "0%"},
		{"12.5 %", "12.5%"},
		{"tasa 0", "0"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Percentage(tt.in); got != tt.want {
			t.Errorf("Percentage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"border bleed", "[17-Ene-2026 |", "17-Ene-2026"},
		{"f misread as 7", "2f-Ene-2026", "27-Ene-2026"},
		{"slash misread as 7", "2/-Ene-2026", "27-Ene-2026"},
		{"extra trailing day digit", "298-Ene-2026", "29-Ene-2026"},
		{"single digit day padded", "2-Ene-2026", "02-Ene-2026"},
		{"lowercase month recapitalized", "05-dic-2025", "05-Dic-2025"},
		{"day and month only", "17-Feb", "17-Feb"},
		{"no date pattern", "sin fecha", "sin fecha"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.in); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if got := Description("| OXXO   GAS \\"); got != "OXXO GAS" {
		t.Errorf("Description = %q, want %q", got, "OXXO GAS")
	}
}

func TestMSIRecords(t *testing.T) {
	rows := [][]string{
		{"[17-Ene-2026", "LIVERPOOL", "$12,000.00", "$8,000.00", "$2,000.00", "3 de 6", "0 %"},
	}
	records := MSIRecords(rows)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.OperationDate != "17-Ene-2026" {
		t.Errorf("OperationDate = %q", r.OperationDate)
	}
	if r.OriginalAmount != "12000.00" || r.PendingBalance != "8000.00" || r.RequiredPayment != "2000.00" {
		t.Errorf("Amounts not cleaned: %+v", r)
	}
	if r.Rate != "0%" {
		t.Errorf("Rate = %q, want %q", r.Rate, "0%")
	}
	if r.PaymentNumber != "3 de 6" {
		t.Errorf("PaymentNumber should pass through, got %q", r.PaymentNumber)
	}
}

func TestRegularRecords(t *testing.T) {
	rows := [][]string{
		{"17-Ene-2026", "18-Ene-2026", "OXXO GAS", "+", "$350.00"},
		{"19-Ene-2026", "20-Ene-2026", "SU PAGO", "-", "-$1,000.00"},
		{"21-Ene-2026", "22-Ene-2026", "UBER", "", "$89.00"},
	}
	records := RegularRecords(rows, model.CardAdicional)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	if records[0].Type != "Cargo" {
		t.Errorf("Plus sign should map to Cargo, got %q", records[0].Type)
	}
	if records[1].Type != "Abono" {
		t.Errorf("Minus sign should map to Abono, got %q", records[1].Type)
	}
	if records[1].Amount != "1000.00" {
		t.Errorf("Amount should lose residual minus, got %q", records[1].Amount)
	}
	if records[2].Type != "Cargo" {
		t.Errorf("Empty sign should default to Cargo, got %q", records[2].Type)
	}
	for _, r := range records {
		if r.CardType != "Adicional" {
			t.Errorf("CardType = %q, want Adicional", r.CardType)
		}
		if r.Assignee != "" || r.Comment != "" {
			t.Errorf("User-assigned fields must start blank: %+v", r)
		}
	}
}

func TestConsolidate(t *testing.T) {
	titular := []model.RegularRecord{{Description: "A"}, {Description: "B"}}
	adicional := []model.RegularRecord{{Description: "C"}}

	all := Consolidate(titular, adicional)
	if len(all) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(all))
	}
	if all[0].Description != "A" || all[2].Description != "C" {
		t.Error("Titular rows must come first, adicional last")
	}

	if Consolidate(nil, nil) != nil {
		t.Error("Consolidating nothing should yield nil")
	}
}
