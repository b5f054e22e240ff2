package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"greencart/internal"
)

func TestExportPurchasesToXLSX(t *testing.T) {
	purchases := []internal.Purchase{
		{Date: "2025-04-01", Product: "bio melk", Quantity: 2, Price: 1.89, SustainabilityScore: 10},
		{Date: "2025-04-02", Product: "rundvlees", Quantity: 1, Price: 7.50, SustainabilityScore: 0},
	}

	out := filepath.Join(t.TempDir(), "reports", "purchases.xlsx")
	if err := ExportPurchasesToXLSX(purchases, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	if got, _ := f.GetCellValue(sheet, "A1"); got != "date" {
		t.Fatalf("A1=%q", got)
	}
	if got, _ := f.GetCellValue(sheet, "B2"); got != "bio melk" {
		t.Fatalf("B2=%q", got)
	}
	if got, _ := f.GetCellValue(sheet, "E3"); got != "0" {
		t.Fatalf("E3=%q", got)
	}
	// summary row: 2 purchases + header + blank line
	if got, _ := f.GetCellValue(sheet, "A5"); got != "average" {
		t.Fatalf("A5=%q", got)
	}
	if got, _ := f.GetCellValue(sheet, "E5"); got != "5" {
		t.Fatalf("E5=%q", got)
	}
}

func TestExportEmptyHistory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "purchases.xlsx")
	if err := ExportPurchasesToXLSX(nil, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(f.GetSheetName(0), "A1"); got != "date" {
		t.Fatalf("A1=%q", got)
	}
}
