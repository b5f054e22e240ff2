package report

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"greencart/internal"
	"greencart/internal/scoring"
)

// ExportPurchasesToXLSX writes the purchase history plus a summary row with
// the average score and its rating.
func ExportPurchasesToXLSX(purchases []internal.Purchase, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"date", "product", "quantity", "price", "sustainability_score", "rating"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	total := 0
	for i, purchase := range purchases {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, purchase.Date)
		set(2, purchase.Product)
		set(3, purchase.Quantity)
		set(4, purchase.Price)
		set(5, purchase.SustainabilityScore)
		set(6, scoring.Rating(float64(purchase.SustainabilityScore)))
		total += purchase.SustainabilityScore
	}

	if len(purchases) > 0 {
		average := float64(total) / float64(len(purchases))
		r := len(purchases) + 3
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, "average")
		set(5, average)
		set(6, scoring.Rating(average))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
