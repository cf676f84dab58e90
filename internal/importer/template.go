package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	TemplateSheet    = "قالب المنيو"
	TemplateFileName = "قالب_المنيو.xlsx"
)

var templateRows = [][]any{
	{"الصنف", "اسم العنصر", "الوصف", "السعر", "الصورة"},
	{"مشروبات ساخنة", "قهوة عربية", "قهوة عربية أصيلة بالهيل", 15, ""},
	{"مشروبات ساخنة", "شاي أحمر", "شاي أحمر طازج", 10, ""},
	{"وجبات رئيسية", "برجر لحم", "برجر لحم مشوي مع الخضار", 35, ""},
}

// WriteTemplate writes an example workbook users can fill in and import.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return fmt.Errorf("failed to name template sheet: %w", err)
	}
	for i, row := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(TemplateSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write template row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(TemplateSheet, "A", "E", 22); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
