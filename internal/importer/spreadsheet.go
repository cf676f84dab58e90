package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnreadableFile is the single error reported for any file that cannot be
// parsed. Nothing is imported in that case.
var ErrUnreadableFile = errors.New("حدث خطأ في قراءة الملف. تأكد من صحة تنسيق الملف")

// ReadSpreadsheet reads the first sheet of an xlsx workbook.
func ReadSpreadsheet(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrUnreadableFile
	}
	table, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return rowsFromTable(table), nil
}

func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	table, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if len(table) > 0 && len(table[0]) > 0 {
		table[0][0] = strings.TrimPrefix(table[0][0], "\ufeff")
	}
	return rowsFromTable(table), nil
}

// ReadFile picks the reader by file extension.
func ReadFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ReadSpreadsheet(file)
	case ".csv":
		return ReadCSV(file)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrUnreadableFile, filepath.Ext(path))
	}
}
