package export

import (
	"fmt"
	"io"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// CatalogRow is one menu item flattened for analytics.
type CatalogRow struct {
	ProjectID      string   `parquet:"name=projectId, type=BYTE_ARRAY, convertedtype=UTF8"`
	Restaurant     string   `parquet:"name=restaurant, type=BYTE_ARRAY, convertedtype=UTF8"`
	CategoryID     string   `parquet:"name=categoryId, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category       string   `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	Position       int32    `parquet:"name=position, type=INT32"`
	ItemID         string   `parquet:"name=itemId, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name           string   `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Description    string   `parquet:"name=description, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price          float64  `parquet:"name=price, type=DOUBLE"`
	Currency       string   `parquet:"name=currency, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsSpecialOffer bool     `parquet:"name=isSpecialOffer, type=BOOLEAN"`
	OriginalPrice  *float64 `parquet:"name=originalPrice, type=DOUBLE, repetitiontype=OPTIONAL"`
	Calories       *int32   `parquet:"name=calories, type=INT32, repetitiontype=OPTIONAL"`
	Rating         *float64 `parquet:"name=rating, type=DOUBLE, repetitiontype=OPTIONAL"`
	ReviewCount    *int32   `parquet:"name=reviewCount, type=INT32, repetitiontype=OPTIONAL"`
	Allergens      string   `parquet:"name=allergens, type=BYTE_ARRAY, convertedtype=UTF8"`
	UpdatedAt      int64    `parquet:"name=updatedAt, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// ParquetExporter writes the item catalog, one row per menu item.
type ParquetExporter struct {
	opts Options
}

func NewParquetExporter(opts Options) *ParquetExporter {
	return &ParquetExporter{opts: opts}
}

func (e *ParquetExporter) Format() Format {
	return FormatParquet
}

// CatalogRows flattens the project in display order.
func CatalogRows(project models.MenuProject) []CatalogRow {
	var rows []CatalogRow
	for _, c := range project.Categories {
		for i, item := range c.Items {
			row := CatalogRow{
				ProjectID:      project.ID,
				Restaurant:     project.Restaurant.Name,
				CategoryID:     c.ID,
				Category:       c.Name,
				Position:       int32(i),
				ItemID:         item.ID,
				Name:           item.Name,
				Description:    item.Description,
				Price:          item.Price,
				Currency:       project.Restaurant.Currency.Code,
				IsSpecialOffer: item.IsSpecialOffer,
				OriginalPrice:  item.OriginalPrice,
				Rating:         item.Rating,
				Allergens:      item.Allergens,
				UpdatedAt:      project.UpdatedAt.UnixMilli(),
			}
			if item.Calories != nil {
				v := int32(*item.Calories)
				row.Calories = &v
			}
			if item.ReviewCount != nil {
				v := int32(*item.ReviewCount)
				row.ReviewCount = &v
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func (e *ParquetExporter) Export(w io.Writer, project models.MenuProject) error {
	fw := newStreamFile(w)
	pw, err := writer.NewParquetWriter(fw, new(CatalogRow), 1)
	if err != nil {
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range CatalogRows(project) {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write catalog row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

// streamFile adapts a plain writer to the parquet file interface. The
// parquet writer only ever appends, so reads are refused and seeks just track
// the offset.
type streamFile struct {
	w      io.Writer
	offset int64
}

func newStreamFile(w io.Writer) *streamFile {
	return &streamFile{w: w}
}

func (s *streamFile) Open(name string) (source.ParquetFile, error) {
	return s, nil
}

func (s *streamFile) Create(name string) (source.ParquetFile, error) {
	return s, nil
}

func (s *streamFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		s.offset = offset
	case io.SeekCurrent:
		s.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported on a stream")
	}
	return s.offset, nil
}

func (s *streamFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported on a stream")
}

func (s *streamFile) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.offset += int64(n)
	return n, err
}

// Close leaves the underlying writer open; it belongs to the caller.
func (s *streamFile) Close() error {
	return nil
}
