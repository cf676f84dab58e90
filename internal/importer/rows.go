// Package importer turns spreadsheet rows into menu categories.
package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
)

// UnspecifiedCategory is used for rows without a category.
const UnspecifiedCategory = "غير محدد"

// Row is one data row keyed by its header cell.
type Row map[string]string

// Column aliases, Arabic first. Headers are matched exactly.
var (
	categoryKeys    = []string{"الصنف", "Category"}
	nameKeys        = []string{"اسم العنصر", "Item Name"}
	descriptionKeys = []string{"الوصف", "Description"}
	priceKeys       = []string{"السعر", "Price"}
	imageKeys       = []string{"الصورة", "Image"}
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func (r Row) value(keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

// ParsePrice reads the leading number of s; anything unparseable is 0.
func ParsePrice(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// ToCategories groups rows by exact category name in first-seen order. Rows
// without an item name are dropped and every category and item gets a fresh id.
func ToCategories(rows []Row, newID func() string) []models.MenuCategory {
	categories := []models.MenuCategory{}
	index := make(map[string]int)

	for _, row := range rows {
		name := row.value(nameKeys)
		if name == "" {
			continue
		}
		categoryName := row.value(categoryKeys)
		if categoryName == "" {
			categoryName = UnspecifiedCategory
		}

		idx, ok := index[categoryName]
		if !ok {
			idx = len(categories)
			index[categoryName] = idx
			categories = append(categories, models.MenuCategory{
				ID:    newID(),
				Name:  categoryName,
				Items: []models.MenuItem{},
			})
		}

		categories[idx].Items = append(categories[idx].Items, models.MenuItem{
			ID:          newID(),
			Name:        name,
			Description: row.value(descriptionKeys),
			Price:       ParsePrice(row.value(priceKeys)),
			Image:       row.value(imageKeys),
		})
	}
	return categories
}

// rowsFromTable keys each data row by the header row. Short rows leave the
// missing cells empty.
func rowsFromTable(table [][]string) []Row {
	if len(table) == 0 {
		return nil
	}
	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(table)-1)
	for _, record := range table[1:] {
		row := make(Row, len(header))
		empty := true
		for i, h := range header {
			if h == "" || i >= len(record) {
				continue
			}
			row[h] = record[i]
			if strings.TrimSpace(record[i]) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}
