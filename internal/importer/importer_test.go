package importer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestToCategories_GroupsInFirstSeenOrder(t *testing.T) {
	rows := []Row{
		{"Category": "Drinks", "Item Name": "Tea", "Price": "5"},
		{"Category": "Mains", "Item Name": "Burger", "Price": "20"},
		{"Category": "Drinks", "Item Name": "Coffee", "Price": "abc"},
		{"Item Name": "", "Price": "9"},
	}

	categories := ToCategories(rows, counter())

	require.Len(t, categories, 2)
	assert.Equal(t, "Drinks", categories[0].Name)
	require.Len(t, categories[0].Items, 2)
	assert.Equal(t, "Tea", categories[0].Items[0].Name)
	assert.Equal(t, 5.0, categories[0].Items[0].Price)
	assert.Equal(t, "Coffee", categories[0].Items[1].Name)
	assert.Equal(t, 0.0, categories[0].Items[1].Price)

	assert.Equal(t, "Mains", categories[1].Name)
	require.Len(t, categories[1].Items, 1)
	assert.Equal(t, "Burger", categories[1].Items[0].Name)
	assert.Equal(t, 20.0, categories[1].Items[0].Price)

	ids := map[string]bool{}
	for _, c := range categories {
		ids[c.ID] = true
		for _, i := range c.Items {
			ids[i.ID] = true
		}
	}
	assert.Len(t, ids, 5)
}

func TestToCategories_DropsRowsWithoutItemName(t *testing.T) {
	rows := []Row{
		{"Category": "Drinks", "Item Name": "Tea", "Price": "10"},
		{"Category": "Drinks", "Item Name": "Coffee", "Price": "15"},
		{"Category": "", "Item Name": "", "Price": "5"},
	}

	categories := ToCategories(rows, counter())

	require.Len(t, categories, 1)
	assert.Equal(t, "Drinks", categories[0].Name)
	require.Len(t, categories[0].Items, 2)
	assert.Equal(t, "Tea", categories[0].Items[0].Name)
	assert.Equal(t, 10.0, categories[0].Items[0].Price)
	assert.Equal(t, "Coffee", categories[0].Items[1].Name)
	assert.Equal(t, 15.0, categories[0].Items[1].Price)
}

func TestToCategories_ArabicAliasesAndDefaults(t *testing.T) {
	rows := []Row{
		{"الصنف": "حلويات", "Category": "Desserts", "اسم العنصر": "كنافة", "السعر": "18.5 ر.س", "الوصف": "بالقشطة"},
		{"اسم العنصر": "ماء", "Price": "2"},
		{"الصنف": "", "Category": "Drinks", "Item Name": "Juice", "Image": "juice.png"},
	}

	categories := ToCategories(rows, counter())

	require.Len(t, categories, 3)
	assert.Equal(t, "حلويات", categories[0].Name)
	assert.Equal(t, 18.5, categories[0].Items[0].Price)
	assert.Equal(t, "بالقشطة", categories[0].Items[0].Description)

	assert.Equal(t, UnspecifiedCategory, categories[1].Name)
	assert.Equal(t, 2.0, categories[1].Items[0].Price)

	assert.Equal(t, "Drinks", categories[2].Name)
	assert.Equal(t, "juice.png", categories[2].Items[0].Image)
}

func TestToCategories_HeadersAreCaseSensitive(t *testing.T) {
	categories := ToCategories([]Row{{"item name": "Tea"}}, counter())
	assert.Empty(t, categories)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"15":      15,
		" 12.75 ": 12.75,
		"10SAR":   10,
		".5":      0.5,
		"":        0,
		"free":    0,
		"-3":      -3,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParsePrice(in), "input %q", in)
	}
}

func TestTemplate_RoundTripsThroughImport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	rows, err := ReadSpreadsheet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	categories := ToCategories(rows, counter())
	require.Len(t, categories, 2)
	assert.Equal(t, "مشروبات ساخنة", categories[0].Name)
	require.Len(t, categories[0].Items, 2)
	assert.Equal(t, "قهوة عربية", categories[0].Items[0].Name)
	assert.Equal(t, 15.0, categories[0].Items[0].Price)
	assert.Equal(t, "شاي أحمر", categories[0].Items[1].Name)
	assert.Equal(t, 10.0, categories[0].Items[1].Price)
	assert.Equal(t, "وجبات رئيسية", categories[1].Name)
	assert.Equal(t, 35.0, categories[1].Items[0].Price)
}

func TestReadSpreadsheet_Unreadable(t *testing.T) {
	_, err := ReadSpreadsheet(strings.NewReader("definitely not a workbook"))
	assert.ErrorIs(t, err, ErrUnreadableFile)
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.csv")
	content := "\ufeffCategory,Item Name,Description,Price\nMains,Burger,Beef,20\nMains,Fries,,7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	categories := ToCategories(rows, counter())

	require.Len(t, categories, 1)
	assert.Equal(t, "Mains", categories[0].Name)
	assert.Len(t, categories[0].Items, 2)
	assert.Equal(t, "Beef", categories[0].Items[0].Description)
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrUnreadableFile)
}
