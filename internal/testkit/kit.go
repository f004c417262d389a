// Package testkit builds spreadsheet, template and page fixtures for tests.
package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// ProductHeaders is the header row of the sample product sheet
var ProductHeaders = []string{"Категория", "Название", "Сорт", "Цена", "Картинка", "Акция"}

// ProductRows is a small sample of the winery assortment
var ProductRows = [][]string{
	{"Белые вина", "Белая леди", "Дамский пальчик", "399", "belaya_ledi.png", "Выгодное предложение"},
	{"Напитки", "Коньяк классический", "", "350", "konyak_klassicheskyi.png", ""},
	{"Белые вина", "Ркацители", "Ркацители", "499", "rkaciteli.png", ""},
	{"Красные вина", "Черный лекарь", "Качич", "399", "chernyi_lekar.png", ""},
	{"Красные вина", "Хванчкара", "Александраули", "550", "hvanchkara.png", ""},
	{"Напитки", "Чача", "", "299", "chacha.png", "Выгодное предложение"},
}

// TemplateHTML is a minimal page template with every placeholder the
// catalog page needs
var TemplateHTML = Dedent(`
	<!doctype html>
	<html lang="ru">
	<head><meta charset="utf-8"><title>Новое русское вино</title></head>
	<body>
	<p id="age">Уже {{.WineryAge}} {{.YearSign}} с вами</p>
	{{range .ProductCards.Categories}}<section data-category="{{.Name}}">
	<h2>{{.Name}}</h2>
	{{range .Products}}<div class="card">
	<h3>{{index . "Название"}}</h3>
	<p class="sort">{{index . "Сорт"}}</p>
	<p class="price">{{index . "Цена"}} р.</p>
	{{with index . "Акция"}}<p class="promo">{{.}}</p>{{end}}
	</div>
	{{end}}</section>
	{{end}}</body>
	</html>
	`)

// Dedent strips common indentation and the leading newline from text
func Dedent(text string) string {
	return strings.TrimLeft(dedent.Dedent(text), "\n")
}

// WriteWorkbook writes an xlsx file with a single sheet and returns its path
func WriteWorkbook(t testing.TB, dir, name, sheet string, header []string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	} else {
		sheet = "Sheet1"
	}

	all := append([][]string{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// WriteProducts writes the sample product sheet to dir/products.xlsx
func WriteProducts(t testing.TB, dir string) string {
	t.Helper()
	return WriteWorkbook(t, dir, "products.xlsx", "Лист1", ProductHeaders, ProductRows)
}

// WriteCSV writes header and rows as a CSV file and returns its path
func WriteCSV(t testing.TB, dir, name string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	w := csv.NewWriter(file)
	require.NoError(t, w.Write(header))
	require.NoError(t, w.WriteAll(rows))
	return path
}

// WriteFile writes content to dir/name and returns the path
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteTemplate writes TemplateHTML to dir/template.html
func WriteTemplate(t testing.TB, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "template.html", TemplateHTML)
}
