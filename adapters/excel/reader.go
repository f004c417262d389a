package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"winery/domain/catalog"
	"winery/internal/errors"
	"winery/internal/logging"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	log      zerolog.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files.
// The file type is taken from the extension; anything but .csv is read as xlsx.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		log:      logging.Component("reader"),
	}
}

// WithSheet selects the worksheet to read from an xlsx file.
func (r *DataReader) WithSheet(sheet string) *DataReader {
	r.sheet = sheet
	return r
}

// ReadTable reads the header row and data rows of the file
func (r *DataReader) ReadTable(ctx context.Context) (*catalog.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.log.Debug().Str("file", r.filePath).Str("type", r.fileType).Msg("reading products")

	if _, err := os.Stat(r.filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("%s file %s", strings.ToUpper(r.fileType), r.filePath))
		}
		return nil, errors.IOError("failed to stat "+r.filePath, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows)
}

// readExcelRows reads the configured sheet, or the first one
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ParseError("failed to open Excel file "+r.filePath, err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.ParseError("Excel file has no sheets: "+r.filePath, nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ParseError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}

	r.log.Debug().
		Str("sheet", sheet).
		Int("rows", len(rows)).
		Dur("elapsed", time.Since(startTime)).
		Msg("sheet read")
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IOError("failed to open CSV file "+r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseError("failed to read CSV file "+r.filePath, err)
	}
	return rows, nil
}

// processRows converts raw string rows into a Table. Short rows are padded
// with empty strings and blank rows are dropped.
func (r *DataReader) processRows(rows [][]string) (*catalog.Table, error) {
	if len(rows) == 0 {
		return nil, errors.ParseError("file has no header row: "+r.filePath, nil)
	}

	headers := normalizeHeaders(rows[0])

	dataRows := make([]catalog.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		product := make(catalog.Product, len(headers))
		for j, header := range headers {
			value := ""
			if j < len(row) {
				value = cleanCell(row[j])
			}
			product[header] = value
		}
		dataRows = append(dataRows, product)
	}

	r.log.Info().
		Str("file", r.filePath).
		Int("columns", len(headers)).
		Int("rows", len(dataRows)).
		Msg("products loaded")

	return &catalog.Table{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// normalizeHeaders cleans header cells and makes them unique. Blank headers
// become "Unnamed: N" and repeated headers get the first free ".1", ".2"
// suffix, skipping names already present in the row.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	taken := make(map[string]bool, len(raw))
	for _, cell := range raw {
		taken[cleanCell(cell)] = true
	}

	seen := make(map[string]bool, len(raw))
	next := make(map[string]int)
	for i, cell := range raw {
		h := cleanCell(cell)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if seen[h] {
			base := h
			for n := next[base] + 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", base, n)
				if !seen[candidate] && !taken[candidate] {
					next[base] = n
					h = candidate
					break
				}
			}
		}
		seen[h] = true
		headers[i] = h
	}
	return headers
}

func cleanCell(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
