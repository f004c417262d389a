package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"winery/adapters/excel"
	"winery/domain/catalog"
	"winery/internal/errors"
	"winery/internal/publish"
	"winery/internal/testkit"
	"winery/ports"
	"winery/ui"
)

// Mock implementations for testing
type MockProductSource struct {
	mock.Mock
}

func (m *MockProductSource) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	args := m.Called(ctx)
	cat, _ := args.Get(0).(*catalog.Catalog)
	return cat, args.Error(1)
}

type MockPageRenderer struct {
	mock.Mock
}

func (m *MockPageRenderer) Render(data ports.PageData) ([]byte, error) {
	args := m.Called(data)
	page, _ := args.Get(0).([]byte)
	return page, args.Error(1)
}

type MockPageWriter struct {
	mock.Mock
}

func (m *MockPageWriter) Write(page []byte) error {
	args := m.Called(page)
	return args.Error(0)
}

func (m *MockPageWriter) Path() string {
	return "index.html"
}

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.March, 8, 12, 0, 0, 0, time.UTC) }
}

func redWhite() *catalog.Catalog {
	cat := catalog.NewCatalog([]string{"Name"})
	cat.Add("Red", catalog.Product{"Name": "Merlot"})
	cat.Add("Red", catalog.Product{"Name": "Cabernet"})
	cat.Add("White", catalog.Product{"Name": "Chardonnay"})
	return cat
}

func TestCatalogServiceBuild(t *testing.T) {
	cat := redWhite()
	source := new(MockProductSource)
	renderer := new(MockPageRenderer)
	writer := new(MockPageWriter)

	source.On("LoadCatalog", mock.Anything).Return(cat, nil)
	renderer.On("Render", ports.PageData{WineryAge: 104, YearSign: "года", ProductCards: cat}).Return([]byte("<html></html>"), nil)
	writer.On("Write", []byte("<html></html>")).Return(nil)

	result, err := NewCatalogService(source, renderer, writer, fixedClock(2024)).Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &BuildResult{
		WineryAge:    104,
		YearSign:     "года",
		Categories:   2,
		Products:     3,
		BytesWritten: 13,
		OutputPath:   "index.html",
	}, result)
	source.AssertExpectations(t)
	renderer.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestCatalogServiceBuildYearSigns(t *testing.T) {
	cases := map[int]string{2021: "год", 2022: "года", 2025: "лет", 2031: "лет", 2041: "год"}

	for year, want := range cases {
		source := new(MockProductSource)
		renderer := new(MockPageRenderer)
		writer := new(MockPageWriter)
		source.On("LoadCatalog", mock.Anything).Return(redWhite(), nil)
		renderer.On("Render", mock.MatchedBy(func(d ports.PageData) bool {
			return d.WineryAge == year-1920 && d.YearSign == want
		})).Return([]byte("ok"), nil)
		writer.On("Write", mock.Anything).Return(nil)

		result, err := NewCatalogService(source, renderer, writer, fixedClock(year)).Build(context.Background())
		require.NoError(t, err, "year %d", year)
		assert.Equal(t, want, result.YearSign, "year %d", year)
	}
}

func TestCatalogServiceLoadFailureSkipsRenderAndWrite(t *testing.T) {
	source := new(MockProductSource)
	renderer := new(MockPageRenderer)
	writer := new(MockPageWriter)
	source.On("LoadCatalog", mock.Anything).Return(nil, errors.MissingColumn(catalog.CategoryColumn))

	_, err := NewCatalogService(source, renderer, writer, fixedClock(2024)).Build(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))
	renderer.AssertNotCalled(t, "Render", mock.Anything)
	writer.AssertNotCalled(t, "Write", mock.Anything)
}

func TestCatalogServiceRenderFailureSkipsWrite(t *testing.T) {
	source := new(MockProductSource)
	renderer := new(MockPageRenderer)
	writer := new(MockPageWriter)
	source.On("LoadCatalog", mock.Anything).Return(redWhite(), nil)
	renderer.On("Render", mock.Anything).Return(nil, errors.RenderError("boom", nil))

	_, err := NewCatalogService(source, renderer, writer, fixedClock(2024)).Build(context.Background())
	assert.Equal(t, errors.CodeRenderError, errors.GetCode(err))
	writer.AssertNotCalled(t, "Write", mock.Anything)
}

func TestCatalogServiceFoundationYearIsInvalid(t *testing.T) {
	source := new(MockProductSource)
	renderer := new(MockPageRenderer)
	writer := new(MockPageWriter)
	source.On("LoadCatalog", mock.Anything).Return(redWhite(), nil)

	_, err := NewCatalogService(source, renderer, writer, fixedClock(1920)).Build(context.Background())
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	renderer.AssertNotCalled(t, "Render", mock.Anything)
}

func newSiteService(t *testing.T, dir string) *CatalogService {
	t.Helper()
	config := excel.DefaultExcelConfig()
	config.FilePath = testkit.WriteProducts(t, dir)
	testkit.WriteTemplate(t, dir)

	return NewCatalogService(
		excel.NewCatalogAdapter(config),
		ui.NewPageRenderer(filepath.Join(dir, "template.html")),
		publish.NewFileWriter(filepath.Join(dir, "index.html")),
		nil,
	)
}

func TestCatalogServiceEndToEnd(t *testing.T) {
	dir := t.TempDir()
	service := newSiteService(t, dir)

	result, err := service.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year()-1920, result.WineryAge)
	assert.Equal(t, 3, result.Categories)
	assert.Equal(t, 6, result.Products)

	first, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(first))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("section").Length())
	assert.Equal(t, 6, doc.Find(".card").Length())
	assert.Contains(t, doc.Find("#age").Text(), result.YearSign)

	_, err = service.Build(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, first, second, "rebuilding from the same input must be byte-identical")
}

func TestCatalogServiceEndToEndMissingColumn(t *testing.T) {
	dir := t.TempDir()
	config := excel.DefaultExcelConfig()
	config.FilePath = testkit.WriteWorkbook(t, dir, "products.xlsx", "", []string{"Name"}, [][]string{{"Merlot"}})
	testkit.WriteTemplate(t, dir)

	service := NewCatalogService(
		excel.NewCatalogAdapter(config),
		ui.NewPageRenderer(filepath.Join(dir, "template.html")),
		publish.NewFileWriter(filepath.Join(dir, "index.html")),
		nil,
	)

	_, err := service.Build(context.Background())
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))
	assert.NoFileExists(t, filepath.Join(dir, "index.html"))
}

func TestShippedTemplateAndSampleProducts(t *testing.T) {
	output := filepath.Join(t.TempDir(), "index.html")
	config := excel.DefaultExcelConfig()
	config.FilePath = filepath.Join("..", "products.csv")

	service := NewCatalogService(
		excel.NewCatalogAdapter(config),
		ui.NewPageRenderer(filepath.Join("..", "template.html")),
		publish.NewFileWriter(output),
		fixedClock(2024),
	)

	result, err := service.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Categories)
	assert.Equal(t, 10, result.Products)

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "Уже 104 года с вами", doc.Find("h5").Text())
	assert.Equal(t, 10, doc.Find(".card").Length())
	assert.Equal(t, "Сухое", doc.Find(`section[data-category="Белые вина"] strong`).Text())
	assert.Equal(t, "images/chacha.png", doc.Find(`img[alt="Чача"]`).AttrOr("src", ""))
}
