package catalog

// CategoryColumn is the header of the spreadsheet column holding the
// product category.
const CategoryColumn = "Категория"

// Product is one spreadsheet row keyed by column header. Empty cells are
// stored as "" so every header of the source table is present.
type Product map[string]string

// Get returns the value for column, or "" when the column is absent.
func (p Product) Get(column string) string {
	return p[column]
}

// Without returns a copy of p without column.
func (p Product) Without(column string) Product {
	out := make(Product, len(p))
	for k, v := range p {
		if k != column {
			out[k] = v
		}
	}
	return out
}

// Table is the raw content of a product spreadsheet: the header row and
// every non-empty data row in file order.
type Table struct {
	Headers []string
	Rows    []Product
}

// HasColumn reports whether the table header contains column.
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Headers {
		if h == column {
			return true
		}
	}
	return false
}

// Category is a named group of products in spreadsheet row order.
type Category struct {
	Name     string
	Products []Product
}

// Catalog groups products by category. Categories keep the order in which
// they first appear in the source table.
type Catalog struct {
	Categories []Category
	Columns    []string
	index      map[string]int
}

// NewCatalog returns an empty catalog whose products carry columns.
func NewCatalog(columns []string) *Catalog {
	return &Catalog{
		Columns: columns,
		index:   make(map[string]int),
	}
}

// Add appends product to the named category, creating it on first use.
func (c *Catalog) Add(category string, product Product) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[category]
	if !ok {
		i = len(c.Categories)
		c.index[category] = i
		c.Categories = append(c.Categories, Category{Name: category})
	}
	c.Categories[i].Products = append(c.Categories[i].Products, product)
}

// Get returns the products of the named category and whether it exists.
func (c *Catalog) Get(category string) ([]Product, bool) {
	i, ok := c.index[category]
	if !ok {
		return nil, false
	}
	return c.Categories[i].Products, true
}

// Names lists category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// Len is the number of categories.
func (c *Catalog) Len() int {
	return len(c.Categories)
}

// ProductCount is the number of products across all categories.
func (c *Catalog) ProductCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Products)
	}
	return n
}

// Map flattens the catalog into a plain map. Ordering is lost.
func (c *Catalog) Map() map[string][]Product {
	m := make(map[string][]Product, len(c.Categories))
	for _, cat := range c.Categories {
		m[cat.Name] = cat.Products
	}
	return m
}
