package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}

// CSVImporter reads product spreadsheets and creates the products in the
// inventory API. Categories are matched by name and created when missing.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryStore
	known      map[string]string
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryStore) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
	}
}

type csvRow struct {
	line      int
	Name      string
	Desc      string
	Genero    domain.Genero
	Brand     string
	Price     decimal.Decimal
	Stock     int
	Estado    domain.EstadoProducto
	Category  string
	ImageURLs []string
}

// Run parses CSV rows and creates one product per named row. Rows with only
// an image URL add that image to the product above them.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"nombre", "marca", "genero", "precio", "categoria"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing column %q", required)
		}
	}

	var (
		current  *csvRow
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if row == nil {
			continue
		}
		row.line = line

		if row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Brand == "" || row.Category == "" || !row.Genero.Valid() || row.Price.IsNegative() || row.Stock < 0 {
		return fmt.Errorf("line %d: invalid product row %q", row.line, row.Name)
	}
	if row.Estado != "" && !row.Estado.Valid() {
		return fmt.Errorf("line %d: invalid estado %q", row.line, row.Estado)
	}
	categoryID, err := i.categoryID(ctx, row.Category)
	if err != nil {
		return fmt.Errorf("line %d: category %q: %w", row.line, row.Category, err)
	}

	in := domain.ProductInput{
		Name:       &row.Name,
		Genero:     &row.Genero,
		Brand:      &row.Brand,
		Price:      &row.Price,
		Stock:      &row.Stock,
		CategoryID: &categoryID,
		Images:     row.ImageURLs,
	}
	if row.Desc != "" {
		in.Description = &row.Desc
	}
	if row.Estado != "" {
		in.Estado = &row.Estado
	}

	if _, err := i.products.Create(ctx, in); err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}
	return nil
}

func (i *CSVImporter) categoryID(ctx context.Context, name string) (string, error) {
	if i.known == nil {
		list, err := i.categories.List(ctx)
		if err != nil {
			return "", err
		}
		i.known = make(map[string]string, len(list))
		for _, c := range list {
			i.known[strings.ToLower(c.Name)] = c.ID
		}
	}
	if id, ok := i.known[strings.ToLower(name)]; ok {
		return id, nil
	}
	created, err := i.categories.Create(ctx, domain.CategoryInput{Name: name})
	if err != nil {
		return "", err
	}
	i.known[strings.ToLower(name)] = created.ID
	return created.ID, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	name := pick(record, index, "nombre")
	imageURL := pick(record, index, "imagen")
	if name == "" && imageURL == "" {
		return nil, nil
	}

	row := &csvRow{
		Name:     name,
		Desc:     pick(record, index, "descripcion"),
		Genero:   domain.Genero(strings.ToUpper(pick(record, index, "genero"))),
		Brand:    pick(record, index, "marca"),
		Estado:   domain.EstadoProducto(strings.ToUpper(pick(record, index, "estado"))),
		Category: pick(record, index, "categoria"),
	}
	if imageURL != "" {
		row.ImageURLs = []string{imageURL}
	}
	if name == "" {
		return row, nil
	}

	price, err := decimal.NewFromString(pick(record, index, "precio"))
	if err != nil {
		return nil, fmt.Errorf("invalid precio for %q", name)
	}
	row.Price = price
	if s := pick(record, index, "stock"); s != "" {
		row.Stock, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid stock for %q", name)
		}
	}
	return row, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
