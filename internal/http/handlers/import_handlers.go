package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/apm-catalog/internal/auth"
	"github.com/rogerio-castellano/apm-catalog/internal/catalog"
)

var requiredColumns = []string{"id", "productname", "productcode", "price", "categoryid"}

// csvRow is one parsed data row. Err is set when a cell could not be parsed.
type csvRow struct {
	ProductRequest
	Err *ProductValidationError
}

// parseCSV reads product rows keyed by a case-insensitive header. Supplier
// ids are separated by ';'.
func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{ProductRequest: ProductRequest{
			ID:              parseInt(field(record, "id")),
			ProductName:     field(record, "productname"),
			ProductCode:     field(record, "productcode"),
			Description:     field(record, "description"),
			Price:           parseFloat(field(record, "price")),
			CategoryID:      parseInt(field(record, "categoryid")),
			QuantityInStock: parseInt(field(record, "quantityinstock")),
		}}
		ids, err := parseIDs(field(record, "supplierids"))
		if err != nil {
			row.Err = &ProductValidationError{Field: "supplierIds", Description: err.Error()}
		}
		row.SupplierIDs = ids
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// parseIDs splits a ';' separated id list. Empty parts are skipped.
func parseIDs(s string) ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return ids, fmt.Errorf("invalid supplier id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ImportProductsHandler godoc
// @Summary Add products from a CSV file
// @Description Columns: id, productName, productCode, description, price, categoryId, quantityInStock, supplierIds (';' separated)
// @Tags views
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported := 0
	errorsList := []ProductValidationError{}

	for i, row := range records {
		rowNum := i + 2 // header is row 1

		if row.Err != nil {
			errorsList = append(errorsList, ProductValidationError{Field: row.Err.Field, Description: fmt.Sprintf("row %d: %s", rowNum, row.Err.Description)})
			continue
		}

		rec := row.ProductRequest
		if errs := validateProduct(rec); len(errs) > 0 {
			for _, e := range errs {
				errorsList = append(errorsList, ProductValidationError{Field: e.Field, Description: fmt.Sprintf("row %d: %s", rowNum, e.Description)})
			}
			continue
		}

		p := rec.toModel()
		if _, err := store.AddProduct(r.Context(), &p); err != nil {
			field := ""
			if errors.Is(err, catalog.ErrCategoryNotFound) {
				field = "categoryId"
			}
			errorsList = append(errorsList, ProductValidationError{Field: field, Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}

	logger.Infof("Views: %s imported %d products, %d errors", auth.Username(r.Context()), imported, len(errorsList))
	respond(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
