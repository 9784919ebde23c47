package validation

import (
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// digits matches clean unsigned integer strings: no sign, no dot, no spaces.
var digits = regexp.MustCompile(`^[0-9]+$`)

// currency matches a non-negative amount with optional thousands separators and
// at most two decimals, e.g. "9.99", "1,200", "1,200.50". Leading zeros are
// rejected except for the bare "0".
var currency = regexp.MustCompile(`^(0|[1-9][0-9]*|[1-9][0-9]{0,2}(,[0-9]{3})+)(\.[0-9]{1,2})?$`)

// htmlEscaper encodes the characters that would otherwise be interpreted as
// markup when a product field is rendered in a page.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// ValidateID normalizes a raw route parameter into a positive integer id.
// Anything that is not a clean positive integer string (zero, negatives,
// floats, signs, whitespace, empty) fails.
func ValidateID(raw string) (int, bool) {
	if !digits.MatchString(raw) {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ValidateNewProduct gates a create request and shapes it into a Product ready
// for insert: numeric fields coerced, text fields HTML-escaped, id forced to 0
// so storage assigns it. Returns nil on any failure; the failing field is only
// reported on the server log, never to the caller.
func ValidateNewProduct(form models.NewProductForm) *models.Product {
	catID, ok := toNonNegativeInt(form.CategoryID)
	if !ok {
		log.Printf("validateNewProduct: invalid category_id %v", form.CategoryID)
		return nil
	}
	if form.ProductName == "" {
		log.Print("validateNewProduct: product_name is required")
		return nil
	}
	if form.ProductDescription == "" {
		log.Print("validateNewProduct: product_description is required")
		return nil
	}
	stock, ok := toNonNegativeInt(form.ProductStock)
	if !ok {
		log.Printf("validateNewProduct: invalid product_stock %v", form.ProductStock)
		return nil
	}
	price, ok := toPrice(form.ProductPrice)
	if !ok {
		log.Printf("validateNewProduct: invalid product_price %v", form.ProductPrice)
		return nil
	}

	product := &models.Product{
		ID:                 0,
		CategoryID:         catID,
		ProductName:        EscapeHTML(form.ProductName),
		ProductDescription: EscapeHTML(form.ProductDescription),
		ProductStock:       stock,
		ProductPrice:       price,
	}

	if err := validate.Struct(product); err != nil {
		log.Printf("validateNewProduct: %v", err)
		return nil
	}
	return product
}

// EscapeHTML encodes &, <, >, " and ' into their character entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// toNonNegativeInt coerces a JSON number or numeric string into a non-negative
// integer. Fractional values are rejected in either representation.
func toNonNegativeInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return n, true
	case string:
		if !digits.MatchString(n) {
			return 0, false
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// toPrice coerces a JSON number or string into a non-negative currency amount.
// Strings may carry thousands separators; numbers must not have more than two
// decimals.
func toPrice(v any) (float64, bool) {
	switch p := v.(type) {
	case float64:
		if !currency.MatchString(strconv.FormatFloat(p, 'f', -1, 64)) {
			return 0, false
		}
		return p, true
	case int:
		if p < 0 {
			return 0, false
		}
		return float64(p), true
	case string:
		if !currency.MatchString(p) {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(p, ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
