package browse

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tamonkoch/drink-shop-backend/internal/catalog"
)

// Sort options supported by the product list view.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// Params is one filter/sort parameter combination. The zero value means
// "everything, catalog order".
type Params struct {
	Query      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Categories []string
	Sort       string
}

// Apply runs the filter pipeline over products and returns a new slice.
// It is pure: the input slice is never modified and the result order is
// deterministic (stable sorts, catalog order preserved where unspecified).
func Apply(products []catalog.Product, p Params) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(p.Query))
	cats := make(map[string]struct{}, len(p.Categories))
	for _, c := range p.Categories {
		cats[strings.ToLower(c)] = struct{}{}
	}

	for _, prod := range products {
		if query != "" && !matchesQuery(prod, query) {
			continue
		}
		price := prod.EffectivePrice()
		if p.MinPrice != nil && price.LessThan(*p.MinPrice) {
			continue
		}
		if p.MaxPrice != nil && price.GreaterThan(*p.MaxPrice) {
			continue
		}
		if len(cats) > 0 {
			if _, ok := cats[strings.ToLower(prod.Category)]; !ok {
				continue
			}
		}
		out = append(out, prod)
	}

	switch p.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().LessThan(out[j].EffectivePrice())
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().GreaterThan(out[j].EffectivePrice())
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			// ties broken by review count, otherwise keep prior order
			return len(out[i].Reviews) > len(out[j].Reviews)
		})
	}
	// SortFeatured and unknown values keep catalog insertion order

	return out
}

func matchesQuery(p catalog.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

// key builds the cache key. It must capture every input exactly: a missed
// field here would let a new parameter combination hit a stale entry.
func (p Params) key() string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strings.ToLower(strings.TrimSpace(p.Query)))
	b.WriteString("|min=")
	if p.MinPrice != nil {
		b.WriteString(p.MinPrice.String())
	}
	b.WriteString("|max=")
	if p.MaxPrice != nil {
		b.WriteString(p.MaxPrice.String())
	}
	b.WriteString("|cats=")
	cats := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		cats = append(cats, strings.ToLower(c))
	}
	sort.Strings(cats)
	b.WriteString(strings.Join(cats, ","))
	b.WriteString("|sort=")
	b.WriteString(p.Sort)
	return b.String()
}
