// Package links attaches navigation relations to product representations.
// Nothing here touches persisted state.
package links

import (
	"net/url"
	"strings"

	"apiproducts/internal/models"
)

// Relation names.
const (
	RelSelf         = "self"
	RelProductsList = "Products List"
	RelSimilarNames = "Products List with similar name's products"
)

// Builder resolves endpoint hrefs against a base URL such as "http://localhost:8080".
type Builder struct {
	baseURL string
}

// NewBuilder creates a Builder rooted at baseURL.
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// ProductsHref is the list endpoint.
func (b Builder) ProductsHref() string {
	return b.baseURL + "/products"
}

// ProductHref is the detail endpoint of one product.
func (b Builder) ProductHref(id string) string {
	return b.baseURL + "/products/" + url.PathEscape(id)
}

// SearchHref is the name search endpoint for fragment.
func (b Builder) SearchHref(fragment string) string {
	return b.baseURL + "/products/byName/?" + url.Values{"name": {fragment}}.Encode()
}

// Detail decorates a single product with a link back to the list.
func (b Builder) Detail(p models.Product) models.ProductResource {
	return models.ProductResource{
		Product: p,
		Links:   []models.Link{{Rel: RelProductsList, Href: b.ProductsHref()}},
	}
}

// List decorates every product with a self link to its detail endpoint.
func (b Builder) List(products []models.Product) []models.ProductResource {
	resources := make([]models.ProductResource, 0, len(products))
	for _, p := range products {
		resources = append(resources, models.ProductResource{
			Product: p,
			Links:   []models.Link{{Rel: RelSelf, Href: b.ProductHref(p.ID)}},
		})
	}
	return resources
}

// Search decorates every match with a link back to the same search query.
func (b Builder) Search(products []models.Product, fragment string) []models.ProductResource {
	href := b.SearchHref(fragment)
	resources := make([]models.ProductResource, 0, len(products))
	for _, p := range products {
		resources = append(resources, models.ProductResource{
			Product: p,
			Links:   []models.Link{{Rel: RelSimilarNames, Href: href}},
		})
	}
	return resources
}
