package models

// Link is a named navigation relation attached to a response.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// ProductResource is the response representation of a Product with its links.
type ProductResource struct {
	Product
	Links []Link `json:"links"`
}

// NewProductResource wraps p with an empty link list.
func NewProductResource(p Product) ProductResource {
	return ProductResource{Product: p, Links: []Link{}}
}
