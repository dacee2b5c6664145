// Package stock holds the availability checks shared by the cart,
// checkout and order paths. The same predicate runs as an advisory
// check on the client and as the authoritative check under row locks
// at order placement.
package stock

import "github.com/shivarajwaddar/E-commerce-app/models"

// IsAvailable reports whether a request for requested units can be
// satisfied from productQuantity units in stock.
func IsAvailable(productQuantity, requested int) bool {
	return productQuantity > 0 && requested <= productQuantity
}

// LinesTotal computes the payable amount for a set of cart lines:
// quantity x price-at-addition, counting only lines whose product is in
// stock. Out-of-stock lines contribute nothing, matching what the
// storefront displays.
func LinesTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		if item.Product.ID != 0 && item.Product.Quantity <= 0 {
			continue
		}
		total += float64(item.Quantity) * item.PriceAtAddition
	}
	return total
}
