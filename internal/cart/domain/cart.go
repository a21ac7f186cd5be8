package domain

import catalog "github.com/lina-design/storefront/internal/catalog/domain"

// Entry is one cart line: a product copy plus its quantity. The ledger
// invariant is that no entry ever has Quantity <= 0; UpdateQuantity
// prunes instead.
type Entry struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// UpdateQuantity applies a quantity delta for a product and returns a
// new ledger; the input is never mutated.
//
// A first add requires a positive delta. Merges keep the existing
// entry's product fields rather than re-copying from the argument, so a
// stale caller cannot overwrite what is already in the cart.
func UpdateQuantity(ledger []Entry, product catalog.Product, delta int) []Entry {
	for i, entry := range ledger {
		if entry.ID != product.ID {
			continue
		}

		newQty := entry.Quantity + delta
		if newQty <= 0 {
			return Remove(ledger, product.ID)
		}

		result := make([]Entry, len(ledger))
		copy(result, ledger)
		result[i].Quantity = newQty
		return result
	}

	if delta <= 0 {
		return copyLedger(ledger)
	}

	result := make([]Entry, 0, len(ledger)+1)
	result = append(result, ledger...)
	return append(result, Entry{Product: product, Quantity: delta})
}

// Remove drops the entry with the given product id; no-op if absent.
func Remove(ledger []Entry, id string) []Entry {
	result := make([]Entry, 0, len(ledger))
	for _, entry := range ledger {
		if entry.ID != id {
			result = append(result, entry)
		}
	}
	return result
}

// Total sums price times quantity over the ledger.
func Total(ledger []Entry) float64 {
	var total float64
	for _, entry := range ledger {
		total += entry.Price * float64(entry.Quantity)
	}
	return total
}

// Count sums quantities over the ledger (the cart badge number).
func Count(ledger []Entry) int {
	var count int
	for _, entry := range ledger {
		count += entry.Quantity
	}
	return count
}

func copyLedger(ledger []Entry) []Entry {
	result := make([]Entry, len(ledger))
	copy(result, ledger)
	return result
}
