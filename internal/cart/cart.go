// Package cart holds the pending-order state kept on the client side before
// checkout. State transitions are pure functions over State; persistence goes
// through the Store interface so the backing mechanism stays swappable.
package cart

type Item struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type State struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

func Empty() State {
	return State{Items: []Item{}}
}

// Add increments the quantity of an item already in the cart, or appends it
// with quantity 1.
func Add(s State, item Item) State {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, Item{ID: item.ID, Name: item.Name, Price: item.Price, Quantity: 1})
	}
	return State{Items: items, Total: computeTotal(items)}
}

// Remove decrements the item's quantity; an entry reaching zero is dropped,
// never kept at quantity 0.
func Remove(s State, itemID uint) State {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ID == itemID {
			if it.Quantity <= 1 {
				continue
			}
			it.Quantity--
		}
		items = append(items, it)
	}
	return State{Items: items, Total: computeTotal(items)}
}

// SetQuantity sets the item's quantity directly; anything below 1 removes the
// entry.
func SetQuantity(s State, itemID uint, quantity int) State {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ID == itemID {
			if quantity < 1 {
				continue
			}
			it.Quantity = quantity
		}
		items = append(items, it)
	}
	return State{Items: items, Total: computeTotal(items)}
}

func Clear(State) State {
	return Empty()
}

// Total is always derived from the items, never set independently.
func computeTotal(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
