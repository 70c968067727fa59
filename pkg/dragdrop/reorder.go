package dragdrop

import "github.com/goliatone/go-billingforms/pkg/reorder"

// ReorderOnDrop returns a drop callback that replaces *items with the list
// reordered from source to target. Out-of-range indices leave *items as is.
func ReorderOnDrop[T any](items *[]T) func(source, target int) {
	return func(source, target int) {
		if items == nil {
			return
		}
		next, err := reorder.Move(*items, source, target)
		if err != nil {
			return
		}
		*items = next
	}
}
