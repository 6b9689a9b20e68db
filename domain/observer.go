//go:generate go run go.uber.org/mock/mockgen -source=observer.go -destination=../mocks/mock_observer.go -package=mocks
package domain

// PriceObserver receives synchronous notifications when the price of a
// product it is subscribed to actually changes. Delivery order across
// observers is unspecified; callers must not depend on it.
type PriceObserver interface {
	PriceChanged(product *Product, oldPrice, newPrice float64)
}
