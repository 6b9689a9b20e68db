package domain

import "rehusa/errors"

// State is the lifecycle stage of a product listing.
type State int

const (
	ForSale State = iota
	Reserved
	Sold
	Shipped
	InTransit
	InReturn
	Returned
	Withdrawn
)

var stateNames = map[State]string{
	ForSale:   "FOR_SALE",
	Reserved:  "RESERVED",
	Sold:      "SOLD",
	Shipped:   "SHIPPED",
	InTransit: "IN_TRANSIT",
	InReturn:  "IN_RETURN",
	Returned:  "RETURNED",
	Withdrawn: "WITHDRAWN",
}

var statesByName = func() map[string]State {
	byName := make(map[string]State, len(stateNames))
	for state, name := range stateNames {
		byName[name] = state
	}
	return byName
}()

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseState resolves the textual representation used on the wire.
func ParseState(name string) (State, error) {
	state, ok := statesByName[name]
	if !ok {
		return 0, errors.Invalidf("unknown product state %q", name)
	}
	return state, nil
}
