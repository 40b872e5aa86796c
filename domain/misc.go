package domain

import "strings"

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Table is a mongo collection name
type Table string

const (
	TableListings Table = "listings"
)

// Address is a wallet address used as an opaque caller identity.
// It is stored and compared lowercase.
type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}
