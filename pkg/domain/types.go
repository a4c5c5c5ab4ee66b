// Package domain defines the QuickClick console domain model shared by the
// console client and the MCP tool layer. The types here are the shapes tools
// return to callers; upstream wire shapes stay inside the console package.
package domain

// Settings is the account-level settings record exposed by the console.
type Settings struct {
	Name            string `json:"name"`
	ToGoWaitingTime string `json:"to_go_waiting_time"`
}

// DayOff is a calendar exception record with server-assigned identity.
type DayOff struct {
	ID          int    `json:"id"`
	SpecialDate string `json:"specialDate"`
}

// Product is the canonical product shape. Price carries the upstream integer
// minor-unit amount unchanged.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId"`
	IsAvailable bool   `json:"isAvailable"`
}

// ProductCreate holds the caller-supplied fields for a new product. Fields the
// upstream requires but the domain does not expose are filled with fixed
// defaults by the console client.
type ProductCreate struct {
	Name        string
	Price       int
	Description string
	IsAvailable bool
	CategoryID  int
}

// ProductUpdate is a partial update. Nil pointers mean "keep the current
// value"; the console client reads the authoritative record first and carries
// unset fields forward.
type ProductUpdate struct {
	ID          int
	Name        *string
	Price       *int
	Description *string
	IsAvailable *bool
}
