package entity

// Operator is an authenticated caller of the operator API.
type Operator struct {
	Name string `json:"name"`
}
