package models

// Order represents one order form session for the Vargar & Vatten board game.
// It only ever lives in memory: filled in by the customer, mailed to the
// seller, then discarded.
type Order struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Zip            string `json:"zip"`
	City           string `json:"city"`
	Copies         int    `json:"copies"`
	Comment        string `json:"comment"`
	TermsOfService bool   `json:"termsOfService"`
}

// DefaultOrder returns the initial values the form starts from and is reset to.
func DefaultOrder() Order {
	return Order{Copies: 1}
}
