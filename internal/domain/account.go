package domain

type AccountID string

// Account is a tracked feed identity. Enabled is owned by the operator
// configuration; the engine only ever flips it to false when the account
// turns out to be unresolvable.
type Account struct {
	ID      AccountID
	Enabled bool
}
