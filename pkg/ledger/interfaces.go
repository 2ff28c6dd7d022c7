//go:generate mockgen -destination=mocks/ledger.go . Ledger
package ledger

// Ledger is the persistent set of fingerprints of previously downloaded
// records. Membership is monotonic: once a fingerprint is marked it stays
// marked until an explicit Clear.
type Ledger interface {
	// IsDuplicate reports whether the fingerprint has been downloaded before.
	IsDuplicate(fingerprint string) bool

	// MarkDownloaded inserts the fingerprint and persists the ledger.
	// Inserting an already-known fingerprint is a no-op.
	MarkDownloaded(fingerprint string) error

	// Clear removes all fingerprints and persists the empty ledger.
	Clear() error

	// Count returns the number of known fingerprints.
	Count() int
}
