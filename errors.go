package expense

import "errors"

// Sentinel errors returned by Ledger operations and the snapshot codec.
// Callers discriminate with errors.Is; the rendering layer decides how each
// kind is surfaced to the user.
var (
	// ErrNotFound reports that a referenced account, transaction or category
	// id does not exist in the ledger.
	ErrNotFound = errors.New("not found")

	// ErrReferentialIntegrity reports an attempt to delete an account that is
	// still referenced by transactions (as source or transfer target).
	ErrReferentialIntegrity = errors.New("account is referenced by transactions")

	// ErrUnknownAccount reports a transaction referencing a non-existent
	// account id. The whole operation fails and no balance is touched.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrInvalidImportPayload reports an import document missing the required
	// top-level collections. The prior state is retained unchanged.
	ErrInvalidImportPayload = errors.New("invalid import payload")

	// ErrMalformedSnapshot reports a persisted snapshot that cannot be
	// parsed. The raw file is never modified by the loader in that case.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
