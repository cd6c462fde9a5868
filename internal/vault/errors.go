package vault

import "errors"

var (
	// ErrDecryptionFailed covers both a wrong master key and a tampered
	// blob. The two cases are intentionally indistinguishable so the error
	// text never hints whether a guessed key was close.
	ErrDecryptionFailed = errors.New("cannot decrypt vault: wrong master key or corrupted file")

	// ErrCorruptVault means the blob structure or the decrypted payload is
	// not a vault we understand (bad magic, unknown version, broken JSON).
	ErrCorruptVault = errors.New("vault file is corrupted")

	ErrDuplicateAlias = errors.New("alias already exists")
	ErrAliasNotFound  = errors.New("alias not found")

	// ErrInvalidEntry is returned when an entry fails construction-time
	// validation (empty alias or secret, digits/period out of bounds).
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrCounterExhausted is returned when an HOTP counter reaches the
	// 64-bit boundary. The counter never silently wraps.
	ErrCounterExhausted = errors.New("hotp counter exhausted")

	// ErrImportConflict aborts an import under ConflictFail; the store is
	// left untouched.
	ErrImportConflict = errors.New("import conflict")
)
