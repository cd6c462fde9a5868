// Package vault implements the encrypted store of OTP entries: the entry
// model, the in-memory collection with its uniqueness invariants, the
// sealed on-disk format, and the plaintext import/export merger.
//
// The whole store is the unit of encryption and persistence. Callers are
// expected to pair every mutation with Seal and an atomic file replace; a
// failed operation must never reach the disk. Concurrent writers from
// separate processes are not coordinated here; the design assumes one
// process owns the vault file for the duration of a command.
package vault
