// Package otp implements the HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password algorithms. All functions are pure: identical inputs always
// produce identical codes, and nothing here reads the clock or touches
// persistent state.
package otp
