package coredump

// IsValid reports whether rec carries a genuine capture rather than
// uninitialized RAM. It is the two-key test from spec.md section 4.3: a
// single sentinel word has a false-positive probability of roughly 2^-32
// against random cold-boot RAM; requiring anti_key to be its bitwise
// complement drives that down to roughly 2^-64 and additionally rejects
// the common degenerate uninitialized patterns (all-zero, all-one,
// repeated word) that would otherwise alias a real sentinel.
//
// IsValid has no side effects and runs in constant time.
func IsValid(rec *DumpRecord) bool {
	return rec.Key == KeySentinel && rec.AntiKey == ^KeySentinel
}

// MarkValid writes both key fields, announcing "a fault occurred" to any
// post-reboot reader. It does not touch any other field.
func MarkValid(rec *DumpRecord) {
	rec.Key = KeySentinel
	rec.AntiKey = ^KeySentinel
}

// ClearValidity zeroes both key fields. Every other field is left exactly
// as it was -- reading them after ClearValidity, without an intervening
// Capture, is not defined by this package's contract.
func ClearValidity(rec *DumpRecord) {
	rec.Key = 0
	rec.AntiKey = 0
}
