package textcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns the NFC form of s. Already-composed input is returned
// without allocation.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
