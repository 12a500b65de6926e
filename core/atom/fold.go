package atom

import (
	"golang.org/x/text/cases"

	"github.com/joshuapare/corekit/internal/fnv"
)

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// foldKey returns the form of s used for hashing and comparison, and its
// hash. ASCII strings are returned as-is and compared with equalFoldASCII;
// anything else goes through full Unicode case folding.
func foldKey(s string) (key string, hash uint64) {
	if isASCII(s) {
		return s, uint64(fnv.StringLower(s))
	}
	key = cases.Fold().String(s)
	return key, uint64(fnv.StringLower(key))
}

// equalFoldASCII compares two keys byte by byte, ignoring ASCII case.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
