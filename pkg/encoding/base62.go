package encoding

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base     = int64(62)
	maxLen   = 11 // len(Base62Encode(math.MaxInt64))
)

var (
	ErrInvalidBase62 = errors.New("invalid character in base62 string")
	ErrBase62Range   = errors.New("base62 value overflows int64")
)

// Base62Encode renders a non-negative id as a short Base62 label.
// Negative ids are encoded by magnitude.
func Base62Encode(id int64) string {
	if id == 0 {
		return alphabet[:1]
	}

	var chars [maxLen]byte
	k := maxLen
	n := uint64(id)
	if id < 0 {
		n = uint64(-(id + 1)) + 1
	}

	for n > 0 {
		k--
		chars[k] = alphabet[n%uint64(base)]
		n /= uint64(base)
	}

	return string(chars[k:])
}

// Base62Decode parses a label produced by Base62Encode.
func Base62Decode(s string) (int64, error) {
	var id int64
	for _, char := range s {
		index := strings.IndexRune(alphabet, char)
		if index == -1 {
			return 0, errors.Wrapf(ErrInvalidBase62, "%q", char)
		}
		if id > (math.MaxInt64-int64(index))/base {
			return 0, errors.Wrapf(ErrBase62Range, "%q", s)
		}
		id = id*base + int64(index)
	}
	return id, nil
}
