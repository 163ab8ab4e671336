package coupon

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// codeAlphabet is Crockford base32: no I, L, O, U, so codes survive being
// read aloud at a counter.
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const randomSuffixLen = 8 // 8 chars * 5 bits = 40 bits of entropy

// Code is the human-presentable identifier printed on a coupon.
type Code string

func (c Code) String() string {
	return string(c)
}

// GenerateCode mints a code of the form CPN-<offer prefix>-<ns timestamp>-<random>.
// The offer prefix and nanosecond timestamp keep codes traceable; the random
// suffix makes collisions negligible even for coupons minted in the same
// nanosecond.
func GenerateCode(offerID uuid.UUID, now time.Time) (Code, error) {
	suffix := make([]byte, randomSuffixLen)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to read random suffix: %w", err)
	}
	for i, b := range suffix {
		suffix[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	prefix := strings.ToUpper(strings.ReplaceAll(offerID.String(), "-", "")[:8])
	ts := strings.ToUpper(strconv.FormatInt(now.UnixNano(), 36))

	return Code(fmt.Sprintf("CPN-%s-%s-%s", prefix, ts, suffix)), nil
}
