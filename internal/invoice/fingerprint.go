package invoice

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint derives the duplicate-detection key for a record: the
// identity fields joined with '-' in the given order, hashed with MD5 to
// a hex digest. This is a content fingerprint, not a security mechanism;
// MD5 keeps digests stable and cheap, and collisions are out of scope.
func Fingerprint(fields ...string) string {
	raw := strings.Join(fields, "-")
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
