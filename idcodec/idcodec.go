// Package idcodec converts numeric entity ids to and from the opaque tokens
// used in public URLs. The encoding is plain base64 of the decimal id: it
// hides sequential ids from casual inspection and nothing more. It is not an
// access-control mechanism and must never be treated as one.
package idcodec

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/ndnb/architecture-web-gateway/errs"
)

// Encode produces the URL token for a non-negative entity id. Deterministic
// and collision-free; Decode(Encode(id)) == id always holds.
func Encode(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// Decode reverses Encode. Tokens that arrive without base64 padding are
// accepted; anything malformed yields errs.ErrDecodeFailure, never a panic.
func Decode(token string) (int64, error) {
	if token == "" {
		return 0, errs.ErrDecodeFailure
	}

	// Some callers strip the trailing '=' from tokens; restore it.
	if rem := len(token) % 4; rem != 0 {
		token += strings.Repeat("=", 4-rem)
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, errs.ErrDecodeFailure
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id < 0 {
		return 0, errs.ErrDecodeFailure
	}
	return id, nil
}
