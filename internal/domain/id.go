package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ID prefixes by entity kind. IDs are opaque; the prefix only aids debugging.
const (
	IDPrefixCompany = "c"
	IDPrefixUser    = "u"
	IDPrefixMember  = "m"
	IDPrefixTask    = "t"
)

// NewID generates a prefixed opaque identifier, e.g. "t_9f6c2a81".
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:8]
}
