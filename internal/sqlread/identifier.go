package sqlread

import (
	"fmt"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// TableName is a table identifier that has passed the allowlist gate.
// Constructing one through SanitizeTableName is the only way to obtain a
// value usable for identifier interpolation; identifiers cannot be bound
// as query parameters, so the allowlist is the defense.
type TableName struct {
	name string
}

// SanitizeTableName accepts name iff it is non-empty and every character
// is in [A-Za-z0-9_]. Any other character could alter the structure of a
// dynamically interpolated identifier, so this is an allowlist, not a
// denylist. No length cap beyond what the engine enforces.
func SanitizeTableName(name string) (TableName, error) {
	if name == "" {
		return TableName{}, fmt.Errorf("empty table name: %w", types.ErrInvalidTableName)
	}
	for i := 0; i < len(name); i++ {
		if !isIdentByte(name[i]) {
			return TableName{}, fmt.Errorf(
				"table name %q: character %q outside [A-Za-z0-9_]: %w",
				name, name[i], types.ErrInvalidTableName)
		}
	}
	return TableName{name: name}, nil
}

// String returns the sanitized identifier.
func (t TableName) String() string { return t.name }

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
