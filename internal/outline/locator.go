package outline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const nodeIDPrefix = "heading-"

var (
	// ErrInvalidIdentifier reports a navigation id that does not match the
	// heading-{position} pattern.
	ErrInvalidIdentifier = errors.New("invalid node identifier")

	// ErrPositionOutOfRange reports a navigation target that is not a valid
	// paragraph index in the document snapshot. The document may have
	// changed since extraction; detecting that staleness is the caller's
	// responsibility.
	ErrPositionOutOfRange = errors.New("position out of range")
)

// Navigator selects a paragraph in the originating document. It is the one
// operation the document collaborator exposes to this package.
type Navigator interface {
	SelectParagraph(position int) error
}

// NodeID encodes a document position as an opaque navigation id. Ids are
// unique within one extraction because positions are.
func NodeID(position int) string {
	return fmt.Sprintf("%s%d", nodeIDPrefix, position)
}

// ParsePosition decodes an id produced by NodeID back to its document
// position. Any string outside the exact heading-{position} pattern fails
// with ErrInvalidIdentifier.
func ParsePosition(id string) (int, error) {
	digits, ok := strings.CutPrefix(id, nodeIDPrefix)
	if !ok || !canonicalDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	pos, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return pos, nil
}

// canonicalDigits accepts only what NodeID emits: a non-negative decimal
// with no sign, no leading zeros (except "0" itself).
func canonicalDigits(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NavigateToNode decodes id and asks nav to select the paragraph it points
// at. It fails with ErrInvalidIdentifier for malformed ids and passes
// through the navigator's error (ErrPositionOutOfRange for stale targets).
func NavigateToNode(id string, nav Navigator) error {
	pos, err := ParsePosition(id)
	if err != nil {
		return err
	}
	return nav.SelectParagraph(pos)
}
