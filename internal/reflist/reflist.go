// Package reflist maintains the ordered reference lists that link users,
// planners, and events to one another.
//
// Parent records carry their child references as ordered ID sequences:
// a user lists the planners and events it created, a planner lists the
// events attached to it plus the usernames allowed to open it. At rest
// these sequences are stored as a single comma-delimited string column,
// so this package also owns the codec between the two forms.
//
// Appends are order-preserving and duplicate-tolerant: appending an ID
// that is already present appends it again. Callers that need
// at-most-once semantics must arrange them above this layer.
package reflist

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates entries in the stored string form.
const Delimiter = ","

// AppendID returns ids with id appended at the end. The input slice is not
// modified. No deduplication is performed.
func AppendID(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

// CheckPair verifies that two parallel lists are still in step. Paired
// fields are read and written together; a length mismatch means the
// stored record has been corrupted and must not be extended further.
func CheckPair(ids []int64, titles []string) error {
	if len(ids) != len(titles) {
		return fmt.Errorf("reflist: paired lists out of step: %d ids, %d titles", len(ids), len(titles))
	}
	return nil
}

// AppendPair appends id and title to two parallel lists, keeping them the
// same length. It returns an error if the inputs are already out of step,
// since appending to mismatched lists would silently corrupt the pairing.
func AppendPair(ids []int64, titles []string, id int64, title string) ([]int64, []string, error) {
	if err := CheckPair(ids, titles); err != nil {
		return nil, nil, err
	}
	outIDs := AppendID(ids, id)
	outTitles := make([]string, 0, len(titles)+1)
	outTitles = append(outTitles, titles...)
	outTitles = append(outTitles, title)
	return outIDs, outTitles, nil
}

// EncodeIDs renders an ID sequence in its stored form. An empty sequence
// encodes to the empty string; a single ID encodes to the bare ID with no
// delimiter.
func EncodeIDs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, Delimiter)
}

// DecodeIDs parses the stored form back into an ID sequence. The empty
// string decodes to an empty sequence.
func DecodeIDs(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, Delimiter)
	ids := make([]int64, len(parts))
	for i, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("reflist: bad id %q at position %d: %w", p, i, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// EncodeNames renders a name list (usernames, planner titles) in its stored
// form, following the same empty-string convention as EncodeIDs.
func EncodeNames(names []string) string {
	return strings.Join(names, Delimiter)
}

// DecodeNames parses a stored name list. The empty string decodes to an
// empty list.
func DecodeNames(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, Delimiter)
}
