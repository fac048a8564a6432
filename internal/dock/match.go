package dock

import "strings"

// Normalize trims surrounding whitespace and lowercases a user-supplied
// identifier.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Match returns the first record, in document order, whose lowercased
// mac_address equals id. id must already be normalized. An empty id never
// matches. ErrNotFound is returned when nothing matches.
func Match(doc *Document, id string) (Record, error) {
	var (
		found Record
		ok    bool
	)
	if id == "" {
		return Record{}, ErrNotFound
	}
	doc.Each(func(_ string, rec Record) bool {
		if strings.ToLower(rec.MACAddress) == id {
			found, ok = rec, true
			return false
		}
		return true
	})
	if !ok {
		return Record{}, ErrNotFound
	}
	return found, nil
}

// Identifiers returns the lowercased mac_address of every record in document
// order, duplicates included. Records without an address are skipped. The
// result is never nil.
func Identifiers(doc *Document) []string {
	ids := make([]string, 0, doc.Len())
	doc.Each(func(_ string, rec Record) bool {
		if rec.MACAddress != "" {
			ids = append(ids, strings.ToLower(rec.MACAddress))
		}
		return true
	})
	return ids
}
