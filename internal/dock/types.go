// Package dock provides the battery dock device model, an HTTP client for the
// dock's status endpoint, identifier matching and cell statistics.
package dock

import (
	"context"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// State is the dock-reported state of a record. Only StateNoBattery carries
// meaning here; every other value means a battery is present.
type State string

// StateNoBattery is reported when the dock slot is empty.
const StateNoBattery State = "NO_BATTERY"

// Record is a single dock entry of the status document.
type Record struct {
	MACAddress    string `json:"mac_address"`
	State         State  `json:"state"`
	CellVoltageMV []int  `json:"cell_voltage_mv"`
}

// HasBattery reports whether the dock holds a battery.
func (r Record) HasBattery() bool {
	return r.State != StateNoBattery
}

// Document is the status document returned by the dock: opaque record keys
// mapped to records. Records keep the order in which they appeared in the
// response body.
type Document struct {
	records *orderedmap.OrderedMap[string, Record]
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{records: orderedmap.New[string, Record]()}
}

// Set adds or replaces the record stored under key. A replaced key keeps its
// original position.
func (d *Document) Set(key string, rec Record) {
	if d.records == nil {
		d.records = orderedmap.New[string, Record]()
	}
	d.records.Set(key, rec)
}

// Get returns the record stored under key.
func (d *Document) Get(key string) (Record, bool) {
	if d == nil || d.records == nil {
		return Record{}, false
	}
	return d.records.Get(key)
}

// Len returns the number of records. A nil Document is empty.
func (d *Document) Len() int {
	if d == nil || d.records == nil {
		return 0
	}
	return d.records.Len()
}

// Each calls fn for every record in document order until fn returns false.
func (d *Document) Each(fn func(key string, rec Record) bool) {
	if d == nil || d.records == nil {
		return
	}
	for pair := d.records.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// UnmarshalJSON decodes a JSON object into the document, preserving key order.
func (d *Document) UnmarshalJSON(data []byte) error {
	records := orderedmap.New[string, Record]()
	if err := json.Unmarshal(data, records); err != nil {
		return err
	}
	d.records = records
	return nil
}

// MarshalJSON encodes the document as a JSON object in document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil || d.records == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.records)
}

// StatusFetcher retrieves the current status document from a dock.
type StatusFetcher interface {
	Status(ctx context.Context) (*Document, error)
}
