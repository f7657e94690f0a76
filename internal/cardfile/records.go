// Package cardfile reads and writes deck lists.
//
// A deck list is a set of card records keyed by name. The tab-separated
// format has a header line followed by one line per card with the columns
// name, number, type, cost, power, toughness and rules. A YAML variant with
// the same fields is also accepted.
package cardfile

import (
	"iter"
	"strconv"
	"strings"
)

// Field is a column that is an integer when it parses as one and raw text
// otherwise. Parse failures are not errors.
type Field struct {
	Raw   string
	Value int
	IsInt bool
}

// ParseField trims s and parses it as a base-10 integer when possible.
func ParseField(s string) Field {
	s = strings.TrimSpace(s)
	f := Field{Raw: s}
	if v, err := strconv.Atoi(s); err == nil {
		f.Value = v
		f.IsInt = true
	}
	return f
}

// IntField returns a Field holding v.
func IntField(v int) Field {
	return Field{Raw: strconv.Itoa(v), Value: v, IsInt: true}
}

// Int returns the parsed value and whether the field was an integer.
func (f Field) Int() (int, bool) {
	return f.Value, f.IsInt
}

func (f Field) String() string {
	return f.Raw
}

// CostCounts maps a color string to an amount, remembering the order in
// which colors were first seen.
type CostCounts struct {
	keys   []string
	counts map[string]int
}

// Add increments color by n, appending it if it is new.
func (cc *CostCounts) Add(color string, n int) {
	if cc.counts == nil {
		cc.counts = make(map[string]int)
	}
	if _, ok := cc.counts[color]; !ok {
		cc.keys = append(cc.keys, color)
	}
	cc.counts[color] += n
}

// Set replaces the amount for color, appending it if it is new.
func (cc *CostCounts) Set(color string, n int) {
	if cc.counts == nil {
		cc.counts = make(map[string]int)
	}
	if _, ok := cc.counts[color]; !ok {
		cc.keys = append(cc.keys, color)
	}
	cc.counts[color] = n
}

// Get returns the amount for color.
func (cc CostCounts) Get(color string) (int, bool) {
	n, ok := cc.counts[color]
	return n, ok
}

// Len returns the number of distinct colors.
func (cc CostCounts) Len() int {
	return len(cc.keys)
}

// All yields the color/amount pairs in first-seen order.
func (cc CostCounts) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, k := range cc.keys {
			if !yield(k, cc.counts[k]) {
				return
			}
		}
	}
}

// Map returns the counts as a plain map.
func (cc CostCounts) Map() map[string]int {
	m := make(map[string]int, len(cc.keys))
	for k, v := range cc.counts {
		m[k] = v
	}
	return m
}

// CardRecord holds the attributes of one deck-list entry.
type CardRecord struct {
	Name      string
	Number    Field
	Type      string
	Cost      CostCounts
	CostText  string
	Power     Field
	Toughness Field
	Rules     string
}

// Records is a name-keyed, insertion-ordered collection of card records.
// Setting an existing name replaces the record but keeps its position.
type Records struct {
	order  []string
	byName map[string]CardRecord
}

// NewRecords returns an empty collection.
func NewRecords() Records {
	return Records{byName: make(map[string]CardRecord)}
}

// Set stores rec under rec.Name.
func (r *Records) Set(rec CardRecord) {
	if r.byName == nil {
		r.byName = make(map[string]CardRecord)
	}
	if _, ok := r.byName[rec.Name]; !ok {
		r.order = append(r.order, rec.Name)
	}
	r.byName[rec.Name] = rec
}

// Get returns the record stored under name.
func (r Records) Get(name string) (CardRecord, bool) {
	rec, ok := r.byName[name]
	return rec, ok
}

// Len returns the number of records.
func (r Records) Len() int {
	return len(r.order)
}

// Names returns the record names in insertion order.
func (r Records) Names() []string {
	return append([]string(nil), r.order...)
}

// All yields the records in insertion order.
func (r Records) All() iter.Seq[CardRecord] {
	return func(yield func(CardRecord) bool) {
		for _, name := range r.order {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}
