package model

import (
	"strconv"
	"strings"
)

// Target is the volume a bucket must hold to solve the puzzle
const Target = 4

// Capacities lists the bucket sizes, largest first
var Capacities = []int{8, 5, 3}

// Set owns the three puzzle buckets
type Set struct {
	buckets []*Bucket
	byID    map[string]*Bucket
}

// NewSet creates the 8, 5 and 3 liter buckets, all empty
func NewSet() *Set {
	s := &Set{byID: make(map[string]*Bucket, len(Capacities))}
	for _, c := range Capacities {
		b := NewBucket(c)
		s.buckets = append(s.buckets, b)
		s.byID[strconv.Itoa(c)] = b
	}
	return s
}

// Buckets returns the buckets in display order (largest first)
func (s *Set) Buckets() []*Bucket {
	return s.buckets
}

// Lookup returns the bucket for an identifier ("8", "5" or "3")
func (s *Set) Lookup(id string) (*Bucket, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// IDs returns the bucket identifiers in display order
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.buckets))
	for _, b := range s.buckets {
		ids = append(ids, strconv.Itoa(b.Capacity()))
	}
	return ids
}

// Solved reports whether any bucket holds exactly Target liters
func (s *Set) Solved() bool {
	for _, b := range s.buckets {
		if b.Current() == Target {
			return true
		}
	}
	return false
}

// Total returns the water held across all buckets
func (s *Set) Total() int {
	total := 0
	for _, b := range s.buckets {
		total += b.Current()
	}
	return total
}

// String returns the levels of every bucket, e.g. "8:3/8L 5:5/5L 3:0/3L"
func (s *Set) String() string {
	parts := make([]string, 0, len(s.buckets))
	for _, b := range s.buckets {
		parts = append(parts, strconv.Itoa(b.Capacity())+":"+b.String())
	}
	return strings.Join(parts, " ")
}
