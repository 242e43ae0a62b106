package model

import "fmt"

// Bucket is a vessel with a fixed capacity and a current water level in liters.
type Bucket struct {
	capacity int
	current  int
}

// NewBucket creates an empty bucket. Capacity must be positive.
func NewBucket(capacity int) *Bucket {
	if capacity <= 0 {
		panic(fmt.Sprintf("model: bucket capacity must be positive, got %d", capacity))
	}
	return &Bucket{capacity: capacity}
}

// Capacity returns the maximum volume the bucket holds
func (b *Bucket) Capacity() int {
	return b.capacity
}

// Current returns the volume currently in the bucket
func (b *Bucket) Current() int {
	return b.current
}

// Room returns how much more water fits before the bucket is full
func (b *Bucket) Room() int {
	return b.capacity - b.current
}

func (b *Bucket) Full() bool {
	return b.current == b.capacity
}

func (b *Bucket) IsEmpty() bool {
	return b.current == 0
}

// Fill fills the bucket to capacity
func (b *Bucket) Fill() {
	b.current = b.capacity
}

// Empty pours the bucket out
func (b *Bucket) Empty() {
	b.current = 0
}

// PourInto transfers as much water as fits from b into other and returns the
// amount moved. Pouring a bucket into itself moves nothing.
func (b *Bucket) PourInto(other *Bucket) int {
	if b == other || b.IsEmpty() || other.Full() {
		return 0
	}
	amount := min(b.current, other.Room())
	b.current -= amount
	other.current += amount
	return amount
}

// String returns the bucket level, e.g. "3/5L"
func (b *Bucket) String() string {
	return fmt.Sprintf("%d/%dL", b.current, b.capacity)
}
