package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bucketAt returns a bucket of the given capacity holding level liters
func bucketAt(capacity, level int) *Bucket {
	b := NewBucket(capacity)
	b.current = level
	return b
}

func TestNewBucketStartsEmpty(t *testing.T) {
	for _, c := range Capacities {
		b := NewBucket(c)
		assert.Equal(t, c, b.Capacity())
		assert.Equal(t, 0, b.Current())
		assert.True(t, b.IsEmpty())
	}
}

func TestNewBucketRejectsNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { NewBucket(0) })
	assert.Panics(t, func() { NewBucket(-3) })
}

func TestFillAndEmpty(t *testing.T) {
	for _, c := range Capacities {
		for level := 0; level <= c; level++ {
			b := bucketAt(c, level)
			b.Fill()
			assert.Equal(t, c, b.Current(), "fill %d from %d", c, level)
			assert.True(t, b.Full())

			b = bucketAt(c, level)
			b.Empty()
			assert.Equal(t, 0, b.Current(), "empty %d from %d", c, level)
		}
	}
}

func TestPourIntoConservesWaterForEveryState(t *testing.T) {
	for _, ca := range Capacities {
		for _, cb := range Capacities {
			for la := 0; la <= ca; la++ {
				for lb := 0; lb <= cb; lb++ {
					a, b := bucketAt(ca, la), bucketAt(cb, lb)
					moved := a.PourInto(b)

					require.Equal(t, la+lb, a.Current()+b.Current(), "pour %v into %v", ca, cb)
					require.GreaterOrEqual(t, a.Current(), 0)
					require.LessOrEqual(t, b.Current(), b.Capacity())
					require.Equal(t, la-a.Current(), moved)
					require.True(t, a.IsEmpty() || b.Full(), "pour stops only when source is empty or target full")
				}
			}
		}
	}
}

func TestPourIntoNoOps(t *testing.T) {
	tests := []struct {
		name     string
		src, dst *Bucket
		wantSrc  int
		wantDst  int
	}{
		{"empty source", bucketAt(8, 0), bucketAt(5, 2), 0, 2},
		{"full target", bucketAt(8, 6), bucketAt(3, 3), 6, 3},
		{"empty into full", bucketAt(5, 0), bucketAt(3, 3), 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, tt.src.PourInto(tt.dst))
			assert.Equal(t, tt.wantSrc, tt.src.Current())
			assert.Equal(t, tt.wantDst, tt.dst.Current())
		})
	}
}

func TestPourIntoSelfLeavesLevelUnchanged(t *testing.T) {
	for _, c := range Capacities {
		for level := 0; level <= c; level++ {
			b := bucketAt(c, level)
			assert.Equal(t, 0, b.PourInto(b))
			assert.Equal(t, level, b.Current())
		}
	}
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "3/5L", bucketAt(5, 3).String())
	assert.Equal(t, "0/8L", NewBucket(8).String())
}
