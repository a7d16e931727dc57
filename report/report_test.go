package report

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	var c Collector
	c.Warn(Warning{Code: UnknownSymmetry, Kind: "elastic", Label: "foo", Message: "falling back to iso"})
	c.Warn(Warning{Code: AsymmetricInput, Message: "symmetrizing"})

	assert.True(t, c.Has(UnknownSymmetry))
	assert.True(t, c.Has(AsymmetricInput))
	assert.False(t, c.Has(MissingForm))
	assert.Len(t, c.Warnings(), 2)

	c.Reset()
	assert.Empty(t, c.Warnings())
}

func TestCollectorConcurrent(t *testing.T) {
	var (
		c  Collector
		wg sync.WaitGroup
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Warn(Warning{Code: ClassDefaulted})
		}()
	}
	wg.Wait()
	assert.Len(t, c.Warnings(), 16)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Warn(Warning{Code: MissingSymmetry, Kind: "piezoelectric", Label: "-43m", Message: "no symmetry given"})
	out := buf.String()
	assert.Contains(t, out, "tensym: ")
	assert.Contains(t, out, "MissingSymmetry [piezoelectric] -43m: no symmetry given")
}

func TestNew(t *testing.T) {
	assert.Equal(t, Discard, New(false))
	_, ok := New(true).(*Logger)
	assert.True(t, ok)
	assert.Equal(t, Discard, Or(nil))
}
