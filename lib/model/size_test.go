package model

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
)

func TestSize(t *testing.T) {
	testgroup.RunInParallel(t, &SizeTests{})
}

type SizeTests struct {
}

var sizeSamples = []Size{
	NewSize(0, 0, 0, 0),
	NewSize(100, 10, 1, 111),
	NewSize(2000, 0, 48, 2048),
	NewSize(7, 3, 0, 10),
	NewSize(-5, 2, 1, -2),
}

func (g *SizeTests) AddIsComponentWise(t *testgroup.T) {
	for _, a := range sizeSamples {
		for _, b := range sizeSamples {
			s := a.Add(b)

			t.Equal(a.Text+b.Text, s.Text)
			t.Equal(a.Data+b.Data, s.Data)
			t.Equal(a.Bss+b.Bss, s.Bss)
			t.Equal(a.Total+b.Total, s.Total)
		}
	}
}

func (g *SizeTests) AddIsCommutativeAndAssociative(t *testgroup.T) {
	for _, a := range sizeSamples {
		for _, b := range sizeSamples {
			t.Equal(a.Add(b), b.Add(a))

			for _, c := range sizeSamples {
				t.Equal(a.Add(b).Add(c), a.Add(b.Add(c)))
			}
		}
	}
}

func (g *SizeTests) SubIsInverseOfAdd(t *testgroup.T) {
	for _, a := range sizeSamples {
		for _, b := range sizeSamples {
			t.Equal(a, a.Add(b).Sub(b))
		}
	}
}

func (g *SizeTests) OrderingUsesTotal(t *testgroup.T) {
	a := NewSize(500, 0, 0, 10)
	b := NewSize(1, 0, 0, 20)

	t.True(a.Less(b))
	t.False(b.Less(a))
	t.True(b.Greater(a))
	t.False(a.Greater(b))
	t.True(a.LessOrEqual(b))
	t.False(a.GreaterOrEqual(b))
}

func (g *SizeTests) EqualIgnoresTotal(t *testgroup.T) {
	a := NewSize(1, 2, 3, 6)
	b := NewSize(1, 2, 3, 1000)
	c := NewSize(1, 2, 4, 6)

	t.True(a.Equal(b))
	t.False(a.Equal(c))
	t.True(b.LessOrEqual(a))
	t.True(a.GreaterOrEqual(b))
}

func (g *SizeTests) IsEmpty(t *testgroup.T) {
	t.True(Size{}.IsEmpty())
	t.False(NewSize(0, 0, 1, 1).IsEmpty())
}
