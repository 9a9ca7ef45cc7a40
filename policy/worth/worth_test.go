package worth

import (
	"math"
	"testing"
)

// --- test doubles ---

type slot struct {
	used bool
	hits uint64
	born uint64
}

type fakeView struct {
	slots []slot
	ticks uint64
}

func (v *fakeView) Slots() int          { return len(v.slots) }
func (v *fakeView) Occupied(i int) bool { return v.slots[i].used }
func (v *fakeView) Hits(i int) uint64   { return v.slots[i].hits }
func (v *fakeView) Born(i int) uint64   { return v.slots[i].born }
func (v *fakeView) Ticks() uint64       { return v.ticks }

// --- tests ---

func TestRatio(t *testing.T) {
	t.Parallel()

	if r := Ratio(5, 0, 20); r != 0.25 {
		t.Fatalf("Ratio(5, 0, 20) = %v, want 0.25", r)
	}
	if r := Ratio(1, 7, 7); !math.IsInf(r, 1) {
		t.Fatalf("zero age must be +Inf, got %v", r)
	}
}

// The entry with the smallest worth below 1.0 is the victim.
func TestVictim_SmallestBelowThreshold(t *testing.T) {
	t.Parallel()

	v := &fakeView{ticks: 24, slots: []slot{
		{true, 5, 0},
		{true, 5, 0},
		{true, 1, 0}, // 1/24
		{true, 5, 0},
	}}
	i, r := Victim(v)
	if i != 2 {
		t.Fatalf("victim = %d, want 2", i)
	}
	if r != 1.0/24 {
		t.Fatalf("ratio = %v, want %v", r, 1.0/24)
	}
}

// Equal worth keeps the lowest index.
func TestVictim_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	v := &fakeView{ticks: 10, slots: []slot{
		{true, 5, 0},
		{true, 2, 0},
		{true, 2, 0},
	}}
	if i, _ := Victim(v); i != 1 {
		t.Fatalf("victim = %d, want 1", i)
	}
}

// Entries worth 1.0 or more are never chosen over the seed; slot 0 is.
func TestVictim_AllAboveThresholdFallsBackToSlotZero(t *testing.T) {
	t.Parallel()

	v := &fakeView{ticks: 4, slots: []slot{
		{true, 9, 0}, // 2.25
		{true, 1, 3}, // 1.0
		{true, 1, 4}, // +Inf
	}}
	i, r := Victim(v)
	if i != 0 {
		t.Fatalf("victim = %d, want 0", i)
	}
	if r != 2.25 {
		t.Fatalf("ratio = %v, want 2.25", r)
	}
}

// A freshly created entry (+Inf) loses to any entry with a defined worth below 1.0.
func TestVictim_FreshEntryImmune(t *testing.T) {
	t.Parallel()

	v := &fakeView{ticks: 3, slots: []slot{
		{true, 1, 3}, // created this tick
		{true, 2, 0}, // 2/3
	}}
	if i, _ := Victim(v); i != 1 {
		t.Fatalf("victim = %d, want 1 (fresh entry must survive)", i)
	}
}

func TestVictim_SkipsEmptySlots(t *testing.T) {
	t.Parallel()

	v := &fakeView{ticks: 100, slots: []slot{
		{},
		{true, 1, 0},
	}}
	if i, _ := Victim(v); i != 1 {
		t.Fatalf("victim = %d, want 1", i)
	}
}
