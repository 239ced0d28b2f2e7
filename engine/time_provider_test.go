package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	mock.Advance(1 * time.Hour)
	if now := mock.Now(); !now.Equal(newTime.Add(time.Hour)) {
		t.Errorf("Expected time to be %v after Advance, got %v", newTime.Add(time.Hour), now)
	}

	if mock.Calls() != 2 {
		t.Errorf("Expected 2 reads, got %d", mock.Calls())
	}
}

func TestMockTimeProviderAutoStep(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)
	mock.SetAutoStep(5 * time.Millisecond)

	first := mock.Now()
	second := mock.Now()

	if !first.Equal(startTime) {
		t.Errorf("Expected first read at start, got %v", first)
	}
	if second.Sub(first) != 5*time.Millisecond {
		t.Errorf("Expected 5ms between reads, got %v", second.Sub(first))
	}
}
