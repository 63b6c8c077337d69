package cmap

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewWithShards(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1},
		{8, 8},
		{64, 64},
		{0, DefaultShardCount},
		{-4, DefaultShardCount},
		{12, DefaultShardCount},
	}

	for _, tt := range tests {
		if got := NewWithShards[string, int](tt.in).ShardCount(); got != tt.want {
			t.Errorf("NewWithShards(%d).ShardCount() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSetGetDelete(t *testing.T) {
	m := New[string, int]()

	if _, ok := m.Get("missing"); ok {
		t.Error("Get() on empty map reported ok")
	}

	m.Set("a", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	if v, ok := m.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}

	m.Delete("a")
	m.Delete("never-set")
	if _, ok := m.Get("a"); ok {
		t.Error("Get(a) after Delete reported ok")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestGetOrSet(t *testing.T) {
	m := New[string, *int]()
	first, second := 1, 2

	got, loaded := m.GetOrSet("k", &first)
	if loaded || got != &first {
		t.Errorf("first GetOrSet = %v, %v", *got, loaded)
	}

	got, loaded = m.GetOrSet("k", &second)
	if !loaded || got != &first {
		t.Errorf("second GetOrSet should return the stored pointer, got %v, %v", *got, loaded)
	}
}

func TestRange(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Set(i, i*i)
	}

	sum := 0
	m.Range(func(k, v int) bool {
		if v != k*k {
			t.Errorf("value for %d = %d", k, v)
		}
		sum += k
		return true
	})
	if sum != 4950 {
		t.Errorf("Range visited keys summing to %d, want 4950", sum)
	}

	visited := 0
	m.Range(func(int, int) bool {
		visited++
		return visited < 5
	})
	if visited != 5 {
		t.Errorf("Range did not stop early: visited %d", visited)
	}
}

func TestDeleteFunc(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 20; i++ {
		m.Set(fmt.Sprintf("k%d", i), i)
	}

	removed := m.DeleteFunc(func(_ string, v int) bool { return v%2 == 0 })
	if removed != 10 {
		t.Errorf("DeleteFunc removed %d, want 10", removed)
	}
	if m.Count() != 10 {
		t.Errorf("Count() = %d, want 10", m.Count())
	}
	m.Range(func(k string, v int) bool {
		if v%2 == 0 {
			t.Errorf("%s survived DeleteFunc", k)
		}
		return true
	})
}

func TestConcurrentAccess(t *testing.T) {
	m := New[string, int]()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("g%d-%d", g, i)
				m.Set(key, i)
				m.Get(key)
				m.GetOrSet(key, -1)
				if i%2 == 0 {
					m.Delete(key)
				}
			}
		}(g)
	}
	wg.Wait()

	if m.Count() != 8*250 {
		t.Errorf("Count() = %d, want %d", m.Count(), 8*250)
	}
}
