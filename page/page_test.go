package page

import (
	"sync"
	"testing"
	"time"
)

func TestRegionDiscardsStaleGeneration(t *testing.T) {
	r := NewRegion("library-books", "")

	first := r.Begin()
	second := r.Begin()

	if !r.Commit(second, "second") {
		t.Fatal("latest generation must commit")
	}
	if r.Commit(first, "first") {
		t.Fatal("stale generation must not commit")
	}
	if got := r.Content(); got != "second" {
		t.Fatalf("content = %q, want second", got)
	}
}

func TestRegionReplaceKeepsGenerations(t *testing.T) {
	r := NewRegion("events-grid", "initial")
	gen := r.Begin()
	r.Replace("filtered")
	if !r.Commit(gen, "loaded") {
		t.Fatal("Replace must not invalidate an in-flight load")
	}
	if got := r.Content(); got != "loaded" {
		t.Fatalf("content = %q, want loaded", got)
	}
}

func TestRegionConcurrentCommitsKeepLatest(t *testing.T) {
	r := NewRegion("x", "")
	gens := make([]uint64, 50)
	for i := range gens {
		gens[i] = r.Begin()
	}
	var wg sync.WaitGroup
	for i, g := range gens {
		wg.Add(1)
		go func(i int, g uint64) {
			defer wg.Done()
			r.Commit(g, string(rune('a'+i%26)))
		}(i, g)
	}
	wg.Wait()
	if got, want := r.Content(), string(rune('a'+49%26)); got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestSelectorSingleActive(t *testing.T) {
	s := NewSelector("admissions", "admissions", "events", "library")
	if !s.Select("library") {
		t.Fatal("known key rejected")
	}
	for _, k := range s.Keys() {
		if s.IsActive(k) != (k == "library") {
			t.Errorf("key %q active=%v", k, s.IsActive(k))
		}
	}
	if s.Select("settings") {
		t.Fatal("unknown key accepted")
	}
	if s.Active() != "library" {
		t.Fatalf("unknown key changed state to %q", s.Active())
	}
}

func TestSelectorIgnoresUnknownInitial(t *testing.T) {
	if got := NewSelector("nope", "a", "b").Active(); got != "" {
		t.Fatalf("active = %q, want none", got)
	}
}

func TestToggle(t *testing.T) {
	var tg Toggle
	if !tg.Toggle() || !tg.IsOpen() {
		t.Fatal("first toggle should open")
	}
	tg.Close()
	if tg.IsOpen() {
		t.Fatal("close should close")
	}
	tg.Open()
	if tg.Toggle() {
		t.Fatal("toggle of open should close")
	}
}

func TestNotificationAutoHides(t *testing.T) {
	var scheduled []func()
	var delays []time.Duration
	afterFunc = func(d time.Duration, f func()) *time.Timer {
		delays = append(delays, d)
		scheduled = append(scheduled, f)
		return nil
	}
	t.Cleanup(func() { afterFunc = time.AfterFunc })

	n := NewNotification(3 * time.Second)
	n.Show("first", "success")
	n.Show("second", "error")

	msg, kind, shown := n.State()
	if msg != "second" || kind != "error" || !shown {
		t.Fatalf("state = %q %q %v", msg, kind, shown)
	}
	if len(delays) != 2 || delays[0] != 3*time.Second {
		t.Fatalf("delays = %v", delays)
	}

	scheduled[0]()
	if _, _, shown := n.State(); shown {
		t.Fatal("first timer hides whatever is shown")
	}
}

func TestFormFillAndReset(t *testing.T) {
	f := NewForm("full_name", "email")
	f.Fill(map[string]string{"full_name": "Kiran", "email": "k@example.com", "rogue": "x"})
	v := f.Values()
	if v["full_name"] != "Kiran" || v["email"] != "k@example.com" {
		t.Fatalf("values = %v", v)
	}
	if _, ok := v["rogue"]; ok {
		t.Fatal("unknown field kept")
	}
	f.Reset()
	if len(f.Values()) != 0 {
		t.Fatal("reset left values")
	}
}
