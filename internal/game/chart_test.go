package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestTravelDuration(t *testing.T) {
	last := math.Inf(1)
	for _, s := range Speeds {
		d := s.TravelDuration()
		if d <= 0 {
			t.Errorf("%v: travel duration %v is not positive", s, d)
		}
		if d >= last {
			t.Errorf("%v: travel duration %v is not less than %v", s, d, last)
		}
		last = d
	}
}

func TestSpawnTime(t *testing.T) {
	if Distance != 600 {
		t.Fatal("distance", Distance)
	}
	if v := Slow.Value(); v != 200 {
		t.Fatal("slow speed", v)
	}
	if st := SpawnTime(4.0, Slow); st != 1.0 {
		t.Log("spawn time", st)
		t.Fail()
	}
}

func TestHitTimeReversesSpawnTime(t *testing.T) {
	for _, s := range Speeds {
		for _, ht := range []float64{-2.5, 0, 1, 4, 93.25} {
			e := ArrowEvent{SpawnTime: SpawnTime(ht, s), Speed: s}
			if got := HitTime(e); math.Abs(got-ht) > 1e-9 {
				t.Errorf("%v %v: got %v", s, ht, got)
			}
		}
	}
}

func TestBuildSorted(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		entries := make([]ChartEntry, r.Intn(40))
		for i := range entries {
			entries[i] = ChartEntry{
				HitTime:   float64(r.Intn(400)) / 8,
				Speed:     Speeds[r.Intn(len(Speeds))],
				Direction: Directions[r.Intn(len(Directions))],
			}
		}
		events := Build(entries)
		if len(events) != len(entries) {
			t.Fatalf("got %v events for %v entries", len(events), len(entries))
		}
		for i := 1; i < len(events); i++ {
			if events[i-1].SpawnTime > events[i].SpawnTime {
				t.Fatalf("events %v and %v out of order", events[i-1], events[i])
			}
		}
	}
}

func TestBuildStable(t *testing.T) {
	entries := []ChartEntry{
		{HitTime: 5, Speed: Slow, Direction: Right},
		{HitTime: 5, Speed: Slow, Direction: Left},
		{HitTime: 5, Speed: Slow, Direction: Up},
		// Spawns half a second later
		{HitTime: 5.5, Speed: Slow, Direction: Down},
	}
	events := Build(entries)
	expected := []Direction{Right, Left, Up, Down}
	for i, d := range expected {
		if events[i].Direction != d {
			t.Log("events  ", events)
			t.Log("expected", expected)
			t.Fail()
			break
		}
	}

	entries = []ChartEntry{
		{HitTime: 4, Speed: Slow, Direction: Up},
		{HitTime: 3.5, Speed: Fast, Direction: Down},
	}
	events = Build(entries)
	// Slow spawns at 1.0, Fast at 1.5
	if events[0].Direction != Up || events[1].Direction != Down {
		t.Log(events)
		t.Fail()
	}
}

func TestEnumText(t *testing.T) {
	for _, d := range Directions {
		b, err := d.MarshalText()
		if nil != err {
			t.Fatal(err)
		}
		var out Direction
		if err := out.UnmarshalText(b); nil != err || out != d {
			t.Errorf("%v: got %v, %v", d, out, err)
		}
	}
	var s Speed
	if err := s.UnmarshalText([]byte("Ludicrous")); nil == err {
		t.Error("expected an error for an unknown speed")
	}
	var d Direction
	if err := d.UnmarshalText([]byte("up")); nil == err {
		t.Error("direction names are case sensitive")
	}
}
