package identity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestGenerateMany(t *testing.T) {
	g := newTestGenerator(40)
	ids, err := g.GenerateMany(context.Background(), 5, Options{Country: "JP"})
	if err != nil {
		t.Fatalf("generate many: %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("got %d identities, want 5", len(ids))
	}

	seen := make(map[string]bool)
	for _, id := range ids {
		if err := Validate(id); err != nil {
			t.Errorf("identity %s: %v", id.ID, err)
		}
		if seen[id.ID] {
			t.Errorf("duplicate id %s", id.ID)
		}
		seen[id.ID] = true
	}
}

func TestGenerateManyCounts(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantLen int
		wantErr error
	}{
		{"zero", 0, 0, nil},
		{"negative", -1, 0, ErrInvalidCount},
		{"at limit", 20, 20, nil},
		{"over limit", 21, 0, ErrBatchTooLarge},
	}

	g := New(WithSeed(41), WithMaxBatch(20))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := g.GenerateMany(context.Background(), tt.count, Options{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(ids) != tt.wantLen {
				t.Errorf("got %d identities, want %d", len(ids), tt.wantLen)
			}
		})
	}
}

func TestGenerateManyDefaultLimit(t *testing.T) {
	g := New(WithSeed(42))
	_, err := g.GenerateMany(context.Background(), DefaultMaxBatch+1, Options{})
	if !errors.Is(err, ErrBatchTooLarge) {
		t.Fatalf("err = %v, want ErrBatchTooLarge", err)
	}
}

func TestGenerateManyDeterministicAcrossRuns(t *testing.T) {
	run := func() []byte {
		g := New(WithSeed(43), WithWorkers(4), WithClock(func() time.Time { return testNow }))
		ids, err := g.GenerateMany(context.Background(), 50, Options{Country: "US"})
		if err != nil {
			t.Fatalf("generate many: %v", err)
		}
		b, err := json.Marshal(ids)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}

	if a, b := run(), run(); string(a) != string(b) {
		t.Error("seeded concurrent batches differ between runs")
	}
}

func TestGenerateManyAgeWindow(t *testing.T) {
	g := New(WithSeed(44), WithWorkers(8), WithClock(func() time.Time { return testNow }))
	ids, err := g.GenerateMany(context.Background(), 1000, Options{AgeMin: 25, AgeMax: 30})
	if err != nil {
		t.Fatalf("generate many: %v", err)
	}
	for _, id := range ids {
		y := id.BirthDate.Year()
		if y < testNow.Year()-30 || y > testNow.Year()-25 {
			t.Fatalf("birth year %d outside the 6-year window", y)
		}
	}
}

func TestGenerateManyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := New(WithSeed(45), WithWorkers(2))
	_, err := g.GenerateMany(ctx, 10, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
