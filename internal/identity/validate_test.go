package identity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/zarlcorp/zident/internal/registry"
)

func validChinese() Identity {
	return Identity{
		Country:        registry.CN,
		Gender:         Female,
		IDNumber:       "11010519491231002X",
		PassportNumber: "E12345678",
		Phone:          "13812345678",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Identity)
		wantErr bool
	}{
		{"valid", func(*Identity) {}, false},
		{"bad checksum", func(id *Identity) { id.IDNumber = "110105194912310021" }, true},
		{"parity mismatch", func(id *Identity) { id.Gender = Male }, true},
		{"short id", func(id *Identity) { id.IDNumber = "1101" }, true},
		{"bad passport", func(id *Identity) { id.PassportNumber = "G1234567" }, true},
		{"bad phone", func(id *Identity) { id.Phone = "12345" }, true},
		{"bad card", func(id *Identity) { id.CreditCard = &CreditCard{Number: "4111111111111112"} }, true},
		{"good card", func(id *Identity) { id.CreditCard = &CreditCard{Number: "4111111111111111"} }, false},
		{"unsupported country", func(id *Identity) { id.Country = "ZZ" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := validChinese()
			tt.mutate(&id)
			err := Validate(id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("err %v should wrap ErrInvalidFormat", err)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(1990, time.March, 7)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"1990-03-07"` {
		t.Fatalf("marshal = %s, want \"1990-03-07\"", b)
	}

	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", got, d)
	}

	if err := json.Unmarshal([]byte(`"07/03/1990"`), &got); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestAge(t *testing.T) {
	id := Identity{BirthDate: NewDate(1990, time.December, 20)}
	if got := id.Age(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)); got != 35 {
		t.Errorf("age before birthday = %d, want 35", got)
	}
	if got := id.Age(time.Date(2026, time.December, 21, 0, 0, 0, 0, time.UTC)); got != 36 {
		t.Errorf("age after birthday = %d, want 36", got)
	}
}
