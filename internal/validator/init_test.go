package validator

import "testing"

func TestParseAirDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "ISO date", raw: "2021-03-10"},
		{name: "dotted date", raw: "10.03.2021"},
		{name: "garbage", raw: "not-a-date", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "time only", raw: "15:04", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseAirDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAirDate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && parsed.IsZero() {
				t.Errorf("ParseAirDate(%q) returned the zero time", tt.raw)
			}
		})
	}

	t.Run("both formats agree", func(t *testing.T) {
		iso, err := ParseAirDate("2021-03-10")
		if err != nil {
			t.Fatal(err)
		}
		dotted, err := ParseAirDate("10.03.2021")
		if err != nil {
			t.Fatal(err)
		}
		if !iso.Equal(dotted) {
			t.Errorf("formats disagree: %v vs %v", iso, dotted)
		}
	})
}
