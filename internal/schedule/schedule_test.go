package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextEpisode(t *testing.T) {
	tests := []struct {
		name    string
		airDate time.Time
		now     time.Time
		want    string
	}{
		{
			name:    "same day as air date",
			airDate: date(2021, time.March, 10),
			now:     date(2021, time.March, 10),
			want:    "10.03.2021",
		},
		{
			name:    "two whole weeks elapsed",
			airDate: date(2021, time.March, 10),
			now:     date(2021, time.March, 24),
			want:    "24.03.2021",
		},
		{
			name:    "mid-week lands on the last broadcast",
			airDate: date(2021, time.March, 10),
			now:     date(2021, time.March, 26),
			want:    "24.03.2021",
		},
		{
			name:    "one day short of a full week",
			airDate: date(2021, time.March, 10),
			now:     date(2021, time.March, 16),
			want:    "10.03.2021",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextEpisode(tt.airDate, tt.now); got != tt.want {
				t.Errorf("NextEpisode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEpisodesBehind(t *testing.T) {
	airDate := date(2021, time.March, 10)
	now := date(2021, time.March, 24) // three episodes aired

	tests := []struct {
		name     string
		progress int
		want     int
	}{
		{name: "no progress", progress: 0, want: 3},
		{name: "partially caught up", progress: 2, want: 1},
		{name: "fully caught up", progress: 3, want: 0},
		{name: "ahead of schedule floors at zero", progress: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EpisodesBehind(airDate, tt.progress, now); got != tt.want {
				t.Errorf("EpisodesBehind(progress=%d) = %d, want %d", tt.progress, got, tt.want)
			}
		})
	}
}

func TestEpisodesBehind_FutureAirDate(t *testing.T) {
	// The distance is taken as an absolute value, so an announced show
	// nine days out already counts two episodes.
	airDate := date(2021, time.March, 10)
	now := date(2021, time.March, 1)

	if got := EpisodesBehind(airDate, 0, now); got != 2 {
		t.Errorf("EpisodesBehind() = %d, want 2", got)
	}
}

func TestLastEpisode(t *testing.T) {
	airDate := date(2021, time.March, 10)
	now := date(2021, time.March, 26)

	if got := LastEpisode(airDate, now); got != "2 days ago" {
		t.Errorf("LastEpisode() = %q, want %q", got, "2 days ago")
	}
}
