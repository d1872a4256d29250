// Package schedule derives broadcast-schedule fields for watch-list
// entries from an anime's air date. Everything here is computed on read;
// nothing is persisted.
package schedule

import (
	"time"

	"github.com/dustin/go-humanize"
)

// episodes are assumed weekly, anchored on the air date.
const daysPerEpisode = 7

func daysSince(airDate, now time.Time) int {
	diff := now.Sub(airDate)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

// lastAired is the date the most recent episode went out: the air date
// advanced by the whole weeks elapsed since.
func lastAired(airDate, now time.Time) time.Time {
	weeks := daysSince(airDate, now) / daysPerEpisode
	return airDate.AddDate(0, 0, weeks*daysPerEpisode)
}

// NextEpisode formats the date of the current week's episode as DD.MM.YYYY.
func NextEpisode(airDate, now time.Time) string {
	return lastAired(airDate, now).Format("02.01.2006")
}

// LastEpisode renders how long ago the most recent episode aired,
// e.g. "3 days ago".
func LastEpisode(airDate, now time.Time) string {
	return humanize.RelTime(lastAired(airDate, now), now, "ago", "from now")
}

// EpisodesBehind counts aired-but-unwatched episodes given the viewer's
// progress, floored at zero.
func EpisodesBehind(airDate time.Time, progress int, now time.Time) int {
	aired := daysSince(airDate, now)/daysPerEpisode + 1

	if aired-progress < 0 {
		return 0
	}
	if progress > 0 {
		return aired - progress
	}
	return aired
}
