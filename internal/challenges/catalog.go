package challenges

import (
	"time"
)

// Challenge is a time-boxed community challenge granting a score multiplier
// while active. Multipliers are kept inside the range the scoring engine
// accepts, so downstream clamping never changes them.
type Challenge struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NameHe     string    `json:"name_he"`
	Multiplier float64   `json:"multiplier"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

// SeasonalEvent is a long-running seasonal boost. At most one is active at
// any given time.
type SeasonalEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NameHe     string    `json:"name_he"`
	Multiplier float64   `json:"multiplier"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

func (c Challenge) activeAt(t time.Time) bool {
	return !t.Before(c.StartsAt) && t.Before(c.EndsAt)
}

func (e SeasonalEvent) activeAt(t time.Time) bool {
	return !t.Before(e.StartsAt) && t.Before(e.EndsAt)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// catalog holds the canonical challenge and event definitions. IDs are
// stable and referenced from stored calculation breakdowns, so entries are
// never reused for a different challenge.
var catalog = []Challenge{
	{
		ID:         "summer-shred-2026",
		Name:       "Summer Shred",
		NameHe:     "חיטוב קיץ",
		Multiplier: 1.10,
		StartsAt:   date(2026, time.June, 1),
		EndsAt:     date(2026, time.September, 1),
	},
	{
		ID:         "iron-week-2026-09",
		Name:       "Iron Week",
		NameHe:     "שבוע הברזל",
		Multiplier: 1.15,
		StartsAt:   date(2026, time.September, 7),
		EndsAt:     date(2026, time.September, 14),
	},
	{
		ID:         "cardio-october-2026",
		Name:       "Cardio October",
		NameHe:     "אוקטובר אירובי",
		Multiplier: 1.05,
		StartsAt:   date(2026, time.October, 1),
		EndsAt:     date(2026, time.November, 1),
	},
	{
		ID:         "new-year-kickoff-2027",
		Name:       "New Year Kickoff",
		NameHe:     "פתיחת שנה",
		Multiplier: 1.12,
		StartsAt:   date(2027, time.January, 1),
		EndsAt:     date(2027, time.February, 1),
	},
}

var seasonalEvents = []SeasonalEvent{
	{
		ID:         "summer-games-2026",
		Name:       "Summer Games",
		NameHe:     "משחקי הקיץ",
		Multiplier: 1.05,
		StartsAt:   date(2026, time.July, 1),
		EndsAt:     date(2026, time.September, 1),
	},
	{
		ID:         "winter-warriors-2026",
		Name:       "Winter Warriors",
		NameHe:     "לוחמי החורף",
		Multiplier: 1.10,
		StartsAt:   date(2026, time.December, 1),
		EndsAt:     date(2027, time.March, 1),
	},
}

func activeFromCatalog(now time.Time) Snapshot {
	snapshot := Snapshot{
		TakenAt: now,
	}
	for _, c := range catalog {
		if c.activeAt(now) {
			snapshot.Challenges = append(snapshot.Challenges, c)
		}
	}
	for _, e := range seasonalEvents {
		if e.activeAt(now) {
			event := e
			snapshot.SeasonalEvent = &event
			break
		}
	}
	return snapshot
}
