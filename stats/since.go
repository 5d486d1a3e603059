package stats

import (
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/ecofocus/internal/apperr"
	"github.com/ayoisaiah/ecofocus/internal/timeutil"
)

var errInvalidSince = &apperr.Error{
	Message: "unable to understand date: %s",
}

// ParseSince resolves the start of a reporting window. It accepts a named
// period (today, 7days, ...) or a natural language date such as
// "last monday" or "2 weeks ago".
func ParseSince(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	p := timeutil.Period(s)
	if _, ok := timeutil.Range[p]; ok {
		return p.Start(now), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Past,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidSince.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
