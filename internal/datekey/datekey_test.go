package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMakePadsComponents(t *testing.T) {
	assert.Equal(t, "2026-02-07", Make(2026, time.February, 7))
	assert.Equal(t, "2026-11-30", Make(2026, time.November, 30))
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2026-02-16")
	assert.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.February, Day: 16}, d)
	assert.Equal(t, "2026-02-16", Make(d.Year, d.Month, d.Day))
}

func TestParseRejectsMalformedKeys(t *testing.T) {
	cases := []string{"", "2026-02", "2026-02-16-00", "2026-xx-16", "today", "2026/02/16"}
	for _, key := range cases {
		_, err := Parse(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "Feb 16", FormatDisplay("2026-02-16"))
	assert.Equal(t, "Nov 3", FormatDisplay("2026-11-03"))
	assert.Equal(t, "", FormatDisplay(""))
	assert.Equal(t, "", FormatDisplay("not-a-key"))
}

func TestFormatReadable(t *testing.T) {
	assert.Equal(t, "February 16, 2026", FormatReadable("2026-02-16"))
	assert.Equal(t, "", FormatReadable(""))
	assert.Equal(t, "", FormatReadable("2026-02"))
}

func TestIsInMonth(t *testing.T) {
	assert.True(t, IsInMonth("2026-02-07", 2026, time.February))
	assert.True(t, IsInMonth("2026-02-28", 2026, time.February))
	assert.False(t, IsInMonth("2026-03-01", 2026, time.February))
	assert.False(t, IsInMonth("2025-02-07", 2026, time.February))
	assert.False(t, IsInMonth("garbage", 2026, time.February))
}
