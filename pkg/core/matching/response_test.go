package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreference_Yes(t *testing.T) {
	pref, err := ParsePreference("yes")
	require.NoError(t, err)
	assert.Equal(t, PreferenceYes, pref)
}

func TestParsePreference_No(t *testing.T) {
	pref, err := ParsePreference("NO")
	require.NoError(t, err)
	assert.Equal(t, PreferenceNo, pref)
}

func TestParsePreference_NoPreferenceForms(t *testing.T) {
	for _, raw := range []string{"no preference", "NO PREF", "no_pref", " No Preference "} {
		pref, err := ParsePreference(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, PreferenceNone, pref, "input %q", raw)
	}
}

func TestParsePreference_Invalid(t *testing.T) {
	_, err := ParsePreference("maybe")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseBinary(t *testing.T) {
	yes, err := ParseBinary(" Yes ")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := ParseBinary("no")
	require.NoError(t, err)
	assert.False(t, no)

	_, err = ParseBinary("no preference")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseChoice_NormalizesCase(t *testing.T) {
	choice, err := ParseChoice("bts", []string{"BTS", "FRONT"})
	require.NoError(t, err)
	assert.Equal(t, "BTS", choice)
}

func TestParseChoice_Invalid(t *testing.T) {
	_, err := ParseChoice("BACK", []string{"BTS", "FRONT"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseDayAvailability_NoAvailabilityForms(t *testing.T) {
	cal := DefaultCalendars()[CommitmentDistrict]

	for _, raw := range []string{"", "none", "FALSE", "  "} {
		avail, err := ParseDayAvailability(raw, cal)
		require.NoError(t, err, "input %q", raw)
		assert.False(t, avail.HasAvailability, "input %q", raw)
		assert.Equal(t, 0, avail.Len(), "input %q", raw)
	}
}

func TestParseDayAvailability_NumericDistrict(t *testing.T) {
	cal := DefaultCalendars()[CommitmentDistrict]

	// District calendar is Friday(0) Saturday(1) Sunday(2)
	avail, err := ParseDayAvailability("0 2", cal)
	require.NoError(t, err)
	assert.True(t, avail.HasAvailability)
	assert.True(t, avail.Has(time.Friday))
	assert.False(t, avail.Has(time.Saturday))
	assert.True(t, avail.Has(time.Sunday))
}

func TestParseDayAvailability_NamesRegionals(t *testing.T) {
	cal := DefaultCalendars()[CommitmentRegionals]

	avail, err := ParseDayAvailability("thursday Saturday", cal)
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Thursday, time.Saturday}, avail.Days())
}

func TestParseDayAvailability_ThreeLetterPrefix(t *testing.T) {
	cal := DefaultCalendars()[CommitmentRegionals]

	avail, err := ParseDayAvailability("thurs fri sat", cal)
	require.NoError(t, err)
	assert.Equal(t, 3, avail.Len())
	assert.True(t, avail.Has(time.Thursday))
	assert.True(t, avail.Has(time.Friday))
	assert.True(t, avail.Has(time.Saturday))
}

func TestParseDayAvailability_IndexOutOfRange(t *testing.T) {
	cal := DefaultCalendars()[CommitmentDistrict]

	// District only has 3 days, so index 3 is invalid
	_, err := ParseDayAvailability("3", cal)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseDayAvailability_UnknownToken(t *testing.T) {
	cal := DefaultCalendars()[CommitmentRegionals]

	_, err := ParseDayAvailability("friday blursday", cal)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseDayAvailability_NoPartialResults(t *testing.T) {
	cal := DefaultCalendars()[CommitmentDistrict]

	avail, err := ParseDayAvailability("friday 9", cal)
	require.Error(t, err)
	assert.False(t, avail.HasAvailability)
	assert.Equal(t, 0, avail.Len())
}

func TestParseDayAvailability_RoundTrip(t *testing.T) {
	cal := DefaultCalendars()[CommitmentRegionals]

	avail, err := ParseDayAvailability("sun thu", cal)
	require.NoError(t, err)

	reparsed, err := ParseDayAvailability(avail.String(), cal)
	require.NoError(t, err)
	assert.Equal(t, avail.Days(), reparsed.Days())
}

func TestDayAvailability_Overlap(t *testing.T) {
	cal := DefaultCalendars()[CommitmentRegionals]

	a, err := ParseDayAvailability("thu fri sat", cal)
	require.NoError(t, err)
	b, err := ParseDayAvailability("fri sun", cal)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Overlap(b))
	assert.Equal(t, 1, b.Overlap(a))
}
