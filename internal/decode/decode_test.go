package decode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnescapeNoBackslashShortCircuit(t *testing.T) {
	v := []byte("plain value")
	got := Unescape(v)
	require.Equal(t, v, got)
	// same backing array: no allocation took place.
	require.Same(t, &v[0], &got[0])
}

func TestUnescapeAllEscapes(t *testing.T) {
	require.Equal(t, []byte("a b;c\r\n\\"), Unescape([]byte(`a\sb\:c\r\n\\`)))
}

func TestUnescapeTrailingLoneBackslash(t *testing.T) {
	require.Equal(t, []byte("abc"), Unescape([]byte(`abc\`)))
}

func TestUnescapeUnknownEscapeDropsBackslash(t *testing.T) {
	require.Equal(t, []byte("ax"), Unescape([]byte(`a\x`)))
}

func TestBool(t *testing.T) {
	require.True(t, Bool([]byte("1")))
	require.False(t, Bool([]byte("0")))
	require.False(t, Bool(nil))
	require.False(t, Bool([]byte("true")))
}

func TestInt(t *testing.T) {
	n, ok := Int([]byte("1679231590118"))
	require.True(t, ok)
	require.Equal(t, int64(1679231590118), n)

	n, ok = Int(nil)
	require.True(t, ok)
	require.Equal(t, int64(0), n)

	n, ok = Int([]byte("-42"))
	require.True(t, ok)
	require.Equal(t, int64(-42), n)

	_, ok = Int([]byte("12a"))
	require.False(t, ok)

	_, ok = Int([]byte("-"))
	require.False(t, ok)

	_, ok = Int([]byte("99999999999999999999999999"))
	require.False(t, ok)
}

func TestBadges(t *testing.T) {
	got := Badges([]byte("subscriber/6,premium/1"))
	require.Equal(t, []Badge{
		{Name: []byte("subscriber"), Version: []byte("6")},
		{Name: []byte("premium"), Version: []byte("1")},
	}, got)
}

func TestBadgesNoVersion(t *testing.T) {
	got := Badges([]byte("staff"))
	require.Equal(t, []Badge{{Name: []byte("staff")}}, got)
}

func TestEmotes(t *testing.T) {
	got := Emotes([]byte("25:0-4,12-16/1902:6-10"))
	require.Equal(t, []EmoteOccurrence{
		{ID: []byte("25"), Start: 0, End: 4},
		{ID: []byte("25"), Start: 12, End: 16},
		{ID: []byte("1902"), Start: 6, End: 10},
	}, got)
}

func TestEmotesSkipsInvalidSegment(t *testing.T) {
	got := Emotes([]byte("25:bad-range/1902:6-10"))
	require.Equal(t, []EmoteOccurrence{
		{ID: []byte("1902"), Start: 6, End: 10},
	}, got)
}

func TestParseID(t *testing.T) {
	p := ParseID([]byte("1eef01e3-634a-493b-b1a7-4f65040fa986"))
	require.True(t, p.OK)
	require.Equal(t, "1eef01e3-634a-493b-b1a7-4f65040fa986", p.ID.String())

	p = ParseID([]byte("not-a-uuid"))
	require.False(t, p.OK)
	require.Equal(t, []byte("not-a-uuid"), p.Raw)
}
