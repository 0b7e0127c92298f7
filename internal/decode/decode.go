// Package decode implements the pure tag-value decoders: unescape, bool,
// integer, timestamp, badge list, and emotes expression. Every decoder is a
// pure function of a borrowed byte slice. Some results alias the input:
// Unescape's no-escape short-circuit returns the input slice itself, and the
// Badge names/versions, EmoteOccurrence IDs and ParsedID.Raw are sub-slices
// of it.
package decode

import (
	"strconv"

	uuid "github.com/satori/go.uuid"

	"github.com/chromacore/tmi/internal/scan"
)

// Unescape decodes the tag-value escape alphabet (\s \: \r \n \\; any other
// \x decodes to x; a trailing lone backslash decodes to nothing). When v
// contains no backslash it returns v itself, unmodified and unallocated —
// the short-circuit that keeps ~95% of tag values allocation-free.
func Unescape(v []byte) []byte {
	if scan.IndexByte(v, '\\') == len(v) {
		return v
	}
	out := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' {
			out = append(out, v[i])
			continue
		}
		if i+1 >= len(v) {
			break // trailing lone backslash decodes to nothing
		}
		i++
		switch v[i] {
		case 's':
			out = append(out, ' ')
		case ':':
			out = append(out, ';')
		case 'r':
			out = append(out, '\r')
		case 'n':
			out = append(out, '\n')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, v[i])
		}
	}
	return out
}

// Bool implements the observed-in-the-wild lenient boolean decode: "1" is
// true, everything else (including an empty or absent value) is false.
func Bool(v []byte) bool {
	return len(v) == 1 && v[0] == '1'
}

// Int decodes an optionally '-'-signed run of ASCII digits. An empty slice
// decodes to 0. Overflow and non-digit bytes are reported via ok=false.
func Int(v []byte) (n int64, ok bool) {
	if len(v) == 0 {
		return 0, true
	}
	s := v
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
		if len(s) == 0 {
			return 0, false
		}
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	parsed, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		parsed = -parsed
	}
	return parsed, true
}

// TimestampMs decodes a millisecond Unix timestamp; same grammar as Int.
func TimestampMs(v []byte) (ms int64, ok bool) {
	return Int(v)
}

// Badge is one name/version pair from a badges or badge-info tag.
type Badge struct {
	Name    []byte
	Version []byte
}

// Badges splits a comma-separated "name/version,name/version" list into a
// slice, decoding the whole list in one call rather than lazily.
// A token without '/' yields the whole token as Name with an empty Version.
func Badges(v []byte) []Badge {
	if len(v) == 0 {
		return nil
	}
	badges := make([]Badge, 0, 4)
	for len(v) > 0 {
		end := scan.IndexByte(v, ',')
		tok := v[:end]
		slash := scan.IndexByte(tok, '/')
		if slash == len(tok) {
			badges = append(badges, Badge{Name: tok})
		} else {
			badges = append(badges, Badge{Name: tok[:slash], Version: tok[slash+1:]})
		}
		if end == len(v) {
			break
		}
		v = v[end+1:]
	}
	return badges
}

// EmoteOccurrence is one decoded "id:start-end" range from an emotes
// expression. Start/End are UTF-16-code-unit offsets into the message text,
// per Twitch's documented (if unfortunate) wire convention; this package
// only parses the expression and does not reinterpret the message itself.
type EmoteOccurrence struct {
	ID    []byte
	Start int
	End   int
}

// Emotes decodes the Twitch emotes expression "id1:s-e,s-e/id2:s-e".
// Invalid segments (malformed ranges, non-numeric offsets) are skipped
// rather than aborting the whole decode, matching observed client
// behavior: a single bad range should not discard the rest of the message.
func Emotes(v []byte) []EmoteOccurrence {
	if len(v) == 0 {
		return nil
	}
	var out []EmoteOccurrence
	for len(v) > 0 {
		slashEnd := scan.IndexByte(v, '/')
		seg := v[:slashEnd]
		out = append(out, decodeEmoteSegment(seg)...)
		if slashEnd == len(v) {
			break
		}
		v = v[slashEnd+1:]
	}
	return out
}

func decodeEmoteSegment(seg []byte) []EmoteOccurrence {
	colon := scan.IndexByte(seg, ':')
	if colon == len(seg) {
		return nil
	}
	id := seg[:colon]
	ranges := seg[colon+1:]
	var out []EmoteOccurrence
	for len(ranges) > 0 {
		end := scan.IndexByte(ranges, ',')
		rng := ranges[:end]
		if occ, ok := decodeRange(id, rng); ok {
			out = append(out, occ)
		}
		if end == len(ranges) {
			break
		}
		ranges = ranges[end+1:]
	}
	return out
}

func decodeRange(id, rng []byte) (EmoteOccurrence, bool) {
	dash := scan.IndexByte(rng, '-')
	if dash == len(rng) {
		return EmoteOccurrence{}, false
	}
	start, ok1 := Int(rng[:dash])
	end, ok2 := Int(rng[dash+1:])
	if !ok1 || !ok2 || start < 0 || end < start {
		return EmoteOccurrence{}, false
	}
	return EmoteOccurrence{ID: id, Start: int(start), End: int(end)}, true
}

// ParsedID pairs a raw id-shaped tag slice with its UUID decoding, when the
// slice happens to parse as one. Twitch's message/target ids are UUIDs in
// practice but the wire protocol makes no such guarantee, so a decode
// failure here is never fatal: Raw remains authoritative and OK reports
// whether ID is meaningful.
type ParsedID struct {
	Raw []byte
	ID  uuid.UUID
	OK  bool
}

// ParseID decodes an id-shaped tag value, non-failing.
func ParseID(v []byte) ParsedID {
	id, err := uuid.FromString(string(v))
	if err != nil {
		return ParsedID{Raw: v}
	}
	return ParsedID{Raw: v, ID: id, OK: true}
}
