package tmi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chromacore/tmi/internal/decode"
	"github.com/chromacore/tmi/internal/registry"
)

func TestParsePing(t *testing.T) {
	v := Parse([]byte("PING :tmi.twitch.tv"))
	require.Equal(t, CommandPing, v.Command().Kind)
	require.Empty(t, v.Params())
	text, ok := v.Text()
	require.True(t, ok)
	require.Equal(t, "tmi.twitch.tv", string(text))

	p, err := AsPing(v)
	require.NoError(t, err)
	require.Equal(t, "tmi.twitch.tv", string(p.Text))
}

func TestParseStripsTrailingCRLF(t *testing.T) {
	crlf := Parse([]byte("PING :tmi.twitch.tv\r\n"))
	text, ok := crlf.Text()
	require.True(t, ok)
	require.Equal(t, "tmi.twitch.tv", string(text))

	lfOnly := Parse([]byte("PING :tmi.twitch.tv\n"))
	text, ok = lfOnly.Text()
	require.True(t, ok)
	require.Equal(t, "tmi.twitch.tv", string(text))

	crOnly := Parse([]byte("PING :tmi.twitch.tv\r"))
	text, ok = crOnly.Text()
	require.True(t, ok)
	require.Equal(t, "tmi.twitch.tv", string(text))
}

func TestParsePrivmsgScenario(t *testing.T) {
	line := "@badge-info=subscriber/10;badges=subscriber/6;color=#F2647B;display-name=occluder;id=1eef01e3-634a-493b-b1a7-4f65040fa986;mod=0;room-id=11148817;subscriber=1;tmi-sent-ts=1679231590118;user-id=783267696;user-type= :occluder!occluder@occluder.tmi.twitch.tv PRIVMSG #pajlada :-tags lol!"
	v := Parse([]byte(line))
	require.Equal(t, CommandPrivmsg, v.Command().Kind)

	m, err := AsPrivmsg(v)
	require.NoError(t, err)
	require.Equal(t, "occluder", string(m.Login))
	require.Equal(t, "pajlada", string(m.Channel))
	require.Equal(t, "11148817", string(m.RoomID))
	require.Equal(t, "-tags lol!", string(m.Text))
	require.False(t, m.IsAction)
	require.True(t, m.ID.OK)
	require.Equal(t, "1eef01e3-634a-493b-b1a7-4f65040fa986", string(m.ID.Raw))
	require.Equal(t, int64(1679231590118), m.TmiSentTS)
	require.True(t, m.Subscriber)
	require.False(t, m.Mod)
	require.True(t, m.HasSubscriberMonths)
	require.Equal(t, int64(10), m.SubscriberMonths)
}

func TestAsPrivmsgExtendedFields(t *testing.T) {
	line := "@badges=vip/1,staff/1,partner/1;bits=100;client-nonce=abc123;first-msg=1;flags=;id=1eef01e3-634a-493b-b1a7-4f65040fa986;pinned-chat-paid-amount=500;pinned-chat-paid-currency=USD;pinned-chat-paid-exponent=2;pinned-chat-paid-level=ONE;pinned-chat-paid-is-system-message=0;returning-chatter=1;room-id=11148817;tmi-sent-ts=1679231590118 :occluder!occluder@occluder.tmi.twitch.tv PRIVMSG #pajlada :cheer100 hi"
	v := Parse([]byte(line))
	m, err := AsPrivmsg(v)
	require.NoError(t, err)
	require.True(t, m.Vip)
	require.True(t, m.Staff)
	require.True(t, m.Partner)
	require.Equal(t, int64(100), m.Bits)
	require.InDelta(t, 1.0, m.BitsUSD, 0.0001)
	require.Equal(t, "abc123", string(m.ClientNonce))
	require.True(t, m.FirstMsg)
	require.True(t, m.ReturningChatter)
	require.True(t, m.PinnedChatPaid)
	require.Equal(t, int64(500), m.PinnedChatPaidAmount)
	require.Equal(t, "USD", string(m.PinnedChatPaidCurrency))
	require.Equal(t, int64(2), m.PinnedChatPaidExponent)
	require.Equal(t, "ONE", string(m.PinnedChatPaidLevel))
	require.False(t, m.PinnedChatPaidIsSystemMessage)
	require.False(t, m.HasSubscriberMonths)
}

func TestParseClearmsgScenario(t *testing.T) {
	line := "@login=occluder;room-id=;target-msg-id=55dc74c9-a6b2-4443-9b68-3446a5ddb7ed;tmi-sent-ts=1678798254260 :tmi.twitch.tv CLEARMSG #occluder :frozen lol!"
	v := Parse([]byte(line))
	m, err := AsClearmsg(v)
	require.NoError(t, err)
	require.Equal(t, "occluder", string(m.Login))
	require.True(t, m.TargetMsgID.OK)
	require.Equal(t, "55dc74c9-a6b2-4443-9b68-3446a5ddb7ed", string(m.TargetMsgID.Raw))
	require.Equal(t, "occluder", string(m.Channel))
	require.Equal(t, "frozen lol!", string(m.Text))
}

func TestParseRoomstateScenario(t *testing.T) {
	line := "@emote-only=0;followers-only=-1;r9k=0;room-id=783267696;slow=0;subs-only=0 :tmi.twitch.tv ROOMSTATE #occluder"
	v := Parse([]byte(line))
	m, err := AsRoomstate(v)
	require.NoError(t, err)
	require.True(t, m.HasEmoteOnly)
	require.False(t, m.EmoteOnly)
	require.True(t, m.HasFollowersOnly)
	require.Equal(t, int64(-1), m.FollowersOnly)
	require.True(t, m.HasSlow)
	require.Equal(t, int64(0), m.Slow)
}

func TestParseTagEscapeScenario(t *testing.T) {
	v := Parse([]byte(`@badges=a\sb\:c\r\n\\ :nick!u@h PRIVMSG #c :hi`))
	raw, ok := v.Tag(registry.TagBadges)
	require.True(t, ok)
	require.Equal(t, "a b;c\r\n\\", string(decode.Unescape(raw)))
}

func TestParseNoTagsNoPrefix(t *testing.T) {
	v := Parse([]byte("JOIN #foo"))
	_, ok := v.Prefix()
	require.False(t, ok)
	require.Empty(t, v.Tags())
	ch, ok := v.Channel()
	require.True(t, ok)
	require.Equal(t, "foo", string(ch))
}

func TestParseJoinRequiresPrefix(t *testing.T) {
	v := Parse([]byte("JOIN #foo"))
	_, err := AsJoin(v)
	require.Error(t, err)
	var missing *MissingRequired
	require.ErrorAs(t, err, &missing)
}

func TestAsPrivmsgWrongCommand(t *testing.T) {
	v := Parse([]byte("PING :tmi.twitch.tv"))
	_, err := AsPrivmsg(v)
	require.Error(t, err)
	var wrong *WrongCommand
	require.ErrorAs(t, err, &wrong)
}

func TestCTCPActionUnwrap(t *testing.T) {
	line := "\x01ACTION waves\x01"
	v := Parse([]byte("@id=1 :n!n@n PRIVMSG #c :" + line))
	m, err := AsPrivmsg(v)
	require.NoError(t, err)
	require.True(t, m.IsAction)
	require.Equal(t, "waves", string(m.Text))
}
