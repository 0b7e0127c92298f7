package tmi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsUsernoticeSub(t *testing.T) {
	line := "@badges=subscriber/0;color=;display-name=TWW2;emotes=;id=e9176cd8-5e22-4684-ad40-ce53c2561c5e;login=tww2;mod=0;msg-id=sub;msg-param-cumulative-months=1;msg-param-should-share-streak=0;msg-param-sub-plan=Prime;msg-param-sub-plan-name=Channel\\sSubscription\\s(mr_woodchuck);room-id=56379257;subscriber=0;system-msg=TWW2\\ssubscribed\\swith\\sTwitch\\sPrime.;tmi-sent-ts=1507246572675;turbo=0;user-id=13405587;user-type= :tmi.twitch.tv USERNOTICE #mr_woodchuck :Great stream -- keep it up!"
	v := Parse([]byte(line))
	m, err := AsUsernotice(v)
	require.NoError(t, err)
	require.Equal(t, UsernoticeSub, m.Kind)
	require.Equal(t, "mr_woodchuck", string(m.Channel))
	require.Equal(t, "tww2", string(m.Login))
	require.True(t, m.HasText)
	require.Equal(t, "Great stream -- keep it up!", string(m.Text))
	require.Equal(t, int64(1), m.ParamCumulativeMonths)
	require.Equal(t, "Prime", string(m.ParamSubPlan))
}

func TestAsUsernoticeRaidNoText(t *testing.T) {
	line := "@msg-id=raid;msg-param-displayName=RaidingUser;msg-param-viewerCount=9;login=raidinguser;system-msg=9\\sraiders\\sfrom\\sRaidingUser\\shave\\sjoined! :tmi.twitch.tv USERNOTICE #destination"
	v := Parse([]byte(line))
	m, err := AsUsernotice(v)
	require.NoError(t, err)
	require.Equal(t, UsernoticeRaid, m.Kind)
	require.False(t, m.HasText)
	require.Equal(t, "RaidingUser", string(m.ParamRaiderDisplayName))
	require.Equal(t, int64(9), m.ParamViewerCount)
}

func TestAsUsernoticeUnknownKindDoesNotError(t *testing.T) {
	line := "@login=x;system-msg=hi;msg-id=some_future_kind :tmi.twitch.tv USERNOTICE #c"
	v := Parse([]byte(line))
	m, err := AsUsernotice(v)
	require.NoError(t, err)
	require.Equal(t, UsernoticeOther, m.Kind)
	require.Equal(t, "some_future_kind", string(m.RawMsgID))
}

func TestAsClearchatTimeout(t *testing.T) {
	line := "@ban-duration=600;room-id=12345;target-user-id=98765;tmi-sent-ts=1642715756806 :tmi.twitch.tv CLEARCHAT #dallas :ronni"
	v := Parse([]byte(line))
	m, err := AsClearchat(v)
	require.NoError(t, err)
	require.Equal(t, "dallas", string(m.Channel))
	require.True(t, m.HasTarget)
	require.Equal(t, "ronni", string(m.TargetLogin))
	require.True(t, m.HasDuration)
	require.Equal(t, int64(600), m.BanDuration)
}

func TestAsClearchatClearAll(t *testing.T) {
	v := Parse([]byte("@room-id=12345;tmi-sent-ts=1642715756806 :tmi.twitch.tv CLEARCHAT #dallas"))
	m, err := AsClearchat(v)
	require.NoError(t, err)
	require.False(t, m.HasTarget)
	require.False(t, m.HasDuration)
}

func TestAsWhisper(t *testing.T) {
	line := "@turbo=0;message-id=123;thread-id=1234_5678;user-id=1234 :foo!foo@foo.tmi.twitch.tv WHISPER bar :hi there!"
	v := Parse([]byte(line))
	m, err := AsWhisper(v)
	require.NoError(t, err)
	require.Equal(t, "foo", string(m.FromLogin))
	require.Equal(t, "bar", string(m.ToLogin))
	require.Equal(t, "hi there!", string(m.Text))
	require.Equal(t, "1234_5678", string(m.ThreadID))
}

func TestAsNoticeKnownKind(t *testing.T) {
	v := Parse([]byte("@msg-id=slow_on :tmi.twitch.tv NOTICE #dallas :This room is now in slow mode."))
	m, err := AsNotice(v)
	require.NoError(t, err)
	require.True(t, m.HasChannel)
	require.Equal(t, "dallas", string(m.Channel))
	require.Equal(t, NoticeSlowOn, m.Kind)
}

func TestAsCap(t *testing.T) {
	v := Parse([]byte("CAP * ACK :twitch.tv/membership twitch.tv/tags"))
	m, err := AsCap(v)
	require.NoError(t, err)
	require.Equal(t, "ACK", string(m.SubCommand))
	require.Len(t, m.Params, 1)
	require.Equal(t, "twitch.tv/membership twitch.tv/tags", string(m.Params[0]))
}

func TestAsNumericReplyNames(t *testing.T) {
	v := Parse([]byte(":tmi.twitch.tv 353 occluder = #pajlada :occluder"))
	m, err := AsNumericReply(v)
	require.NoError(t, err)
	require.Equal(t, Command353, m.Kind)
	require.True(t, m.HasText)
	require.Equal(t, "occluder", string(m.Text))
	require.Equal(t, "pajlada", string(m.Channel))
}

func TestAsNumericReplyNamesStripsServerPrefix(t *testing.T) {
	v := Parse([]byte(":tmi.twitch.tv 353 occluder = tmi.twitch.tv/#pajlada :occluder"))
	m, err := AsNumericReply(v)
	require.NoError(t, err)
	require.Equal(t, "pajlada", string(m.Channel))
}

func TestAsNumericReplyNonNamesHasNoChannel(t *testing.T) {
	v := Parse([]byte(":tmi.twitch.tv 366 occluder #pajlada :End of /NAMES list"))
	m, err := AsNumericReply(v)
	require.NoError(t, err)
	require.Equal(t, Command366, m.Kind)
	require.Empty(t, m.Channel)
}

func TestAsUserstate(t *testing.T) {
	v := Parse([]byte("@badges=;color=#0D4200;display-name=ronni;emote-sets=0;mod=1;subscriber=0;turbo=1;user-type=staff :tmi.twitch.tv USERSTATE #dallas"))
	m, err := AsUserstate(v)
	require.NoError(t, err)
	require.Equal(t, "dallas", string(m.Channel))
	require.True(t, m.Mod)
	require.True(t, m.Turbo)
	require.Equal(t, "staff", string(m.UserType))
}

func TestAsGlobalUserstate(t *testing.T) {
	v := Parse([]byte("@badge-info=;badges=;color=#0D4200;display-name=dallas;emote-sets=0,33,50,237;user-id=26301881;user-type= :tmi.twitch.tv GLOBALUSERSTATE"))
	m, err := AsGlobalUserstate(v)
	require.NoError(t, err)
	require.Equal(t, "dallas", string(m.DisplayName))
	require.Equal(t, "26301881", string(m.UserID))
}

func TestAsJoinPart(t *testing.T) {
	v := Parse([]byte(":ronni!ronni@ronni.tmi.twitch.tv JOIN #dallas"))
	j, err := AsJoin(v)
	require.NoError(t, err)
	require.Equal(t, "ronni", string(j.Login))
	require.Equal(t, "dallas", string(j.Channel))

	v = Parse([]byte(":ronni!ronni@ronni.tmi.twitch.tv PART #dallas"))
	p, err := AsPart(v)
	require.NoError(t, err)
	require.Equal(t, "ronni", string(p.Login))
}

func TestAsReconnect(t *testing.T) {
	v := Parse([]byte("RECONNECT"))
	_, err := AsReconnect(v)
	require.NoError(t, err)
}
