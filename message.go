package tmi

import (
	"github.com/chromacore/tmi/internal/decode"
	"github.com/chromacore/tmi/internal/registry"
	"github.com/chromacore/tmi/internal/scan"
)

func requireParam(v GenericView, msg string, i int, field string) ([]byte, error) {
	p, ok := v.Param(i)
	if !ok {
		err := &MissingRequired{Message: msg, Field: field}
		recordProjectionError(msg, err)
		return nil, err
	}
	return p, nil
}

func requireText(v GenericView, msg string) ([]byte, error) {
	t, ok := v.TrailingOnly()
	if !ok {
		err := &MissingRequired{Message: msg, Field: "trailing"}
		recordProjectionError(msg, err)
		return nil, err
	}
	return t, nil
}

func requireTag(v GenericView, msg string, id registry.TagID, field string) ([]byte, error) {
	val, ok := v.Tag(id)
	if !ok {
		err := &MissingRequired{Message: msg, Field: field}
		recordProjectionError(msg, err)
		return nil, err
	}
	return decode.Unescape(val), nil
}

// Privmsg is a chat message sent to a channel.
type Privmsg struct {
	Channel     []byte
	RoomID      []byte
	Login       []byte
	DisplayName []byte
	Text        []byte
	IsAction    bool
	UserID      []byte
	ID          decode.ParsedID
	Badges      []decode.Badge
	BadgeInfo   []decode.Badge
	Emotes      []decode.EmoteOccurrence
	Color       []byte
	Bits        int64
	BitsUSD     float64
	TmiSentTS   int64
	Mod         bool
	Subscriber  bool
	Turbo       bool

	// Vip, Staff and Partner are derived from Badges: Twitch sends no
	// dedicated tags for them on PRIVMSG, only badge entries.
	Vip     bool
	Staff   bool
	Partner bool

	// SubscriberMonths is the subscriber badge's version, read with
	// badge-info taking precedence over badges when both carry a
	// subscriber entry (spec.md §9). HasSubscriberMonths is false when
	// neither tag has a subscriber entry.
	SubscriberMonths    int64
	HasSubscriberMonths bool

	Flags            []byte
	FirstMsg         bool
	ReturningChatter bool
	ClientNonce      []byte

	PinnedChatPaid                bool
	PinnedChatPaidAmount          int64
	PinnedChatPaidCurrency        []byte
	PinnedChatPaidExponent        int64
	PinnedChatPaidLevel           []byte
	PinnedChatPaidIsSystemMessage bool

	ReplyParentMsgID       decode.ParsedID
	ReplyParentUserLogin   []byte
	ReplyParentDisplayName []byte
	ReplyParentMsgBody     []byte
	IsReply                bool
}

// bitsUSDRate is the well-known flat Twitch bits rate: 1 bit = $0.01.
const bitsUSDRate = 0.01

// hasBadge reports whether badges contains an entry named name.
func hasBadge(badges []decode.Badge, name string) bool {
	for _, b := range badges {
		if string(b.Name) == name {
			return true
		}
	}
	return false
}

// subscriberMonths finds the subscriber badge's version across the badges
// and badge-info tags, preferring badge-info when both carry an entry
// (spec.md §9). Both tags are read with LastTag so a duplicated key also
// resolves to its last-write-wins value.
func subscriberMonths(v GenericView) (months int64, ok bool) {
	if raw, present := v.LastTag(registry.TagBadgeInfo); present {
		for _, b := range decode.Badges(decode.Unescape(raw)) {
			if string(b.Name) == "subscriber" {
				n, _ := decode.Int(b.Version)
				return n, true
			}
		}
	}
	if raw, present := v.LastTag(registry.TagBadges); present {
		for _, b := range decode.Badges(decode.Unescape(raw)) {
			if string(b.Name) == "subscriber" {
				n, _ := decode.Int(b.Version)
				return n, true
			}
		}
	}
	return 0, false
}

// ctcpActionDelim is the CTCP quoting byte (\x01) wrapping an ACTION ("/me")
// PRIVMSG. Unwrapping it is a content-layer convention, not part of the
// wire tokenizer, so it happens here rather than in Parse.
const ctcpActionDelim = 0x01
const ctcpActionPrefix = "ACTION "

// AsPrivmsg projects a PRIVMSG line. Channel, Login and Text are required;
// everything else degrades to its zero value when the tag is absent.
func AsPrivmsg(v GenericView) (Privmsg, error) {
	if v.Command().Kind != CommandPrivmsg {
		err := &WrongCommand{Want: CommandPrivmsg, Got: v.Command()}
		recordProjectionError("Privmsg", err)
		return Privmsg{}, err
	}
	var m Privmsg
	var err error
	if m.Channel, err = requireParam(v, "Privmsg", 0, "channel"); err != nil {
		return Privmsg{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	if m.Text, err = requireText(v, "Privmsg"); err != nil {
		return Privmsg{}, err
	}
	m.Text, m.IsAction = unwrapCTCPAction(m.Text)
	if nick, ok := v.Nick(); ok {
		m.Login = nick
	} else {
		err := &MissingRequired{Message: "Privmsg", Field: "prefix"}
		recordProjectionError("Privmsg", err)
		return Privmsg{}, err
	}

	if dn, ok := v.TagUnescaped(registry.TagDisplayName); ok {
		m.DisplayName = dn
	}
	if uid, ok := v.Tag(registry.TagUserID); ok {
		m.UserID = uid
	}
	if rid, ok := v.Tag(registry.TagRoomID); ok {
		m.RoomID = rid
	}
	if id, ok := v.Tag(registry.TagIDKey); ok {
		m.ID = decode.ParseID(id)
	}
	if b, ok := v.Tag(registry.TagBadges); ok {
		m.Badges = decode.Badges(decode.Unescape(b))
		m.Vip = hasBadge(m.Badges, "vip")
		m.Staff = hasBadge(m.Badges, "staff")
		m.Partner = hasBadge(m.Badges, "partner")
	}
	if bi, ok := v.Tag(registry.TagBadgeInfo); ok {
		m.BadgeInfo = decode.Badges(decode.Unescape(bi))
	}
	if months, ok := subscriberMonths(v); ok {
		m.SubscriberMonths = months
		m.HasSubscriberMonths = true
	}
	if e, ok := v.Tag(registry.TagEmotes); ok {
		m.Emotes = decode.Emotes(e)
	}
	if c, ok := v.Tag(registry.TagColor); ok {
		m.Color = c
	}
	if bits, ok := v.Tag(registry.TagBits); ok {
		n, ok := decode.Int(bits)
		if !ok {
			err := &BadTagValue{Message: "Privmsg", Tag: "bits", Value: bits}
			recordProjectionError("Privmsg", err)
			return Privmsg{}, err
		}
		m.Bits = n
		m.BitsUSD = float64(n) * bitsUSDRate
	}
	if flags, ok := v.Tag(registry.TagFlags); ok {
		m.Flags = flags
	}
	if fm, ok := v.Tag(registry.TagFirstMsg); ok {
		m.FirstMsg = decode.Bool(fm)
	}
	if rc, ok := v.Tag(registry.TagReturningChatter); ok {
		m.ReturningChatter = decode.Bool(rc)
	}
	if cn, ok := v.Tag(registry.TagClientNonce); ok {
		m.ClientNonce = cn
	}
	if amt, ok := v.Tag(registry.TagPinnedChatPaidAmount); ok {
		m.PinnedChatPaid = true
		m.PinnedChatPaidAmount, _ = decode.Int(amt)
	}
	if cur, ok := v.Tag(registry.TagPinnedChatPaidCurrency); ok {
		m.PinnedChatPaidCurrency = cur
	}
	if exp, ok := v.Tag(registry.TagPinnedChatPaidExponent); ok {
		m.PinnedChatPaidExponent, _ = decode.Int(exp)
	}
	if lvl, ok := v.Tag(registry.TagPinnedChatPaidLevel); ok {
		m.PinnedChatPaidLevel = lvl
	}
	if sysMsg, ok := v.Tag(registry.TagPinnedChatPaidIsSystemMessage); ok {
		m.PinnedChatPaidIsSystemMessage = decode.Bool(sysMsg)
	}
	if ts, ok := v.Tag(registry.TagTmiSentTs); ok {
		n, ok := decode.TimestampMs(ts)
		if !ok {
			err := &BadTagValue{Message: "Privmsg", Tag: "tmi-sent-ts", Value: ts}
			recordProjectionError("Privmsg", err)
			return Privmsg{}, err
		}
		m.TmiSentTS = n
	}
	if mod, ok := v.Tag(registry.TagMod); ok {
		m.Mod = decode.Bool(mod)
	}
	if sub, ok := v.Tag(registry.TagSubscriber); ok {
		m.Subscriber = decode.Bool(sub)
	}
	if turbo, ok := v.Tag(registry.TagTurbo); ok {
		m.Turbo = decode.Bool(turbo)
	}
	if parentID, ok := v.Tag(registry.TagReplyParentMsgID); ok {
		m.ReplyParentMsgID = decode.ParseID(parentID)
		m.IsReply = true
	}
	if login, ok := v.TagUnescaped(registry.TagReplyParentUserLogin); ok {
		m.ReplyParentUserLogin = login
	}
	if dn, ok := v.TagUnescaped(registry.TagReplyParentDisplayName); ok {
		m.ReplyParentDisplayName = dn
	}
	if body, ok := v.TagUnescaped(registry.TagReplyParentMsgBody); ok {
		m.ReplyParentMsgBody = body
	}
	return m, nil
}

// unwrapCTCPAction strips the \x01ACTION ... \x01 envelope Twitch clients
// use for /me messages, returning the inner text and whether it was
// wrapped. Malformed envelopes (missing trailing \x01) are left untouched.
func unwrapCTCPAction(text []byte) (inner []byte, isAction bool) {
	if len(text) < 2 || text[0] != ctcpActionDelim || text[len(text)-1] != ctcpActionDelim {
		return text, false
	}
	body := text[1 : len(text)-1]
	if len(body) < len(ctcpActionPrefix) || string(body[:len(ctcpActionPrefix)]) != ctcpActionPrefix {
		return text, false
	}
	return body[len(ctcpActionPrefix):], true
}

// UsernoticeKind is the closed set of well-known msg-id values on a
// USERNOTICE. UsernoticeOther covers anything else Twitch might add.
type UsernoticeKind uint8

const (
	UsernoticeOther UsernoticeKind = iota
	UsernoticeSub
	UsernoticeResub
	UsernoticeSubgift
	UsernoticeSubmysterygift
	UsernoticeGiftPaidUpgrade
	UsernoticeRewardgift
	UsernoticeAnonGiftPaidUpgrade
	UsernoticeRaid
	UsernoticeUnraid
	UsernoticeRitual
	UsernoticeBitsBadgeTier
	UsernoticeAnnouncement
	UsernoticePrimePaidUpgrade
	UsernoticeStandardPayForward
)

var usernoticeKinds = map[string]UsernoticeKind{
	"sub":                  UsernoticeSub,
	"resub":                UsernoticeResub,
	"subgift":              UsernoticeSubgift,
	"submysterygift":       UsernoticeSubmysterygift,
	"giftpaidupgrade":      UsernoticeGiftPaidUpgrade,
	"rewardgift":           UsernoticeRewardgift,
	"anongiftpaidupgrade":  UsernoticeAnonGiftPaidUpgrade,
	"raid":                 UsernoticeRaid,
	"unraid":               UsernoticeUnraid,
	"ritual":               UsernoticeRitual,
	"bitsbadgetier":        UsernoticeBitsBadgeTier,
	"announcement":         UsernoticeAnnouncement,
	"primepaidupgrade":     UsernoticePrimePaidUpgrade,
	"standardpayforward":   UsernoticeStandardPayForward,
}

// Usernotice is a system-generated channel event: sub, resub, raid, and so
// on. Kind tells which Param* fields are meaningful, but every Param* field
// is filled from its msg-param-* tag whenever that tag is present, whatever
// the Kind; a field whose tag is absent is left at its zero value rather
// than erroring, since Twitch is free to add msg-param-* tags to existing
// kinds over time.
type Usernotice struct {
	Channel     []byte
	SystemMsg   []byte
	Login       []byte
	DisplayName []byte
	Text        []byte
	HasText     bool
	Kind        UsernoticeKind
	RawMsgID    []byte
	ID          decode.ParsedID
	Badges      []decode.Badge
	TmiSentTS   int64

	ParamCumulativeMonths int64
	ParamShouldShareStreak bool
	ParamStreakMonths      int64
	ParamSubPlan           []byte
	ParamSubPlanName       []byte

	ParamRecipientDisplayName []byte
	ParamRecipientID          []byte
	ParamRecipientUserName    []byte
	ParamGiftMonths           int64

	ParamMassGiftCount int64
	ParamSenderCount   int64

	ParamPromoName       []byte
	ParamPromoGiftTotal  int64

	ParamRaiderDisplayName []byte
	ParamViewerCount       int64

	ParamSenderLogin []byte
	ParamSenderName  []byte

	// ParamColor is msg-param-color, meaningful only for
	// UsernoticeAnnouncement. Twitch omits the tag for the default
	// announcement color, so AsUsernotice fills in announcementDefaultColor
	// when the kind is Announcement and the tag is absent (spec.md §4.7).
	ParamColor []byte
}

// announcementDefaultColor is the color an Announcement USERNOTICE implies
// when msg-param-color is absent from the wire.
var announcementDefaultColor = []byte("PRIMARY")

// AsUsernotice projects a USERNOTICE line.
func AsUsernotice(v GenericView) (Usernotice, error) {
	if v.Command().Kind != CommandUsernotice {
		err := &WrongCommand{Want: CommandUsernotice, Got: v.Command()}
		recordProjectionError("Usernotice", err)
		return Usernotice{}, err
	}
	var m Usernotice
	var err error
	if m.Channel, err = requireParam(v, "Usernotice", 0, "channel"); err != nil {
		return Usernotice{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	if m.SystemMsg, err = requireTag(v, "Usernotice", registry.TagSystemMsg, "system-msg"); err != nil {
		return Usernotice{}, err
	}
	if m.Login, err = requireTag(v, "Usernotice", registry.TagLogin, "login"); err != nil {
		return Usernotice{}, err
	}
	if msgID, ok := v.Tag(registry.TagMsgID); ok {
		m.RawMsgID = msgID
		m.Kind = usernoticeKinds[string(msgID)] // zero value (UsernoticeOther) for unknown ids
	}
	if t, ok := v.TrailingOnly(); ok {
		m.Text = t
		m.HasText = true
	}
	if dn, ok := v.TagUnescaped(registry.TagDisplayName); ok {
		m.DisplayName = dn
	}
	if id, ok := v.Tag(registry.TagIDKey); ok {
		m.ID = decode.ParseID(id)
	}
	if b, ok := v.Tag(registry.TagBadges); ok {
		m.Badges = decode.Badges(decode.Unescape(b))
	}
	if ts, ok := v.Tag(registry.TagTmiSentTs); ok {
		n, ok := decode.TimestampMs(ts)
		if !ok {
			err := &BadTagValue{Message: "Usernotice", Tag: "tmi-sent-ts", Value: ts}
			recordProjectionError("Usernotice", err)
			return Usernotice{}, err
		}
		m.TmiSentTS = n
	}

	if months, ok := v.Tag(registry.TagMsgParamCumulativeMonths); ok {
		m.ParamCumulativeMonths, _ = decode.Int(months)
	}
	if share, ok := v.Tag(registry.TagMsgParamShouldShareStreak); ok {
		m.ParamShouldShareStreak = decode.Bool(share)
	}
	if streak, ok := v.Tag(registry.TagMsgParamStreakMonths); ok {
		m.ParamStreakMonths, _ = decode.Int(streak)
	}
	if plan, ok := v.Tag(registry.TagMsgParamSubPlan); ok {
		m.ParamSubPlan = plan
	}
	if planName, ok := v.TagUnescaped(registry.TagMsgParamSubPlanName); ok {
		m.ParamSubPlanName = planName
	}

	if rdn, ok := v.TagUnescaped(registry.TagMsgParamRecipientDisplayName); ok {
		m.ParamRecipientDisplayName = rdn
	}
	if rid, ok := v.Tag(registry.TagMsgParamRecipientID); ok {
		m.ParamRecipientID = rid
	}
	if run, ok := v.Tag(registry.TagMsgParamRecipientUserName); ok {
		m.ParamRecipientUserName = run
	}
	if gm, ok := v.Tag(registry.TagMsgParamGiftMonths); ok {
		m.ParamGiftMonths, _ = decode.Int(gm)
	}

	if mgc, ok := v.Tag(registry.TagMsgParamMassGiftCount); ok {
		m.ParamMassGiftCount, _ = decode.Int(mgc)
	}
	if sc, ok := v.Tag(registry.TagMsgParamSenderCount); ok {
		m.ParamSenderCount, _ = decode.Int(sc)
	}

	if pn, ok := v.TagUnescaped(registry.TagMsgParamPromoName); ok {
		m.ParamPromoName = pn
	}
	if pgt, ok := v.Tag(registry.TagMsgParamPromoGiftTotal); ok {
		m.ParamPromoGiftTotal, _ = decode.Int(pgt)
	}

	if rdn, ok := v.TagUnescaped(registry.TagMsgParamDisplayName); ok {
		m.ParamRaiderDisplayName = rdn
	}
	if vc, ok := v.Tag(registry.TagMsgParamViewerCount); ok {
		m.ParamViewerCount, _ = decode.Int(vc)
	}

	if sl, ok := v.Tag(registry.TagMsgParamSenderLogin); ok {
		m.ParamSenderLogin = sl
	}
	if sn, ok := v.TagUnescaped(registry.TagMsgParamSenderName); ok {
		m.ParamSenderName = sn
	}

	if color, ok := v.Tag(registry.TagMsgParamColor); ok {
		m.ParamColor = color
	} else if m.Kind == UsernoticeAnnouncement {
		m.ParamColor = announcementDefaultColor
	}

	return m, nil
}

// Clearchat is a timeout/ban event, or (with HasTarget false) a /clear.
type Clearchat struct {
	Channel      []byte
	TargetLogin  []byte
	HasTarget    bool
	BanDuration  int64
	HasDuration  bool
	TargetUserID []byte
	TmiSentTS    int64
}

// AsClearchat projects a CLEARCHAT line.
func AsClearchat(v GenericView) (Clearchat, error) {
	if v.Command().Kind != CommandClearchat {
		err := &WrongCommand{Want: CommandClearchat, Got: v.Command()}
		recordProjectionError("Clearchat", err)
		return Clearchat{}, err
	}
	var m Clearchat
	var err error
	if m.Channel, err = requireParam(v, "Clearchat", 0, "channel"); err != nil {
		return Clearchat{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	if login, ok := v.TrailingOnly(); ok {
		m.TargetLogin = login
		m.HasTarget = true
	}
	if dur, ok := v.Tag(registry.TagBanDuration); ok {
		n, ok := decode.Int(dur)
		if !ok {
			err := &BadTagValue{Message: "Clearchat", Tag: "ban-duration", Value: dur}
			recordProjectionError("Clearchat", err)
			return Clearchat{}, err
		}
		m.BanDuration = n
		m.HasDuration = true
	}
	if uid, ok := v.Tag(registry.TagTargetUserID); ok {
		m.TargetUserID = uid
	}
	if ts, ok := v.Tag(registry.TagTmiSentTs); ok {
		n, _ := decode.TimestampMs(ts)
		m.TmiSentTS = n
	}
	return m, nil
}

// Clearmsg is a single-message deletion event.
type Clearmsg struct {
	Channel     []byte
	Text        []byte
	Login       []byte
	TargetMsgID decode.ParsedID
}

// AsClearmsg projects a CLEARMSG line.
func AsClearmsg(v GenericView) (Clearmsg, error) {
	if v.Command().Kind != CommandClearmsg {
		err := &WrongCommand{Want: CommandClearmsg, Got: v.Command()}
		recordProjectionError("Clearmsg", err)
		return Clearmsg{}, err
	}
	var m Clearmsg
	var err error
	if m.Channel, err = requireParam(v, "Clearmsg", 0, "channel"); err != nil {
		return Clearmsg{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	if m.Text, err = requireText(v, "Clearmsg"); err != nil {
		return Clearmsg{}, err
	}
	if login, ok := v.Tag(registry.TagLogin); ok {
		m.Login = login
	}
	if id, ok := v.Tag(registry.TagTargetMsgID); ok {
		m.TargetMsgID = decode.ParseID(id)
	}
	return m, nil
}

// Roomstate is a channel settings snapshot or delta.
type Roomstate struct {
	Channel        []byte
	EmoteOnly      bool
	HasEmoteOnly   bool
	FollowersOnly  int64 // -1 disabled, 0 all, N minutes
	HasFollowersOnly bool
	R9K            bool
	HasR9K         bool
	Slow           int64
	HasSlow        bool
	SubsOnly       bool
	HasSubsOnly    bool
	RoomID         []byte
}

// AsRoomstate projects a ROOMSTATE line.
func AsRoomstate(v GenericView) (Roomstate, error) {
	if v.Command().Kind != CommandRoomstate {
		err := &WrongCommand{Want: CommandRoomstate, Got: v.Command()}
		recordProjectionError("Roomstate", err)
		return Roomstate{}, err
	}
	var m Roomstate
	var err error
	if m.Channel, err = requireParam(v, "Roomstate", 0, "channel"); err != nil {
		return Roomstate{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	if eo, ok := v.Tag(registry.TagEmoteOnly); ok {
		m.EmoteOnly = decode.Bool(eo)
		m.HasEmoteOnly = true
	}
	if fo, ok := v.Tag(registry.TagFollowersOnly); ok {
		n, ok := decode.Int(fo)
		if !ok {
			err := &BadTagValue{Message: "Roomstate", Tag: "followers-only", Value: fo}
			recordProjectionError("Roomstate", err)
			return Roomstate{}, err
		}
		m.FollowersOnly = n
		m.HasFollowersOnly = true
	}
	if r9k, ok := v.Tag(registry.TagR9K); ok {
		m.R9K = decode.Bool(r9k)
		m.HasR9K = true
	}
	if slow, ok := v.Tag(registry.TagSlow); ok {
		n, ok := decode.Int(slow)
		if !ok {
			err := &BadTagValue{Message: "Roomstate", Tag: "slow", Value: slow}
			recordProjectionError("Roomstate", err)
			return Roomstate{}, err
		}
		m.Slow = n
		m.HasSlow = true
	}
	if so, ok := v.Tag(registry.TagSubsOnly); ok {
		m.SubsOnly = decode.Bool(so)
		m.HasSubsOnly = true
	}
	if rid, ok := v.Tag(registry.TagRoomID); ok {
		m.RoomID = rid
	}
	return m, nil
}

// Userstate carries the local user's state for a channel on join/send.
type Userstate struct {
	Channel     []byte
	DisplayName []byte
	Color       []byte
	Badges      []decode.Badge
	EmoteSets   []byte
	Mod         bool
	Subscriber  bool
	Turbo       bool
	UserType    []byte
}

// AsUserstate projects a USERSTATE line.
func AsUserstate(v GenericView) (Userstate, error) {
	if v.Command().Kind != CommandUserstate {
		err := &WrongCommand{Want: CommandUserstate, Got: v.Command()}
		recordProjectionError("Userstate", err)
		return Userstate{}, err
	}
	var m Userstate
	var err error
	if m.Channel, err = requireParam(v, "Userstate", 0, "channel"); err != nil {
		return Userstate{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	if dn, ok := v.TagUnescaped(registry.TagDisplayName); ok {
		m.DisplayName = dn
	}
	if c, ok := v.Tag(registry.TagColor); ok {
		m.Color = c
	}
	if b, ok := v.Tag(registry.TagBadges); ok {
		m.Badges = decode.Badges(decode.Unescape(b))
	}
	if es, ok := v.Tag(registry.TagEmoteSets); ok {
		m.EmoteSets = es
	}
	if mod, ok := v.Tag(registry.TagMod); ok {
		m.Mod = decode.Bool(mod)
	}
	if sub, ok := v.Tag(registry.TagSubscriber); ok {
		m.Subscriber = decode.Bool(sub)
	}
	if turbo, ok := v.Tag(registry.TagTurbo); ok {
		m.Turbo = decode.Bool(turbo)
	}
	if ut, ok := v.Tag(registry.TagUserType); ok {
		m.UserType = ut
	}
	return m, nil
}

// GlobalUserstate carries the local user's global state after CAP ack.
type GlobalUserstate struct {
	DisplayName []byte
	Color       []byte
	Badges      []decode.Badge
	EmoteSets   []byte
	UserID      []byte
	UserType    []byte
}

// AsGlobalUserstate projects a GLOBALUSERSTATE line.
func AsGlobalUserstate(v GenericView) (GlobalUserstate, error) {
	if v.Command().Kind != CommandGlobaluserstate {
		err := &WrongCommand{Want: CommandGlobaluserstate, Got: v.Command()}
		recordProjectionError("GlobalUserstate", err)
		return GlobalUserstate{}, err
	}
	var m GlobalUserstate
	if dn, ok := v.TagUnescaped(registry.TagDisplayName); ok {
		m.DisplayName = dn
	}
	if c, ok := v.Tag(registry.TagColor); ok {
		m.Color = c
	}
	if b, ok := v.Tag(registry.TagBadges); ok {
		m.Badges = decode.Badges(decode.Unescape(b))
	}
	if es, ok := v.Tag(registry.TagEmoteSets); ok {
		m.EmoteSets = es
	}
	if uid, ok := v.Tag(registry.TagUserID); ok {
		m.UserID = uid
	}
	if ut, ok := v.Tag(registry.TagUserType); ok {
		m.UserType = ut
	}
	return m, nil
}

// Whisper is a direct message between two users.
type Whisper struct {
	FromLogin []byte
	ToLogin   []byte
	Text      []byte
	MessageID []byte
	ThreadID  []byte
}

// AsWhisper projects a WHISPER line.
func AsWhisper(v GenericView) (Whisper, error) {
	if v.Command().Kind != CommandWhisper {
		err := &WrongCommand{Want: CommandWhisper, Got: v.Command()}
		recordProjectionError("Whisper", err)
		return Whisper{}, err
	}
	var m Whisper
	var err error
	if nick, ok := v.Nick(); ok {
		m.FromLogin = nick
	} else {
		err := &MissingRequired{Message: "Whisper", Field: "prefix"}
		recordProjectionError("Whisper", err)
		return Whisper{}, err
	}
	if m.ToLogin, err = requireParam(v, "Whisper", 0, "target"); err != nil {
		return Whisper{}, err
	}
	if m.Text, err = requireText(v, "Whisper"); err != nil {
		return Whisper{}, err
	}
	if id, ok := v.Tag(registry.TagMessageID); ok {
		m.MessageID = id
	}
	if tid, ok := v.Tag(registry.TagThreadID); ok {
		m.ThreadID = tid
	}
	return m, nil
}

// NoticeKind is the closed set of well-known msg-id values on a NOTICE.
// NoticeOther covers every msg-id Twitch might add later.
type NoticeKind uint8

const (
	NoticeOther NoticeKind = iota
	NoticeMsgBanned
	NoticeMsgChannelSuspended
	NoticeMsgRateLimit
	NoticeMsgTimedout
	NoticeAlreadyBanned
	NoticeBadAuth
	NoticeMsgDuplicate
	NoticeUnrecognizedCmd
	NoticeNoPermission
	NoticeSlowOff
	NoticeSlowOn
	NoticeFollowersOff
	NoticeFollowersOn
	NoticeR9kOff
	NoticeR9kOn
	NoticeSubsOff
	NoticeSubsOn
)

var noticeKinds = map[string]NoticeKind{
	"msg_banned":             NoticeMsgBanned,
	"msg_channel_suspended":  NoticeMsgChannelSuspended,
	"msg_ratelimit":          NoticeMsgRateLimit,
	"msg_timedout":           NoticeMsgTimedout,
	"already_banned":         NoticeAlreadyBanned,
	"bad_auth":               NoticeBadAuth,
	"msg_duplicate":          NoticeMsgDuplicate,
	"unrecognized_cmd":       NoticeUnrecognizedCmd,
	"no_permission":          NoticeNoPermission,
	"slow_off":               NoticeSlowOff,
	"slow_on":                NoticeSlowOn,
	"followers_off":          NoticeFollowersOff,
	"followers_on":           NoticeFollowersOn,
	"r9k_off":                NoticeR9kOff,
	"r9k_on":                 NoticeR9kOn,
	"subs_off":               NoticeSubsOff,
	"subs_on":                NoticeSubsOn,
}

// Notice is a server-generated informational or error line.
type Notice struct {
	Channel  []byte
	HasChannel bool
	Text     []byte
	Kind     NoticeKind
	RawMsgID []byte
}

// AsNotice projects a NOTICE line.
func AsNotice(v GenericView) (Notice, error) {
	if v.Command().Kind != CommandNotice {
		err := &WrongCommand{Want: CommandNotice, Got: v.Command()}
		recordProjectionError("Notice", err)
		return Notice{}, err
	}
	var m Notice
	var err error
	if ch, ok := v.Channel(); ok {
		m.Channel = ch
		m.HasChannel = true
	}
	if m.Text, err = requireText(v, "Notice"); err != nil {
		return Notice{}, err
	}
	if msgID, ok := v.Tag(registry.TagMsgID); ok {
		m.RawMsgID = msgID
		m.Kind = noticeKinds[string(msgID)]
	}
	return m, nil
}

// Ping is a server keepalive challenge; Text is the token to echo in Pong.
type Ping struct {
	Text []byte
}

// AsPing projects a PING line.
func AsPing(v GenericView) (Ping, error) {
	if v.Command().Kind != CommandPing {
		err := &WrongCommand{Want: CommandPing, Got: v.Command()}
		recordProjectionError("Ping", err)
		return Ping{}, err
	}
	t, _ := v.Text()
	return Ping{Text: t}, nil
}

// Pong is the server's reply to a client-initiated PING.
type Pong struct {
	Text []byte
}

// AsPong projects a PONG line.
func AsPong(v GenericView) (Pong, error) {
	if v.Command().Kind != CommandPong {
		err := &WrongCommand{Want: CommandPong, Got: v.Command()}
		recordProjectionError("Pong", err)
		return Pong{}, err
	}
	t, _ := v.Text()
	return Pong{Text: t}, nil
}

// Join is a channel-join notification.
type Join struct {
	Channel []byte
	Login   []byte
}

// AsJoin projects a JOIN line.
func AsJoin(v GenericView) (Join, error) {
	if v.Command().Kind != CommandJoin {
		err := &WrongCommand{Want: CommandJoin, Got: v.Command()}
		recordProjectionError("Join", err)
		return Join{}, err
	}
	var m Join
	var err error
	if nick, ok := v.Nick(); ok {
		m.Login = nick
	} else {
		err := &MissingRequired{Message: "Join", Field: "prefix"}
		recordProjectionError("Join", err)
		return Join{}, err
	}
	if m.Channel, err = requireParam(v, "Join", 0, "channel"); err != nil {
		return Join{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	return m, nil
}

// Part is a channel-leave notification.
type Part struct {
	Channel []byte
	Login   []byte
}

// AsPart projects a PART line.
func AsPart(v GenericView) (Part, error) {
	if v.Command().Kind != CommandPart {
		err := &WrongCommand{Want: CommandPart, Got: v.Command()}
		recordProjectionError("Part", err)
		return Part{}, err
	}
	var m Part
	var err error
	if nick, ok := v.Nick(); ok {
		m.Login = nick
	} else {
		err := &MissingRequired{Message: "Part", Field: "prefix"}
		recordProjectionError("Part", err)
		return Part{}, err
	}
	if m.Channel, err = requireParam(v, "Part", 0, "channel"); err != nil {
		return Part{}, err
	}
	if len(m.Channel) > 0 && m.Channel[0] == '#' {
		m.Channel = m.Channel[1:]
	}
	return m, nil
}

// Reconnect tells the client to reconnect; it carries no fields.
type Reconnect struct{}

// AsReconnect projects a RECONNECT line.
func AsReconnect(v GenericView) (Reconnect, error) {
	if v.Command().Kind != CommandReconnect {
		err := &WrongCommand{Want: CommandReconnect, Got: v.Command()}
		recordProjectionError("Reconnect", err)
		return Reconnect{}, err
	}
	return Reconnect{}, nil
}

// Cap is a capability-negotiation reply (CAP * ACK/NAK/LS ...).
type Cap struct {
	SubCommand []byte
	Params     [][]byte
}

// AsCap projects a CAP line.
func AsCap(v GenericView) (Cap, error) {
	if v.Command().Kind != CommandCap {
		err := &WrongCommand{Want: CommandCap, Got: v.Command()}
		recordProjectionError("Cap", err)
		return Cap{}, err
	}
	var m Cap
	var err error
	if m.SubCommand, err = requireParam(v, "Cap", 1, "subcommand"); err != nil {
		return Cap{}, err
	}
	for i := 2; ; i++ {
		p, ok := v.Param(i)
		if !ok {
			break
		}
		m.Params = append(m.Params, p)
	}
	if t, ok := v.TrailingOnly(); ok {
		m.Params = append(m.Params, t)
	}
	return m, nil
}

// NumericReply is a server numeric reply (001-004 welcome sequence,
// 353/366 NAMES listing, 372/375/376 MOTD), normalized into a single shape
// since none of these carry per-kind structure beyond their params/text.
type NumericReply struct {
	Kind    CommandKind
	Params  [][]byte
	Text    []byte
	HasText bool

	// Channel is the 353 NAMES reply's last param, normalized: any
	// server-prefixed segment before the '#' is stripped, leaving a bare
	// channel name. Empty for every other numeric.
	Channel []byte
}

// AsNumericReply projects any of the recognized numeric-reply commands.
func AsNumericReply(v GenericView) (NumericReply, error) {
	if !v.Command().IsNumeric() {
		err := &WrongCommand{Want: Command001, Got: v.Command()}
		recordProjectionError("NumericReply", err)
		return NumericReply{}, err
	}
	var m NumericReply
	m.Kind = v.Command().Kind
	for i := range v.Params() {
		p, _ := v.Param(i)
		m.Params = append(m.Params, p)
	}
	if t, ok := v.TrailingOnly(); ok {
		m.Text = t
		m.HasText = true
	}
	if m.Kind == Command353 && len(m.Params) > 0 {
		m.Channel = normalizeNamesChannel(m.Params[len(m.Params)-1])
	}
	return m, nil
}

// normalizeNamesChannel strips any server-prefixed segment before the
// '#' from a 353 NAMES reply's channel param, leaving a bare channel
// name (spec.md §4.7).
func normalizeNamesChannel(param []byte) []byte {
	if i := scan.IndexByte(param, '#'); i != len(param) {
		return param[i+1:]
	}
	return param
}
