// Package registry holds the closed set of well-known Twitch IRCv3 tag
// keys and dispatches a raw key slice to its TagID in expected O(1) time.
//
// The table is an open-addressed array built once at init from the xxhash
// of each known key; lookups hash the input key and probe linearly from
// there, never falling back to a per-key string comparison chain. This is
// the "true perfect hash" successor described for this component: with a
// closed, small (~60 entry) key set, open addressing over a lightly loaded
// table behaves like a perfect hash in practice without needing to compute
// one offline.
package registry

import "github.com/cespare/xxhash/v2"

// TagID identifies a well-known tag key. The zero value, TagUnknown, is
// returned for any key outside the closed set; such keys remain visible
// through the generic view but are ignored by the typed projection layer.
type TagID uint8

const (
	TagUnknown TagID = iota
	TagBadges
	TagBadgeInfo
	TagBanDuration
	TagBanReason
	TagBits
	TagClientNonce
	TagColor
	TagCustomRewardID
	TagDisplayName
	TagEmotes
	TagEmoteOnly
	TagEmoteSets
	TagFirstMsg
	TagFlags
	TagFollowersOnly
	TagIDKey // the `id` tag itself
	TagLogin
	TagMessageID
	TagMod
	TagMsgID
	TagMsgParamColor
	TagMsgParamCumulativeMonths
	TagMsgParamDisplayName
	TagMsgParamGiftMonths
	TagMsgParamLogin
	TagMsgParamMassGiftCount
	TagMsgParamMonths
	TagMsgParamPromoGiftTotal
	TagMsgParamPromoName
	TagMsgParamRecipientDisplayName
	TagMsgParamRecipientID
	TagMsgParamRecipientUserName
	TagMsgParamSenderCount
	TagMsgParamSenderLogin
	TagMsgParamSenderName
	TagMsgParamShouldShareStreak
	TagMsgParamStreakMonths
	TagMsgParamSubPlan
	TagMsgParamSubPlanName
	TagMsgParamThreshold
	TagMsgParamViewerCount
	TagPinnedChatPaidAmount
	TagPinnedChatPaidCurrency
	TagPinnedChatPaidExponent
	TagPinnedChatPaidLevel
	TagPinnedChatPaidIsSystemMessage
	TagR9K
	TagReplyParentDisplayName
	TagReplyParentMsgBody
	TagReplyParentMsgID
	TagReplyParentUserID
	TagReplyParentUserLogin
	TagReturningChatter
	TagRituals
	TagRoomID
	TagSlow
	TagSubscriber
	TagSubsOnly
	TagSystemMsg
	TagTargetMsgID
	TagTargetUserID
	TagThreadID
	TagTmiSentTs
	TagTurbo
	TagUserID
	TagUserType

	tagCount
)

var names = map[TagID]string{
	TagBadges:                        "badges",
	TagBadgeInfo:                     "badge-info",
	TagBanDuration:                   "ban-duration",
	TagBanReason:                     "ban-reason",
	TagBits:                          "bits",
	TagClientNonce:                   "client-nonce",
	TagColor:                         "color",
	TagCustomRewardID:                "custom-reward-id",
	TagDisplayName:                   "display-name",
	TagEmotes:                        "emotes",
	TagEmoteOnly:                     "emote-only",
	TagEmoteSets:                     "emote-sets",
	TagFirstMsg:                      "first-msg",
	TagFlags:                         "flags",
	TagFollowersOnly:                 "followers-only",
	TagIDKey:                           "id",
	TagLogin:                         "login",
	TagMessageID:                     "message-id",
	TagMod:                           "mod",
	TagMsgID:                         "msg-id",
	TagMsgParamColor:                 "msg-param-color",
	TagMsgParamCumulativeMonths:      "msg-param-cumulative-months",
	TagMsgParamDisplayName:           "msg-param-displayName",
	TagMsgParamGiftMonths:            "msg-param-gift-months",
	TagMsgParamLogin:                 "msg-param-login",
	TagMsgParamMassGiftCount:         "msg-param-mass-gift-count",
	TagMsgParamMonths:                "msg-param-months",
	TagMsgParamPromoGiftTotal:        "msg-param-promo-gift-total",
	TagMsgParamPromoName:             "msg-param-promo-name",
	TagMsgParamRecipientDisplayName:  "msg-param-recipient-display-name",
	TagMsgParamRecipientID:           "msg-param-recipient-id",
	TagMsgParamRecipientUserName:     "msg-param-recipient-user-name",
	TagMsgParamSenderCount:           "msg-param-sender-count",
	TagMsgParamSenderLogin:           "msg-param-sender-login",
	TagMsgParamSenderName:            "msg-param-sender-name",
	TagMsgParamShouldShareStreak:     "msg-param-should-share-streak",
	TagMsgParamStreakMonths:          "msg-param-streak-months",
	TagMsgParamSubPlan:               "msg-param-sub-plan",
	TagMsgParamSubPlanName:           "msg-param-sub-plan-name",
	TagMsgParamThreshold:             "msg-param-threshold",
	TagMsgParamViewerCount:           "msg-param-viewerCount",
	TagPinnedChatPaidAmount:          "pinned-chat-paid-amount",
	TagPinnedChatPaidCurrency:        "pinned-chat-paid-currency",
	TagPinnedChatPaidExponent:        "pinned-chat-paid-exponent",
	TagPinnedChatPaidLevel:           "pinned-chat-paid-level",
	TagPinnedChatPaidIsSystemMessage: "pinned-chat-paid-is-system-message",
	TagR9K:                           "r9k",
	TagReplyParentDisplayName:        "reply-parent-display-name",
	TagReplyParentMsgBody:            "reply-parent-msg-body",
	TagReplyParentMsgID:              "reply-parent-msg-id",
	TagReplyParentUserID:             "reply-parent-user-id",
	TagReplyParentUserLogin:          "reply-parent-user-login",
	TagReturningChatter:              "returning-chatter",
	TagRituals:                       "rituals",
	TagRoomID:                        "room-id",
	TagSlow:                          "slow",
	TagSubscriber:                    "subscriber",
	TagSubsOnly:                      "subs-only",
	TagSystemMsg:                     "system-msg",
	TagTargetMsgID:                   "target-msg-id",
	TagTargetUserID:                  "target-user-id",
	TagThreadID:                      "thread-id",
	TagTmiSentTs:                     "tmi-sent-ts",
	TagTurbo:                         "turbo",
	TagUserID:                        "user-id",
	TagUserType:                      "user-type",
}

// Name returns the canonical key string for id, or "" for TagUnknown.
func (id TagID) Name() string { return names[id] }

type slot struct {
	hash uint64
	id   TagID
	set  bool
}

// tableSize is a power of two comfortably larger than tagCount, keeping the
// open-addressed table lightly loaded (load factor well under 50%).
const tableSize = 256

var table [tableSize]slot

func init() {
	for id, name := range names {
		insert(name, id)
	}
}

func insert(name string, id TagID) {
	h := xxhash.Sum64String(name)
	i := h & (tableSize - 1)
	for table[i].set {
		i = (i + 1) & (tableSize - 1)
	}
	table[i] = slot{hash: h, id: id, set: true}
}

// Lookup resolves a raw tag-key byte slice to its TagID, or TagUnknown if
// key is not a member of the closed registry.
func Lookup(key []byte) TagID {
	h := xxhash.Sum64(key)
	i := h & (tableSize - 1)
	for {
		s := table[i]
		if !s.set {
			return TagUnknown
		}
		if s.hash == h && s.id.Name() == string(key) {
			return s.id
		}
		i = (i + 1) & (tableSize - 1)
	}
}
