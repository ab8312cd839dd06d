package models

// HingeMessage is a single chat message inside a Hinge match.
// Direction distinguishes sent from received.
type HingeMessage struct {
	Date      string `json:"date"`
	Direction string `json:"direction"`
}

// HingeMatch is one match entry from the Hinge export with its chat history.
// MatchDate/LikeDate may be empty when the vendor entry lacks them.
type HingeMatch struct {
	MatchID   string         `json:"match_id"`
	MatchDate string         `json:"match_date,omitempty"`
	LikeDate  string         `json:"like_date,omitempty"`
	Chats     []HingeMessage `json:"chats,omitempty"`
}

type HingeEventType string

const (
	EventMatch           HingeEventType = "match"
	EventLike            HingeEventType = "like"
	EventMessageSent     HingeEventType = "messageSent"
	EventMessageReceived HingeEventType = "messageReceived"
)

// HingeEvent is the flattened per-date view of matches and messages used
// by the aggregator. Purely an in-memory intermediate, never persisted.
type HingeEvent struct {
	Date    string
	Type    HingeEventType
	MatchID string
}
