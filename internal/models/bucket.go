package models

// AggregatedBucket is one time bucket of rolled-up activity. Period is the
// canonical sortable key (e.g. "2024-W03"), PeriodDisplay a human label.
// Derived rates carry 0 when their denominator is 0.
type AggregatedBucket struct {
	Period               string  `json:"period"`
	PeriodDisplay        string  `json:"periodDisplay"`
	Matches              int     `json:"matches"`
	SwipeLikes           int     `json:"swipeLikes"`
	SwipePasses          int     `json:"swipePasses"`
	AppOpens             int     `json:"appOpens"`
	MessagesSent         int     `json:"messagesSent"`
	MessagesReceived     int     `json:"messagesReceived"`
	SwipesCombined       int     `json:"swipesCombined"`
	TotalMessages        int     `json:"totalMessages"`
	ConversationsStarted int     `json:"conversationsStarted,omitempty"`
	MatchRate            float64 `json:"matchRate"`
	LikeRatio            float64 `json:"likeRatio"`
}
