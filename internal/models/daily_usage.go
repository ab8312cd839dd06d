package models

// DailyUsageRecord is one day of app activity for a single profile,
// built at import time from the vendor usage section. Records are
// never mutated after creation; re-uploads only append missing days.
type DailyUsageRecord struct {
	Date             string `json:"date"`
	AppOpens         int    `json:"app_opens"`
	SwipeLikes       int    `json:"swipe_likes"`
	SwipePasses      int    `json:"swipe_passes"`
	Matches          int    `json:"matches"`
	MessagesSent     int    `json:"messages_sent"`
	MessagesReceived int    `json:"messages_received"`
	SwipesCombined   int    `json:"swipes_combined"`
}
