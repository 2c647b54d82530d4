package mq

const (
	EventItemCreated = "item_created"
	EventItemDeleted = "item_deleted"
)

// WardrobeEvent is published whenever a wardrobe item is added or removed.
type WardrobeEvent struct {
	Type      string `json:"type"`
	ItemID    uint64 `json:"item_id"`
	UserID    uint64 `json:"user_id"`
	Filename  string `json:"filename"`
	Timestamp int64  `json:"timestamp"`
}
