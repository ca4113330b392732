package shared

// Asynq task types and queues.
const (
	TypeNotifyItemRemoved = "notification:item_removed"

	QueueNotifications = "notifications"
)

// ItemRemovedPayload is the asynq payload for a removal notification. It is
// self-contained: the worker never reads the database, so notifications still
// go out after the item row is gone.
type ItemRemovedPayload struct {
	Email    string `json:"email"`
	ItemName string `json:"itemName"`
	ListName string `json:"listName"`
	Language string `json:"language"`
}
