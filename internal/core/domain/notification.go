package domain

type NotificationIcon string

const (
	IconBell  NotificationIcon = "bell"
	IconClock NotificationIcon = "clock"
	IconAlert NotificationIcon = "alert"
)

type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    string           `json:"date"`
	Read    bool             `json:"read"`
	Icon    NotificationIcon `json:"icon"`
}
