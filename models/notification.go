package models

type Notification struct {
	ID                   int64  `json:"id"`
	NotificationType     int64  `json:"notification_type"`
	NotificationTypeName string `json:"notification_type_name"`
	Recipient            int64  `json:"recipient"`
	SenderName           string `json:"sender_name,omitempty"`
	Subject              string `json:"subject"`
	Message              string `json:"message"`
	Status               string `json:"status"`
	IsRead               bool   `json:"is_read"`
	ReadAt               string `json:"read_at,omitempty"`
	CreatedAt            string `json:"created_at"`
}

type MarkAllReadResult struct {
	MarkedAsRead int `json:"marked_as_read"`
}

type Alert struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	AlertType string `json:"alert_type"`
	IsGlobal  bool   `json:"is_global"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
