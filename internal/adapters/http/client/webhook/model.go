package webhook

import "github.com/andrewshostak/esports-notifier/internal/app/models"

// NotificationBody carries the message under both "content" and "text" so that common chat
// webhooks accept it as is.
type NotificationBody struct {
	Content string `json:"content"`
	Text    string `json:"text"`
	Team    string `json:"team"`
	Match   Match  `json:"match"`
}

type Match struct {
	ID     string `json:"id"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2,omitempty"`
	Event  string `json:"event,omitempty"`
	Link   string `json:"link,omitempty"`
	Stream string `json:"stream,omitempty"`
}

func fromDomainNotification(notification models.Notification) NotificationBody {
	return NotificationBody{
		Content: notification.Message,
		Text:    notification.Message,
		Team:    notification.Team,
		Match: Match{
			ID:     notification.Match.ID,
			Team1:  notification.Match.Team1,
			Team2:  notification.Match.Team2,
			Event:  notification.Match.Event,
			Link:   notification.Match.Link,
			Stream: notification.Match.Stream,
		},
	}
}
