package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeMeetingReminder = "meeting:reminder"

type MeetingPayload struct {
	MeetingID string `json:"meeting_id"`
}

func NewMeetingReminderTask(meetingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(MeetingPayload{MeetingID: meetingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMeetingReminder, payload), nil
}

const TypeNotificationDispatch = "notification:dispatch"

// NotificationRecipient is one delivery target for a meeting notice.
type NotificationRecipient struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type NotificationDispatchPayload struct {
	MeetingID  string                  `json:"meeting_id"`
	Subject    string                  `json:"subject"`
	Body       string                  `json:"body"`
	Recipients []NotificationRecipient `json:"recipients"`
}

func NewNotificationDispatchTask(payload NotificationDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationDispatch, data), nil
}
