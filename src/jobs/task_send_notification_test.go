package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) Send(to, subject, body string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestHandleNotificationDispatchTask(t *testing.T) {
	t.Run("DeliversToEveryRecipient", func(t *testing.T) {
		fake := &fakeSender{}
		Sender = fake
		defer func() { Sender = nil }()

		task, err := NewNotificationDispatchTask(NotificationDispatchPayload{
			MeetingID: "meeting-1",
			Subject:   "Meeting notice",
			Body:      "Please attend on time.",
			Recipients: []NotificationRecipient{
				{UserID: "64f1b2c3d4e5f60718293a4b", Email: "a@university.edu"},
				{UserID: "64f1b2c3d4e5f60718293a4c", Email: "b@university.edu"},
			},
		})
		require.NoError(t, err)

		err = HandleNotificationDispatchTask(context.Background(), task)
		require.NoError(t, err)
		assert.Equal(t, []string{"a@university.edu", "b@university.edu"}, fake.sent)
	})

	t.Run("OneFailureDoesNotFailTheTask", func(t *testing.T) {
		fake := &fakeSender{failFor: map[string]error{
			"b@university.edu": errors.New("mailbox full"),
		}}
		Sender = fake
		defer func() { Sender = nil }()

		task, err := NewNotificationDispatchTask(NotificationDispatchPayload{
			MeetingID: "meeting-2",
			Subject:   "Meeting notice",
			Body:      "Agenda attached.",
			Recipients: []NotificationRecipient{
				{UserID: "64f1b2c3d4e5f60718293a4b", Email: "a@university.edu"},
				{UserID: "64f1b2c3d4e5f60718293a4c", Email: "b@university.edu"},
				{UserID: "64f1b2c3d4e5f60718293a4d", Email: "c@university.edu"},
			},
		})
		require.NoError(t, err)

		err = HandleNotificationDispatchTask(context.Background(), task)
		require.NoError(t, err)
		assert.Equal(t, []string{"a@university.edu", "c@university.edu"}, fake.sent)
	})

	t.Run("BadPayloadFails", func(t *testing.T) {
		Sender = &fakeSender{}
		defer func() { Sender = nil }()

		task := asynq.NewTask(TypeNotificationDispatch, []byte("{broken"))
		err := HandleNotificationDispatchTask(context.Background(), task)
		assert.Error(t, err)
	})
}
