package db

import (
	"context"
)

const createNotification = `
INSERT INTO notifications (recipient_id, title, message, type, reference_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, recipient_id, title, message, type, reference_id, is_read, created_at
`

type CreateNotificationParams struct {
	RecipientID string
	Title       string
	Message     string
	Type        string
	ReferenceID *string
}

func (q *Queries) CreateNotification(ctx context.Context, arg CreateNotificationParams) (Notification, error) {
	row := q.db.QueryRow(ctx, createNotification,
		arg.RecipientID, arg.Title, arg.Message, arg.Type, arg.ReferenceID)
	var n Notification
	err := row.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Message, &n.Type,
		&n.ReferenceID, &n.IsRead, &n.CreatedAt)
	return n, err
}
