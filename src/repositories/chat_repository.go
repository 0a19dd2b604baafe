package repositories

import (
	"context"

	"advisory-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	GetSession(ctx context.Context, clientID, sessionID string) ([]models.ChatMessage, error)
}

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) Create(ctx context.Context, message *models.ChatMessage) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO chat_messages (client_id, session_id, role, content)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		message.ClientID, message.SessionID, message.Role, message.Content,
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *chatRepo) GetSession(ctx context.Context, clientID, sessionID string) ([]models.ChatMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, session_id, role, content, created_at
		 FROM chat_messages WHERE client_id = $1 AND session_id = $2 ORDER BY created_at`,
		clientID, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var message models.ChatMessage
		if err := rows.Scan(&message.ID, &message.ClientID, &message.SessionID,
			&message.Role, &message.Content, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
