package chatRepository

const (
	queryCreateChatHistoryTable = `
		CREATE TABLE IF NOT EXISTS chat_history (
			id           VARCHAR(26) PRIMARY KEY,
			session_id   VARCHAR(128) NOT NULL,
			user_message TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			created_at   TIMESTAMP NOT NULL
		)
	`

	queryCreateChatHistorySessionIndex = `
		CREATE INDEX IF NOT EXISTS idx_chat_history_session_created
		ON chat_history (session_id, created_at)
	`

	queryCreateChatMessage = `
		INSERT INTO chat_history (
			id,
			session_id,
			user_message,
			bot_response,
			created_at
		) VALUES (
			:id,
			:session_id,
			:user_message,
			:bot_response,
			:created_at
		)
	`

	queryGetChatMessagesBySessionID = `
		SELECT
			id,
			session_id,
			user_message,
			bot_response,
			created_at
		FROM chat_history
		WHERE session_id = :session_id
		ORDER BY created_at ASC, id ASC
		LIMIT :limit
	`
)
