package resources

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/havenlink/haven-bot/internal/models"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PostgresStore backs the resource lookups and the durable conversation log.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStore(config DatabaseConfig, logger *zap.Logger) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	store := &PostgresStore{db: db, logger: logger}

	if err := store.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

const resourceColumns = `
	SELECT r.id, r.title, r.description,
	       COALESCE(r.content, ''), COALESCE(r.website_url, ''), COALESCE(r.phone, ''),
	       COALESCE(r.email, ''), COALESCE(r.address, ''), COALESCE(r.location, ''),
	       r.priority, r.keywords,
	       c.id, c.name, COALESCE(c.description, ''), COALESCE(c.icon, ''), COALESCE(c.color, ''),
	       COALESCE((SELECT array_agg(t.name ORDER BY t.name)
	                 FROM resource_tags rt
	                 JOIN tags t ON t.id = rt.tag_id
	                 WHERE rt.resource_id = r.id), '{}')
	FROM resources r
	JOIN categories c ON c.id = r.category_id
	WHERE r.is_active = TRUE`

func (s *PostgresStore) ByCategory(ctx context.Context, name string, limit int) ([]models.Resource, error) {
	query := resourceColumns + `
	  AND LOWER(c.name) = LOWER($1)
	ORDER BY r.priority DESC
	LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, name, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying resources by category: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}

func (s *PostgresStore) Search(ctx context.Context, freeText string, limit int) ([]models.Resource, error) {
	query := resourceColumns + `
	  AND (r.title ILIKE '%' || $1 || '%'
	       OR r.description ILIKE '%' || $1 || '%'
	       OR r.content ILIKE '%' || $1 || '%'
	       OR array_to_string(r.keywords, ' ') ILIKE '%' || $1 || '%')
	ORDER BY r.priority DESC
	LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, freeText, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching resources: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}

func (s *PostgresStore) ByTags(ctx context.Context, tags []string, limit int) ([]models.Resource, error) {
	query := resourceColumns + `
	  AND EXISTS (SELECT 1
	              FROM resource_tags rt
	              JOIN tags t ON t.id = rt.tag_id
	              WHERE rt.resource_id = r.id AND t.name = ANY($1))
	ORDER BY r.priority DESC
	LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(tags), limit)
	if err != nil {
		return nil, fmt.Errorf("error querying resources by tags: %w", err)
	}
	defer rows.Close()

	return scanResources(rows)
}

func scanResources(rows *sql.Rows) ([]models.Resource, error) {
	var out []models.Resource
	for rows.Next() {
		var r models.Resource
		var c models.Category
		if err := rows.Scan(
			&r.ID, &r.Title, &r.Description,
			&r.Content, &r.WebsiteURL, &r.Phone,
			&r.Email, &r.Address, &r.Location,
			&r.Priority, pq.Array(&r.Keywords),
			&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color,
			pq.Array(&r.Tags),
		); err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		r.IsActive = true
		r.Category = &c
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading resources: %w", err)
	}
	return out, nil
}

// Record appends one conversation turn to the durable log.
func (s *PostgresStore) Record(ctx context.Context, entry models.ConversationEntry) error {
	query := `
		INSERT INTO conversations (id, session_id, user_message, bot_reply, distress_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.SessionID, entry.UserMessage, entry.BotReply,
		string(entry.DistressLevel), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording conversation: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
