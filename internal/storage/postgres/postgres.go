// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const foreignKeyViolation = "23503"

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Handle    string `db:"handle"`
	Avatar    string `db:"avatar"`
	Cover     string `db:"cover"`
	Bio       string `db:"bio"`
	Location  string `db:"location"`
	Website   string `db:"website"`
	JoinedAt  string `db:"joined_at"`
	Following uint32 `db:"following"`
	Followers uint32 `db:"followers"`
}

type postDTO struct {
	Seq          int64  `db:"seq"`
	ID           string `db:"id"`
	Author       string `db:"author"`
	AuthorName   string `db:"author_name"`
	AuthorHandle string `db:"author_handle"`
	AuthorAvatar string `db:"author_avatar"`
	Text         string `db:"text"`
	Image        string `db:"image"`
	Likes        uint32 `db:"likes"`
	Comments     uint32 `db:"comments"`
	CreatedAt    string `db:"created_at"`
}

type conversationDTO struct {
	ID            string `db:"id"`
	Peer          string `db:"peer"`
	PeerName      string `db:"peer_name"`
	PeerHandle    string `db:"peer_handle"`
	PeerAvatar    string `db:"peer_avatar"`
	PeerOnline    bool   `db:"peer_online"`
	LastText      string `db:"last_text"`
	LastTimestamp string `db:"last_timestamp"`
	LastRead      bool   `db:"last_read"`
	Unread        uint32 `db:"unread"`
}

type messageDTO struct {
	ID             string `db:"id"`
	ConversationID string `db:"conversation_id"`
	Sender         string `db:"sender"`
	Text           string `db:"text"`
	Timestamp      string `db:"timestamp"`
}

type notificationDTO struct {
	ID          string         `db:"id"`
	Type        string         `db:"type"`
	Actor       string         `db:"actor"`
	ActorName   string         `db:"actor_name"`
	ActorHandle string         `db:"actor_handle"`
	ActorAvatar string         `db:"actor_avatar"`
	PostID      sql.NullString `db:"post_id"`
	ContentText sql.NullString `db:"content_text"`
	Comment     sql.NullString `db:"comment"`
	Timestamp   string         `db:"timestamp"`
	Read        bool           `db:"read"`
}

type topicDTO struct {
	ID    string `db:"id"`
	Tag   string `db:"tag"`
	Topic string `db:"topic"`
	Posts uint32 `db:"posts"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

// NewWriter creates new instance of pg which is used to fill the database.
func NewWriter(db *sql.DB) storage.Writer {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(w storage.Writer) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

const selectPosts = `
	SELECT p.seq, p.id, p.author, a.name AS author_name, a.handle AS author_handle, a.avatar AS author_avatar,
		p.text, p.image, p.likes, p.comments, p.created_at
	FROM post p
	JOIN profile a ON a.id = p.author
`

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	switch p.Feed {
	case storage.HomeFeed, storage.ExploreFeed, storage.ProfileFeed:
	default:
		return nil, fmt.Errorf("%w: feed %s", storage.ErrNotFound, p.Feed)
	}

	var (
		posts []*postDTO
		err   error
	)

	if p.Author == nil {
		err = sqlx.SelectContext(ctx, s.ext, &posts, selectPosts+`WHERE p.feed = $1 ORDER BY p.seq`, string(p.Feed))
	} else {
		err = sqlx.SelectContext(ctx, s.ext, &posts, selectPosts+`WHERE p.feed = $1 AND p.author = $2 ORDER BY p.seq`, string(p.Feed), *p.Author)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	// user without own profile feed is shown with posts found in other feeds
	if len(posts) == 0 && p.Feed == storage.ProfileFeed && p.Author != nil {
		if err := sqlx.SelectContext(ctx, s.ext, &posts, `
			SELECT * FROM (
				SELECT DISTINCT ON (p.id) p.seq, p.id, p.author, a.name AS author_name, a.handle AS author_handle,
					a.avatar AS author_avatar, p.text, p.image, p.likes, p.comments, p.created_at
				FROM post p
				JOIN profile a ON a.id = p.author
				WHERE p.feed = ANY($1) AND p.author = $2
				ORDER BY p.id, p.seq
			) t ORDER BY seq
		`, pq.Array([]string{string(storage.HomeFeed), string(storage.ExploreFeed)}), *p.Author); err != nil {
			return nil, fmt.Errorf("failed to query other feeds: %w", err)
		}
	}

	out := make([]*entities.Post, len(posts))
	for i, v := range posts {
		out[i] = &entities.Post{
			ID: v.ID,
			Author: entities.User{
				ID:     v.Author,
				Name:   v.AuthorName,
				Handle: v.AuthorHandle,
				Avatar: v.AuthorAvatar,
			},
			Text:      v.Text,
			Image:     v.Image,
			Likes:     v.Likes,
			Comments:  v.Comments,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
		SELECT id, name, handle, avatar, cover, bio, location, website, joined_at, following, followers
		FROM profile
		WHERE id = $1
	`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{
		User: entities.User{
			ID:     p.ID,
			Name:   p.Name,
			Handle: p.Handle,
			Avatar: p.Avatar,
		},
		Cover:     p.Cover,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		JoinedAt:  p.JoinedAt,
		Following: p.Following,
		Followers: p.Followers,
	}, nil
}

func (s pg) ListConversations(ctx context.Context, owner string) ([]*entities.Conversation, error) {
	var c []*conversationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &c, `
		SELECT c.id, c.peer, p.name AS peer_name, p.handle AS peer_handle, p.avatar AS peer_avatar, c.peer_online,
			c.last_text, c.last_timestamp, c.last_read, c.unread
		FROM conversation c
		JOIN profile p ON p.id = c.peer
		WHERE c.owner = $1
		ORDER BY c.seq
	`, owner); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Conversation, len(c))
	for i, v := range c {
		out[i] = &entities.Conversation{
			ID: v.ID,
			Peer: entities.Peer{
				User: entities.User{
					ID:     v.Peer,
					Name:   v.PeerName,
					Handle: v.PeerHandle,
					Avatar: v.PeerAvatar,
				},
				Online: v.PeerOnline,
			},
			LastMessage: entities.LastMessage{
				Text:      v.LastText,
				Timestamp: v.LastTimestamp,
				Read:      v.LastRead,
			},
			Unread: v.Unread,
		}
	}

	return out, nil
}

func (s pg) ListMessages(ctx context.Context, owner string) ([]*entities.Message, error) {
	var m []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &m, `
		SELECT m.id, m.conversation_id, m.sender, m.text, m.timestamp
		FROM message m
		JOIN conversation c ON c.id = m.conversation_id
		WHERE c.owner = $1
		ORDER BY m.seq
	`, owner); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Message, len(m))
	for i, v := range m {
		out[i] = &entities.Message{
			ID:             v.ID,
			ConversationID: v.ConversationID,
			Sender:         v.Sender,
			Text:           v.Text,
			Timestamp:      v.Timestamp,
		}
	}

	return out, nil
}

func (s pg) ListNotifications(ctx context.Context, recipient string) ([]*entities.Notification, error) {
	var n []*notificationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &n, `
		SELECT n.id, n.type, n.actor, a.name AS actor_name, a.handle AS actor_handle, a.avatar AS actor_avatar,
			n.post_id, n.content_text, n.comment, n.timestamp, n.read
		FROM notification n
		JOIN profile a ON a.id = n.actor
		WHERE n.recipient = $1
		ORDER BY n.seq
	`, recipient); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(n))
	for i, v := range n {
		out[i] = &entities.Notification{
			ID:   v.ID,
			Type: entities.ParseNotificationType(v.Type),
			Actor: entities.User{
				ID:     v.Actor,
				Name:   v.ActorName,
				Handle: v.ActorHandle,
				Avatar: v.ActorAvatar,
			},
			Timestamp: v.Timestamp,
			Read:      v.Read,
		}

		if v.PostID.Valid || v.ContentText.Valid || v.Comment.Valid {
			out[i].Content = &entities.NotificationContent{
				PostID:  v.PostID.String,
				Text:    v.ContentText.String,
				Comment: v.Comment.String,
			}
		}
	}

	return out, nil
}

func (s pg) ListTopics(ctx context.Context) ([]*entities.Topic, error) {
	var t []*topicDTO

	if err := sqlx.SelectContext(ctx, s.ext, &t, `SELECT id, tag, topic, posts FROM topic ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Topic, len(t))
	for i, v := range t {
		out[i] = &entities.Topic{
			ID:    v.ID,
			Tag:   v.Tag,
			Topic: v.Topic,
			Posts: v.Posts,
		}
	}

	return out, nil
}

func (s pg) ListTags(ctx context.Context) ([]string, error) {
	var t []string

	if err := sqlx.SelectContext(ctx, s.ext, &t, `SELECT name FROM tag ORDER BY position`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return t, nil
}

func (s pg) ListSuggestedUsers(ctx context.Context, viewer string) ([]*entities.User, error) {
	var u []profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &u, `
		SELECT p.id, p.name, p.handle, p.avatar
		FROM suggestion s
		JOIN profile p ON p.id = s.user_id
		WHERE p.id <> $1
		ORDER BY s.position
	`, viewer); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.User, len(u))
	for i, v := range u {
		out[i] = &entities.User{
			ID:     v.ID,
			Name:   v.Name,
			Handle: v.Handle,
			Avatar: v.Avatar,
		}
	}

	return out, nil
}

func (s pg) SetProfile(ctx context.Context, p *entities.Profile) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
		INSERT INTO profile (id, name, handle, avatar, cover, bio, location, website, joined_at, following, followers)
		VALUES (:id, :name, :handle, :avatar, :cover, :bio, :location, :website, :joined_at, :following, :followers)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, handle = excluded.handle, avatar = excluded.avatar, cover = excluded.cover,
			bio = excluded.bio, location = excluded.location, website = excluded.website,
			joined_at = excluded.joined_at, following = excluded.following, followers = excluded.followers
	`, profileDTO{
		ID:        p.ID,
		Name:      p.Name,
		Handle:    p.Handle,
		Avatar:    p.Avatar,
		Cover:     p.Cover,
		Bio:       p.Bio,
		Location:  p.Location,
		Website:   p.Website,
		JoinedAt:  p.JoinedAt,
		Following: p.Following,
		Followers: p.Followers,
	}); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, feed storage.Feed, p *entities.Post) error {
	if _, err := s.ext.ExecContext(ctx, `
		INSERT INTO post (feed, id, author, text, image, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
	`, string(feed), p.ID, p.Author.ID, p.Text, p.Image, p.Likes, p.Comments, p.CreatedAt); err != nil {
		return wrapFKError(err, "author")
	}

	return nil
}

func (s pg) CreateConversation(ctx context.Context, owner string, c *entities.Conversation) error {
	if _, err := s.ext.ExecContext(ctx, `
		INSERT INTO conversation (id, owner, peer, peer_online, last_text, last_timestamp, last_read, unread)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
	`, c.ID, owner, c.Peer.ID, c.Peer.Online, c.LastMessage.Text, c.LastMessage.Timestamp, c.LastMessage.Read, c.Unread); err != nil {
		return wrapFKError(err, "owner or peer")
	}

	return nil
}

func (s pg) CreateMessage(ctx context.Context, m *entities.Message) error {
	if _, err := s.ext.ExecContext(ctx, `
		INSERT INTO message (id, conversation_id, sender, text, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`, m.ID, m.ConversationID, m.Sender, m.Text, m.Timestamp); err != nil {
		return wrapFKError(err, "conversation")
	}

	return nil
}

func (s pg) CreateNotification(ctx context.Context, recipient string, n *entities.Notification) error {
	var postID, text, comment sql.NullString
	if n.Content != nil {
		postID = sql.NullString{String: n.Content.PostID, Valid: true}
		text = sql.NullString{String: n.Content.Text, Valid: true}
		comment = sql.NullString{String: n.Content.Comment, Valid: true}
	}

	if _, err := s.ext.ExecContext(ctx, `
		INSERT INTO notification (id, recipient, type, actor, post_id, content_text, comment, timestamp, read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT DO NOTHING
	`, n.ID, recipient, n.Type.String(), n.Actor.ID, postID, text, comment, n.Timestamp, n.Read); err != nil {
		return wrapFKError(err, "recipient or actor")
	}

	return nil
}

func (s pg) CreateTopic(ctx context.Context, t *entities.Topic) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
		INSERT INTO topic (id, tag, topic, posts)
		VALUES (:id, :tag, :topic, :posts)
		ON CONFLICT DO NOTHING
	`, topicDTO(*t)); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) SetTags(ctx context.Context, tags []string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM tag`); err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}

	if len(tags) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx, `
		INSERT INTO tag (position, name)
		SELECT t.position, t.name FROM UNNEST($1::TEXT[]) WITH ORDINALITY AS t(name, position)
	`, pq.Array(tags)); err != nil {
		return fmt.Errorf("failed to insert tags: %w", err)
	}

	return nil
}

func (s pg) SetSuggestedUsers(ctx context.Context, ids []string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM suggestion`); err != nil {
		return fmt.Errorf("failed to delete suggestions: %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx, `
		INSERT INTO suggestion (position, user_id)
		SELECT t.position, t.user_id FROM UNNEST($1::TEXT[]) WITH ORDINALITY AS t(user_id, position)
	`, pq.Array(ids)); err != nil {
		return wrapFKError(err, "suggested user")
	}

	return nil
}

func wrapFKError(err error, subject string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, subject)
	}

	return fmt.Errorf("failed to exec: %w", err)
}
