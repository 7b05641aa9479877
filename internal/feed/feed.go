// Package feed contains an ordered store of posts with viewer-local like and save flags.
package feed

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/projection"
)

// Store holds posts of a single view.
type Store struct {
	mu    sync.Mutex
	posts []*entities.Post
	index map[string]*entities.Post
	seq   uint64
}

// New creates a store owning posts. Tags are derived from posts' text.
func New(posts []*entities.Post) *Store {
	s := &Store{
		posts: make([]*entities.Post, 0, len(posts)),
		index: make(map[string]*entities.Post, len(posts)),
	}

	for _, v := range posts {
		if _, ok := s.index[v.ID]; ok {
			continue
		}

		v.Tags = projection.Hashtags(v.Text)
		s.posts = append(s.posts, v)
		s.index[v.ID] = v
	}

	return s
}

// List returns copies of all posts in store order.
func (s *Store) List() []entities.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Post, len(s.posts))
	for i, v := range s.posts {
		out[i] = *v
	}

	return out
}

// Get returns a copy of post.
func (s *Store) Get(id string) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.index[id]
	if !ok {
		return entities.Post{}, entities.ErrNotFound
	}

	return *p, nil
}

// ToggleLike flips liked flag and adjusts likes count accordingly.
func (s *Store) ToggleLike(id string) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.index[id]
	if !ok {
		return entities.Post{}, entities.ErrNotFound
	}

	if p.Liked {
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.Likes++
	}
	p.Liked = !p.Liked

	return *p, nil
}

// ToggleSave flips saved flag.
func (s *Store) ToggleSave(id string) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.index[id]
	if !ok {
		return entities.Post{}, entities.ErrNotFound
	}

	p.Saved = !p.Saved

	return *p, nil
}

// Create puts a new post authored by author on top of the store.
// Either text or image should be provided.
func (s *Store) Create(author entities.User, text, image string) (entities.Post, error) {
	text, image = strings.TrimSpace(text), strings.TrimSpace(image)
	if text == "" && image == "" {
		return entities.Post{}, entities.ErrEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	for {
		s.seq++
		id = fmt.Sprintf("local-%d", s.seq)
		if _, ok := s.index[id]; !ok {
			break
		}
	}

	p := &entities.Post{
		ID:        id,
		Author:    author,
		Text:      text,
		Image:     image,
		Tags:      projection.Hashtags(text),
		CreatedAt: entities.JustNow,
	}

	s.posts = append([]*entities.Post{p}, s.posts...)
	s.index[id] = p

	return *p, nil
}

// ByAuthor returns posts written by user in store order.
func (s *Store) ByAuthor(userID string) []entities.Post {
	return projection.Filter(s.List(), func(p entities.Post) bool {
		return p.Author.ID == userID
	})
}

// Search returns posts matching query by text, author or tag and having tag if it's provided.
func (s *Store) Search(query, tag string) []entities.Post {
	return projection.Filter(s.List(), projection.And(
		projection.Contains(strings.TrimPrefix(query, "#"),
			func(p entities.Post) string { return p.Text },
			func(p entities.Post) string { return p.Author.Name },
			func(p entities.Post) string { return p.Author.Handle },
		),
		projection.Member(strings.TrimPrefix(tag, "#"), func(p entities.Post) []string { return p.Tags }),
	))
}
