package session

import (
	"errors"
	"sync"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/feed"
)

// ErrFollowSelf is returned when viewer tries to follow their own profile.
var ErrFollowSelf = errors.New("can not follow own profile")

// Profile is a state of profile view.
type Profile struct {
	Posts *feed.Store

	own bool

	mu      sync.Mutex
	profile entities.Profile
}

func newProfile(p entities.Profile, posts []*entities.Post, own bool) *Profile {
	return &Profile{
		Posts:   feed.New(posts),
		own:     own,
		profile: p,
	}
}

// Get returns a copy of profile.
func (p *Profile) Get() entities.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.profile
}

// Own returns true if the profile is viewer's one.
func (p *Profile) Own() bool {
	return p.own
}

// ToggleFollow flips viewer's follow flag and moves followers counter with it.
// Counter never goes below zero.
func (p *Profile) ToggleFollow() (entities.Profile, error) {
	if p.own {
		return entities.Profile{}, ErrFollowSelf
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.profile.Followed = !p.profile.Followed

	switch {
	case p.profile.Followed:
		p.profile.Followers++
	case p.profile.Followers > 0:
		p.profile.Followers--
	}

	return p.profile, nil
}
