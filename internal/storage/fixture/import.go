package fixture

import (
	"context"
	"fmt"
	"sort"

	"github.com/Decentr-net/hermes/internal/storage"
)

// Import writes snapshot into w in a single transaction.
// Profiles go first since every other entity refers to them.
func Import(ctx context.Context, w storage.Writer, s *Snapshot) error {
	return w.InTx(ctx, func(w storage.Writer) error {
		for _, v := range s.Profiles {
			if err := w.SetProfile(ctx, v); err != nil {
				return fmt.Errorf("failed to set profile %s: %w", v.ID, err)
			}
		}
		log.Infof("%d profiles imported", len(s.Profiles))

		for _, feed := range feeds(s) {
			for _, v := range s.Posts[feed] {
				if err := w.CreatePost(ctx, feed, v); err != nil {
					return fmt.Errorf("failed to create post %s/%s: %w", feed, v.ID, err)
				}
			}
			log.Infof("%d posts of %s feed imported", len(s.Posts[feed]), feed)
		}

		for _, owner := range keys(s.Conversations) {
			for _, v := range s.Conversations[owner] {
				if err := w.CreateConversation(ctx, owner, v); err != nil {
					return fmt.Errorf("failed to create conversation %s: %w", v.ID, err)
				}
			}
		}

		for _, v := range s.Messages {
			if err := w.CreateMessage(ctx, v); err != nil {
				return fmt.Errorf("failed to create message %s: %w", v.ID, err)
			}
		}
		log.Infof("%d messages imported", len(s.Messages))

		for _, recipient := range keys(s.Notifications) {
			for _, v := range s.Notifications[recipient] {
				if err := w.CreateNotification(ctx, recipient, v); err != nil {
					return fmt.Errorf("failed to create notification %s: %w", v.ID, err)
				}
			}
		}

		for _, v := range s.Topics {
			if err := w.CreateTopic(ctx, v); err != nil {
				return fmt.Errorf("failed to create topic %s: %w", v.ID, err)
			}
		}

		if err := w.SetTags(ctx, s.Tags); err != nil {
			return fmt.Errorf("failed to set tags: %w", err)
		}

		if err := w.SetSuggestedUsers(ctx, s.Suggested); err != nil {
			return fmt.Errorf("failed to set suggested users: %w", err)
		}

		return nil
	})
}

// feeds returns known feeds first and then the rest in lexical order.
func feeds(s *Snapshot) []storage.Feed {
	known := []storage.Feed{storage.HomeFeed, storage.ExploreFeed, storage.ProfileFeed}

	out := make([]storage.Feed, 0, len(s.Posts))
	for _, v := range known {
		if _, ok := s.Posts[v]; ok {
			out = append(out, v)
		}
	}

	var rest []storage.Feed
	for k := range s.Posts {
		if k != storage.HomeFeed && k != storage.ExploreFeed && k != storage.ProfileFeed {
			rest = append(rest, k)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	return append(out, rest...)
}

func keys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
