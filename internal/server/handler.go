package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/hermes/internal/notification"
	"github.com/Decentr-net/hermes/internal/service"
	"github.com/Decentr-net/hermes/internal/session"
)

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /session Session Login
	//
	// Opens a session for viewer.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/LoginRequest'
	// responses:
	//   '201':
	//     description: Session is opened
	//     schema:
	//       "$ref": "#/definitions/LoginResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: unknown viewer
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, p, err := s.s.Login(r.Context(), req.ViewerID)
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusCreated, LoginResponse{
		Token:   t,
		Profile: toAPIProfile(*p),
	})
}

func (s server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.s.Logout(r.Context(), token(r)); err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) mount(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /views/{view} Session Mount
	//
	// (Re)loads view's state from source. Pending load of the view is cancelled.
	//
	// ---
	// parameters:
	// - name: view
	//   in: path
	//   required: true
	//   type: string
	//   enum: [feed, explore, messages, notifications, profile]
	// - name: param
	//   description: conversation id for messages view or user id for profile view
	//   in: query
	//   required: false
	// responses:
	//   '204':
	//     description: View is mounted
	//   '400':
	//     description: invalid view
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: view was unmounted while loading
	//     schema:
	//       "$ref": "#/definitions/Error"

	v, err := session.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.Mount(r.Context(), token(r), v, r.URL.Query().Get("param")); err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unmount(w http.ResponseWriter, r *http.Request) {
	v, err := session.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.Unmount(r.Context(), token(r), v); err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := s.s.Feed(r.Context(), token(r))
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.CreatePost(r.Context(), token(r), req.Text, req.Image)
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(p))
}

func postsView(r *http.Request) (session.View, error) {
	v := r.URL.Query().Get("view")
	if v == "" {
		return session.FeedView, nil
	}

	return session.ParseView(v)
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Feed ToggleLike
	//
	// Flips liked flag of post. Unknown post is ignored.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: view
	//   description: view which holds the post
	//   in: query
	//   required: false
	//   default: feed
	//   enum: [feed, explore, profile]
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '204':
	//     description: Post is not found

	v, err := postsView(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.ToggleLike(r.Context(), token(r), v, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) toggleSave(w http.ResponseWriter, r *http.Request) {
	v, err := postsView(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.ToggleSave(r.Context(), token(r), v, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) explore(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /explore Explore Search
	//
	// Searches explore posts.
	//
	// ---
	// parameters:
	// - name: q
	//   description: matches text, author's name or username case-insensitively
	//   in: query
	//   required: false
	// - name: tag
	//   in: query
	//   required: false
	// - name: tab
	//   in: query
	//   required: false
	//   default: trending
	//   enum: [trending, latest]
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"

	q := r.URL.Query()

	tab, err := service.ParseTab(q.Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.Explore(r.Context(), token(r), service.ExploreParams{
		Query: q.Get("q"),
		Tag:   q.Get("tag"),
		Tab:   tab,
	})
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.s.Tags(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list tags: %s", err.Error())
		return
	}

	if tags == nil {
		tags = []string{}
	}

	writeOK(w, http.StatusOK, tags)
}

func (s server) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.s.Topics(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list topics: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPITopics(topics))
}

func (s server) listConversations(w http.ResponseWriter, r *http.Request) {
	c, err := s.s.Conversations(r.Context(), token(r), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIConversations(c))
}

func (s server) selectConversation(w http.ResponseWriter, r *http.Request) {
	c, err := s.s.SelectConversation(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIConversation(c))
}

func (s server) listMessages(w http.ResponseWriter, r *http.Request) {
	m, err := s.s.Messages(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIMessages(m))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /conversations/{id}/messages Messages Send
	//
	// Sends message to the active conversation. Nothing happens if the conversation is not active.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/SendMessageRequest'
	// responses:
	//   '201':
	//     description: Message
	//     schema:
	//       "$ref": "#/definitions/Message"
	//   '204':
	//     description: Conversation is not active
	//   '400':
	//     description: empty text
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SendMessageRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.s.SendMessage(r.Context(), token(r), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusCreated, toAPIMessage(m))
}

func (s server) listNotifications(w http.ResponseWriter, r *http.Request) {
	n, err := s.s.Notifications(r.Context(), token(r), notification.Filter(r.URL.Query().Get("filter")))
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, toAPINotifications(n))
}

func (s server) markRead(w http.ResponseWriter, r *http.Request) {
	n, err := s.s.MarkRead(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusOK, toAPINotification(n))
}

func (s server) markAllRead(w http.ResponseWriter, r *http.Request) {
	c, err := s.s.MarkAllRead(r.Context(), token(r))
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusOK, MarkAllReadResponse{Marked: c})
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{id} Profile GetProfile
	//
	// Returns profile with posts. Viewer's profile is returned when id is omitted.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: false
	//   type: string
	// - name: tab
	//   in: query
	//   required: false
	//   default: posts
	//   enum: [posts, media]
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/GetProfileResponse"
	//   '404':
	//     description: profile is not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	tab, err := service.ParseProfileTab(r.URL.Query().Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.Profile(r.Context(), token(r), chi.URLParam(r, "id"), tab)
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, GetProfileResponse{
		Profile: toAPIProfile(p.Profile),
		Posts:   toAPIPosts(p.Posts),
	})
}

func (s server) toggleFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /profiles/{id}/follow Profile ToggleFollow
	//
	// Flips viewer's follow flag of profile. Followers counter follows the flag.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '400':
	//     description: viewer's own profile
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile is not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.ToggleFollow(r.Context(), token(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), w, true, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) listSuggestedUsers(w http.ResponseWriter, r *http.Request) {
	u, err := s.s.SuggestedUsers(r.Context(), token(r))
	if err != nil {
		writeServiceError(r.Context(), w, false, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIUsers(u))
}
