// Package community holds the peer support board: discussion posts and
// support groups. New posts are screened with the triage classifier, and
// anything at high or crisis severity is held back from the public list.
package community

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"neurosync/internal/triage"
	"neurosync/internal/validation"
)

// AnonymousName is shown for posts submitted anonymously.
const AnonymousName = "Anonymous Student"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidPost  = errors.New("invalid post")
)

// Author describes who wrote a post.
type Author struct {
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	IsVolunteer bool   `json:"is_volunteer"`
	JoinedDate  string `json:"joined_date"`
}

// Post is a discussion thread on the board.
type Post struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Author      Author      `json:"author"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Timestamp   time.Time   `json:"timestamp"`
	Likes       int         `json:"likes"`
	Replies     int         `json:"replies"`
	Views       int         `json:"views"`
	IsAnonymous bool        `json:"is_anonymous"`
	IsModerated bool        `json:"is_moderated"`
	Severity    triage.Tier `json:"severity,omitempty"`
}

// SupportGroup is a moderated peer group.
type SupportGroup struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description" yaml:"description"`
	MemberCount  int       `json:"member_count" yaml:"member_count"`
	Category     string    `json:"category" yaml:"category"`
	IsPrivate    bool      `json:"is_private" yaml:"is_private"`
	Moderator    string    `json:"moderator" yaml:"moderator"`
	LastActivity time.Time `json:"last_activity" yaml:"last_activity"`
}

// Draft is a post as submitted by a student.
type Draft struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	AuthorName  string   `json:"author_name"`
	IsAnonymous bool     `json:"is_anonymous"`
}

// Submission is the outcome of posting a draft.
type Submission struct {
	Post     Post                   `json:"post"`
	Held     bool                   `json:"held"`
	Severity triage.Tier            `json:"severity"`
	Support  *triage.ResponseBundle `json:"support,omitempty"`
}

// Query filters the post list. Empty fields match everything.
type Query struct {
	Search   string
	Category string
}

// Classifier is the subset of triage.Classifier the board needs.
type Classifier interface {
	Classify(message string) triage.Result
}

// Board is an in-memory, concurrency-safe post store.
type Board struct {
	mu         sync.RWMutex
	posts      []Post
	groups     []SupportGroup
	classifier Classifier
	onClassify func(triage.Tier)
}

// NewBoard seeds a board. Nil slices fall back to the sample data relative
// to now; a nil classifier uses triage.Default().
func NewBoard(posts []Post, groups []SupportGroup, classifier Classifier, now time.Time) *Board {
	if posts == nil {
		posts = SamplePosts(now)
	}
	if groups == nil {
		groups = SampleGroups(now)
	}
	if classifier == nil {
		classifier = triage.Default()
	}
	return &Board{
		posts:      slices.Clone(posts),
		groups:     slices.Clone(groups),
		classifier: classifier,
	}
}

// OnClassify registers a callback invoked with each submitted post's tier.
func (b *Board) OnClassify(fn func(triage.Tier)) {
	b.mu.Lock()
	b.onClassify = fn
	b.mu.Unlock()
}

// Posts returns moderated posts matching q, newest first.
func (b *Board) Posts(q Query) []Post {
	search := validation.NormalizeQuery(q.Search)

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Post, 0, len(b.posts))
	for _, p := range b.posts {
		if !p.IsModerated {
			continue
		}
		if q.Category != "" && q.Category != "All" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if search != "" && !p.matches(search) {
			continue
		}
		out = append(out, p.clone())
	}
	slices.SortStableFunc(out, func(a, b Post) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// Held returns posts waiting on moderator review.
func (b *Board) Held() []Post {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Post
	for _, p := range b.posts {
		if !p.IsModerated {
			out = append(out, p.clone())
		}
	}
	return out
}

// Groups returns the support groups.
func (b *Board) Groups() []SupportGroup {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.groups)
}

// Submit screens and stores a draft.
func (b *Board) Submit(d Draft, now time.Time) (*Submission, error) {
	if ok, msg := validation.ValidateRequired("Title", d.Title); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPost, msg)
	}
	if ok, msg := validation.ValidateRequired("Content", d.Content); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPost, msg)
	}

	result := b.classifier.Classify(d.Title + "\n" + d.Content)
	held := result.Tier.Above(triage.TierMedium)

	author := Author{Name: strings.TrimSpace(d.AuthorName), JoinedDate: now.Format(validation.DateLayout)}
	if d.IsAnonymous || author.Name == "" {
		author.Name = AnonymousName
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = "General"
	}

	post := Post{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(d.Title),
		Content:     strings.TrimSpace(d.Content),
		Author:      author,
		Category:    category,
		Tags:        normalizeTags(d.Tags),
		Timestamp:   now,
		IsAnonymous: d.IsAnonymous || author.Name == AnonymousName,
		IsModerated: !held,
		Severity:    result.Tier,
	}

	b.mu.Lock()
	b.posts = append(b.posts, post)
	observe := b.onClassify
	b.mu.Unlock()

	if observe != nil {
		observe(result.Tier)
	}

	sub := &Submission{Post: post.clone(), Held: held, Severity: result.Tier}
	if result.Tier != triage.TierLow {
		support := result.Response
		sub.Support = &support
	}
	return sub, nil
}

// Like increments a post's like count and returns the new total.
func (b *Board) Like(id string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.posts {
		if b.posts[i].ID == id && b.posts[i].IsModerated {
			b.posts[i].Likes++
			return b.posts[i].Likes, nil
		}
	}
	return 0, ErrPostNotFound
}

func (p Post) matches(search string) bool {
	if strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Content), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func (p Post) clone() Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		t = strings.Join(strings.Fields(t), "-")
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
