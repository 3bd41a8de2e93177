// Package store is the local key-value persistence port: completed quest
// ids, cached quote/insight content, and the member identity survive across
// sessions here. The interface exists so the update layer can be tested
// against an in-memory fake.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

var ErrNotFound = errors.New("store: key not found")

const (
	keyCompletedQuests = "completed-quest-ids"
	keyQuote           = "quote-of-the-day"
	keyInsight         = "insight-of-the-day"
	keyMember          = "member-id"
	keyTeam            = "team-id"
)

// CachedContent is a quote or insight with the time it was fetched, so the
// daily rotation can tell whether it is stale.
type CachedContent struct {
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// KV is the persistence contract for dashboard session state.
type KV interface {
	CompletedQuestIDs() (map[string]bool, error)
	SaveCompletedQuestIDs(ids map[string]bool) error
	Quote() (CachedContent, error)
	SaveQuote(c CachedContent) error
	Insight() (CachedContent, error)
	SaveInsight(c CachedContent) error
	MemberID() (string, error)
	SaveMemberID(id string) error
	TeamID() (string, error)
	SaveTeamID(id string) error
}

// Open creates a diskv-backed KV rooted at basePath.
func Open(basePath string) KV {
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024,
	})}
}

type diskvStore struct {
	d *diskv.Diskv
}

func (s *diskvStore) CompletedQuestIDs() (map[string]bool, error) {
	var ids []string
	if err := s.readJSON(keyCompletedQuests, &ids); err != nil {
		if errors.Is(err, ErrNotFound) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" {
			out[id] = true
		}
	}
	return out, nil
}

func (s *diskvStore) SaveCompletedQuestIDs(ids map[string]bool) error {
	return s.writeJSON(keyCompletedQuests, sortedIDs(ids))
}

func (s *diskvStore) Quote() (CachedContent, error)       { return s.readContent(keyQuote) }
func (s *diskvStore) SaveQuote(c CachedContent) error     { return s.writeJSON(keyQuote, c) }
func (s *diskvStore) Insight() (CachedContent, error)     { return s.readContent(keyInsight) }
func (s *diskvStore) SaveInsight(c CachedContent) error   { return s.writeJSON(keyInsight, c) }
func (s *diskvStore) MemberID() (string, error)           { return s.readString(keyMember) }
func (s *diskvStore) SaveMemberID(id string) error        { return s.writeJSON(keyMember, id) }
func (s *diskvStore) TeamID() (string, error)             { return s.readString(keyTeam) }
func (s *diskvStore) SaveTeamID(id string) error          { return s.writeJSON(keyTeam, id) }

func (s *diskvStore) readContent(key string) (CachedContent, error) {
	var c CachedContent
	if err := s.readJSON(key, &c); err != nil {
		return CachedContent{}, err
	}
	return c, nil
}

func (s *diskvStore) readString(key string) (string, error) {
	var v string
	if err := s.readJSON(key, &v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *diskvStore) readJSON(key string, target any) error {
	if !s.d.Has(key) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	raw, err := s.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (s *diskvStore) writeJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.d.Write(key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func sortedIDs(ids map[string]bool) []string {
	out := make([]string, 0, len(ids))
	for id, done := range ids {
		if done && id != "" {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
