package store

import "fmt"

// Memory is an in-memory KV for tests and for running without a data dir.
type Memory struct {
	quests  map[string]bool
	quote   *CachedContent
	insight *CachedContent
	member  string
	team    string
}

func NewMemory() *Memory {
	return &Memory{quests: make(map[string]bool)}
}

func (m *Memory) CompletedQuestIDs() (map[string]bool, error) {
	out := make(map[string]bool, len(m.quests))
	for id, done := range m.quests {
		out[id] = done
	}
	return out, nil
}

func (m *Memory) SaveCompletedQuestIDs(ids map[string]bool) error {
	m.quests = make(map[string]bool, len(ids))
	for id, done := range ids {
		if done && id != "" {
			m.quests[id] = true
		}
	}
	return nil
}

func (m *Memory) Quote() (CachedContent, error) {
	if m.quote == nil {
		return CachedContent{}, fmt.Errorf("%w: %s", ErrNotFound, keyQuote)
	}
	return *m.quote, nil
}

func (m *Memory) SaveQuote(c CachedContent) error {
	m.quote = &c
	return nil
}

func (m *Memory) Insight() (CachedContent, error) {
	if m.insight == nil {
		return CachedContent{}, fmt.Errorf("%w: %s", ErrNotFound, keyInsight)
	}
	return *m.insight, nil
}

func (m *Memory) SaveInsight(c CachedContent) error {
	m.insight = &c
	return nil
}

func (m *Memory) MemberID() (string, error) {
	if m.member == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, keyMember)
	}
	return m.member, nil
}

func (m *Memory) SaveMemberID(id string) error {
	m.member = id
	return nil
}

func (m *Memory) TeamID() (string, error) {
	if m.team == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, keyTeam)
	}
	return m.team, nil
}

func (m *Memory) SaveTeamID(id string) error {
	m.team = id
	return nil
}
