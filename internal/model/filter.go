package model

import (
	"strconv"
	"strings"
)

// TokenKind is the resolved interpretation of a raw filter token.
type TokenKind int

const (
	TokenWindowID TokenKind = iota
	TokenPID
	TokenAppName
	TokenTitle
)

func (k TokenKind) String() string {
	switch k {
	case TokenWindowID:
		return "window-id"
	case TokenPID:
		return "pid"
	case TokenAppName:
		return "app-name"
	default:
		return "title"
	}
}

// token is a raw filter token with its interpretation pinned.
type token struct {
	raw  string
	kind TokenKind
	pid  int
}

// Filter selects windows by a list of caller-supplied tokens with OR
// semantics: a window matches if any token matches it.
//
// Each token is interpreted once, against the window set the filter is
// built from, trying in order: exact window id, exact pid, exact app name,
// title substring. The first interpretation that matches some window wins
// and is then used for every window, so a token equal to both a live pid
// and a fragment of some title selects by pid only. A token matching
// nothing falls through to a title substring that selects nothing; that is
// not an error.
type Filter struct {
	tokens []token
}

// NewFilter builds a Filter from raw tokens, resolving each token's
// interpretation against windows.
func NewFilter(tokens []string, windows []WindowRecord) *Filter {
	f := &Filter{}
	for _, raw := range tokens {
		if raw == "" {
			continue
		}
		f.tokens = append(f.tokens, classify(raw, windows))
	}
	return f
}

// Empty reports whether the filter has no tokens.
func (f *Filter) Empty() bool {
	return len(f.tokens) == 0
}

// Matches reports whether any token matches w. An empty filter matches
// nothing; callers decide what that means (close with no tokens selects
// everything, exclude with no tokens excludes nothing).
func (f *Filter) Matches(w WindowRecord) bool {
	for _, t := range f.tokens {
		if matchOne(t, w) {
			return true
		}
	}
	return false
}

// Selected returns the windows the filter matches. With no tokens every
// window is selected.
func (f *Filter) Selected(windows []WindowRecord) []WindowRecord {
	if f.Empty() {
		return windows
	}
	var result []WindowRecord
	for _, w := range windows {
		if f.Matches(w) {
			result = append(result, w)
		}
	}
	return result
}

// Excluding returns the windows the filter does not match. With no tokens
// every window is kept.
func (f *Filter) Excluding(windows []WindowRecord) []WindowRecord {
	if f.Empty() {
		return windows
	}
	var result []WindowRecord
	for _, w := range windows {
		if !f.Matches(w) {
			result = append(result, w)
		}
	}
	return result
}

func classify(raw string, windows []WindowRecord) token {
	for _, w := range windows {
		if w.WindowID == raw {
			return token{raw: raw, kind: TokenWindowID}
		}
	}
	if pid, err := strconv.Atoi(raw); err == nil {
		for _, w := range windows {
			if w.PID == pid {
				return token{raw: raw, kind: TokenPID, pid: pid}
			}
		}
	}
	for _, w := range windows {
		if w.AppName == raw {
			return token{raw: raw, kind: TokenAppName}
		}
	}
	return token{raw: raw, kind: TokenTitle}
}

func matchOne(t token, w WindowRecord) bool {
	switch t.kind {
	case TokenWindowID:
		return w.WindowID == t.raw
	case TokenPID:
		return w.PID == t.pid
	case TokenAppName:
		return w.AppName == t.raw
	default:
		return t.raw != "" && strings.Contains(strings.ToLower(w.Title), strings.ToLower(t.raw))
	}
}
