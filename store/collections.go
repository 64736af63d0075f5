package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmuldo/colorlab/history"
	"github.com/mmuldo/colorlab/palette"
	"github.com/rs/zerolog/log"
)

// LoadPalette returns the palette of session. Missing or corrupt data yields
// an empty palette; only database errors are returned.
func (s *Store) LoadPalette(ctx context.Context, session string) (palette.Palette, error) {
	var p palette.Palette
	if ok, e := s.loadJSON(ctx, session, PaletteKey, &p); !ok {
		return nil, e
	}
	return p, nil
}

// SavePalette replaces the palette of session.
func (s *Store) SavePalette(ctx context.Context, session string, p palette.Palette) error {
	if p == nil {
		p = palette.Palette{}
	}
	return s.saveJSON(ctx, session, PaletteKey, p)
}

// LoadHistory returns the history of session, newest first.
func (s *Store) LoadHistory(ctx context.Context, session string) (history.History, error) {
	var h history.History
	if ok, e := s.loadJSON(ctx, session, HistoryKey, &h); !ok {
		return nil, e
	}
	h.Sort()
	return h, nil
}

// SaveHistory replaces the history of session.
func (s *Store) SaveHistory(ctx context.Context, session string, h history.History) error {
	if h == nil {
		h = history.History{}
	}
	return s.saveJSON(ctx, session, HistoryKey, h)
}

// loadJSON decodes the value under key into v. ok is false if there was
// nothing usable to decode.
func (s *Store) loadJSON(ctx context.Context, session, key string, v interface{}) (bool, error) {
	data, ok, e := s.Get(ctx, session, key)
	if e != nil || !ok {
		return false, e
	}
	if e := json.Unmarshal(data, v); e != nil {
		log.Warn().Err(e).Str("session", session).Str("key", key).Msg("discarding unreadable value")
		return false, nil
	}
	return true, nil
}

func (s *Store) saveJSON(ctx context.Context, session, key string, v interface{}) error {
	data, e := json.Marshal(v)
	if e != nil {
		return fmt.Errorf("encode %s: %w", key, e)
	}
	return s.Put(ctx, session, key, data)
}
