package model

import (
	"errors"
	"fmt"
)

// ErrUnknownScreenKind is returned when a record names a kind this build does not know
var ErrUnknownScreenKind = errors.New("unknown screen kind")

// ScreenRecord is the flat, serializable form of a Screen: a kind tag plus scalar params.
// A navigation stack is persisted as an ordered list of records.
type ScreenRecord struct {
	Kind   ScreenKind     `yaml:"kind"`
	Params map[string]any `yaml:"params,omitempty"`
}

const paramTitle = "title"

// EncodeScreen converts a screen into its record form
func EncodeScreen(s Screen) (ScreenRecord, error) {
	switch sc := s.(type) {
	case HomeScreen:
		return ScreenRecord{Kind: HomeScreenKind}, nil
	case CounterScreen:
		return ScreenRecord{
			Kind:   CounterScreenKind,
			Params: map[string]any{paramTitle: sc.Title},
		}, nil
	case nil:
		return ScreenRecord{}, fmt.Errorf("encode screen: %w: <nil>", ErrUnknownScreenKind)
	default:
		return ScreenRecord{}, fmt.Errorf("encode screen: %w: %s", ErrUnknownScreenKind, s.Kind())
	}
}

// DecodeScreen converts a record back into a screen.
// Missing or mistyped params decode to zero values, as with the view params helpers.
func DecodeScreen(rec ScreenRecord) (Screen, error) {
	switch rec.Kind {
	case HomeScreenKind:
		return HomeScreen{}, nil
	case CounterScreenKind:
		var title string
		if rec.Params != nil {
			if v, ok := rec.Params[paramTitle].(string); ok {
				title = v
			}
		}
		return CounterScreen{Title: title}, nil
	default:
		return nil, fmt.Errorf("decode screen: %w: %q", ErrUnknownScreenKind, rec.Kind)
	}
}

// EncodeScreens encodes a whole stack, bottom first
func EncodeScreens(screens []Screen) ([]ScreenRecord, error) {
	records := make([]ScreenRecord, 0, len(screens))
	for _, s := range screens {
		rec, err := EncodeScreen(s)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeScreens decodes a whole stack, bottom first
func DecodeScreens(records []ScreenRecord) ([]Screen, error) {
	screens := make([]Screen, 0, len(records))
	for i, rec := range records {
		s, err := DecodeScreen(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		screens = append(screens, s)
	}
	return screens, nil
}
