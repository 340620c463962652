package core

import (
	"slices"
	"strings"
)

const (
	ActionQuit        = "quit"
	ActionToggle      = "toggle"
	ActionCursorLeft  = "cursor-left"
	ActionCursorRight = "cursor-right"
	ActionCursorUp    = "cursor-up"
	ActionCursorDown  = "cursor-down"
	ActionSelect      = "select"
	ActionZoomOut     = "zoom-out"
	ActionPrevious    = "previous"
	ActionNext        = "next"
	ActionJump        = "jump"
	ActionJumpSubmit  = "jump-submit"
	ActionClose       = "close"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopePicker, ScopeClosed}},
		{Keys: []string{"o"}, Action: ActionToggle, Description: "open/close", Scopes: []string{ScopePicker, ScopeClosed}},
		{Keys: []string{"left", "h"}, Action: ActionCursorLeft, Description: "left", Scopes: []string{ScopePicker}},
		{Keys: []string{"right", "l"}, Action: ActionCursorRight, Description: "right", Scopes: []string{ScopePicker}},
		{Keys: []string{"up", "k"}, Action: ActionCursorUp, Description: "up", Scopes: []string{ScopePicker}},
		{Keys: []string{"down", "j"}, Action: ActionCursorDown, Description: "down", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "pick", Scopes: []string{ScopePicker}},
		{Keys: []string{"backspace", "t"}, Action: ActionZoomOut, Description: "zoom out", Scopes: []string{ScopePicker}},
		{Keys: []string{"[", "pgup"}, Action: ActionPrevious, Description: "previous", Scopes: []string{ScopePicker}},
		{Keys: []string{"]", "pgdown"}, Action: ActionNext, Description: "next", Scopes: []string{ScopePicker}},
		{Keys: []string{"g", "/"}, Action: ActionJump, Description: "go to", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter"}, Action: ActionJumpSubmit, Description: "go", Scopes: []string{ScopeJump}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{ScopePicker, ScopeJump}},
	}
}

// DefaultKeybindingsByAction lists every key of each action, in binding
// order. Feeding the result back through ApplyKeyOverrides reproduces
// bindings.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" {
			continue
		}
		for _, k := range b.Keys {
			if !slices.Contains(out[b.Action], k) {
				out[b.Action] = append(out[b.Action], k)
			}
		}
	}
	return out
}

// ApplyKeyOverrides replaces the keys of every action that appears in
// overrides. A key the action already had keeps the scopes it had; a new key
// joins the action's first binding. Bindings left without keys are dropped.
// Empty overrides are skipped.
func ApplyKeyOverrides(bindings []KeyBinding, overrides map[string][]string) []KeyBinding {
	owner := map[string]map[string]int{}
	first := map[string]int{}
	for i, b := range bindings {
		if _, ok := first[b.Action]; !ok {
			first[b.Action] = i
			owner[b.Action] = map[string]int{}
		}
		for _, k := range b.Keys {
			if _, ok := owner[b.Action][k]; !ok {
				owner[b.Action][k] = i
			}
		}
	}

	keys := make([][]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.Keys
	}
	for action, raw := range overrides {
		want := cleanKeys(raw)
		at, known := first[action]
		if len(want) == 0 || !known {
			continue
		}
		for i, b := range bindings {
			if b.Action == action {
				keys[i] = nil
			}
		}
		for _, k := range want {
			i, ok := owner[action][k]
			if !ok {
				i = at
			}
			if !slices.Contains(keys[i], k) {
				keys[i] = append(keys[i], k)
			}
		}
	}

	out := make([]KeyBinding, 0, len(bindings))
	for i, b := range bindings {
		if len(keys[i]) == 0 {
			continue
		}
		b.Keys = keys[i]
		out = append(out, b)
	}
	return out
}

func cleanKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = normalizeKey(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
