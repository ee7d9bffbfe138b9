package ui

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const prefChatKey = "lesson_log"

type chatEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// newChatLog returns the lesson log list and an append function. Entries
// persist through Preferences so a lesson survives an app restart.
func newChatLog(prefs fyne.Preferences) (fyne.CanvasObject, func(role, text string)) {
	var entries []chatEntry
	if raw := prefs.String(prefChatKey); raw != "" {
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			entries = nil
		}
	}

	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Wrapping = fyne.TextWrapWord
			return l
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			e := entries[i]
			o.(*widget.Label).SetText(fmt.Sprintf("[%s] %s", e.Role, e.Text))
		},
	)

	appendEntry := func(role, text string) {
		entries = append(entries, chatEntry{Role: role, Text: text})
		if data, err := json.Marshal(entries); err == nil {
			prefs.SetString(prefChatKey, string(data))
		}
		list.Refresh()
		list.ScrollToBottom()
	}
	return list, appendEntry
}
