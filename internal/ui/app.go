package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"ChalkTalk/internal/board"
	"ChalkTalk/internal/export"
	"ChalkTalk/internal/interpret"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const prefSpeedKey = "speed_multiplier"

// Config wires the window to its collaborators. Interpreter is nil in
// viewer mode; Speak, when set, receives narration text for the external
// speech collaborator.
type Config struct {
	Session     *board.Session
	Interpreter *interpret.Client
	ShareLink   string
	Viewer      bool
	Speak       func(string)
}

// RunApp builds the window and runs the Fyne main loop until close.
func RunApp(cfg Config) {
	a := app.NewWithID("com.chalktalk.board")
	w := a.NewWindow("ChalkTalk")
	w.Resize(fyne.NewSize(1200, 800))

	sess := cfg.Session
	boardW := NewBoardWidget(sess)

	// No animation time passes while the window is in the background.
	a.Lifecycle().SetOnExitedForeground(func() { sess.SetPaused(true) })
	a.Lifecycle().SetOnEnteredForeground(func() { sess.SetPaused(false) })

	status := widget.NewLabel("Ready")
	if cfg.ShareLink != "" {
		status.SetText("Sharing at " + cfg.ShareLink)
	}

	caption := widget.NewLabel("")
	caption.Wrapping = fyne.TextWrapWord
	caption.Alignment = fyne.TextAlignCenter

	chat, appendChat := newChatLog(a.Preferences())

	mult := a.Preferences().FloatWithFallback(prefSpeedKey, 1.0)
	sess.SetSpeedMultiplier(mult)
	speed := widget.NewSlider(0.5, 3.0)
	speed.Step = 0.1
	speed.SetValue(sess.SpeedMultiplier())
	speed.OnChanged = func(v float64) {
		sess.SetSpeedMultiplier(v)
		a.Preferences().SetFloat(prefSpeedKey, v)
	}
	speedBox := container.NewHBox(
		widget.NewLabel("Speed:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), speed),
	)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			if !sess.Undo() {
				status.SetText("Nothing to undo")
			}
			boardW.Refresh()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			sess.Clear()
			boardW.Refresh()
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			exportBoard(w, sess, status)
		}),
	)

	input := widget.NewEntry()
	input.SetPlaceHolder("Ask the tutor to draw or explain something...")
	ask := func() {
		text := strings.TrimSpace(input.Text)
		if text == "" || cfg.Interpreter == nil {
			return
		}
		input.SetText("")
		appendChat("you", text)
		status.SetText("Thinking...")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
			defer cancel()
			actions, err := cfg.Interpreter.Interpret(ctx, text)
			fyne.Do(func() {
				applyOutcome(actions, err, sess, boardW, caption, status, appendChat, cfg.Speak)
			})
		}()
	}
	input.OnSubmitted = func(string) { ask() }
	askBtn := widget.NewButtonWithIcon("Ask", theme.MailSendIcon(), ask)

	var bottom fyne.CanvasObject = container.NewBorder(caption, nil, nil, askBtn, input)
	var top fyne.CanvasObject = container.NewBorder(nil, nil, tb, speedBox, status)
	if cfg.Viewer {
		// Replicated boards are read-only; refresh on each relayed event.
		sess.OnCommandDone = func(board.Command) { fyne.Do(boardW.Refresh) }
		sess.OnClear = func() { fyne.Do(boardW.Refresh) }
		sess.OnUndo = func() { fyne.Do(boardW.Refresh) }
		bottom = container.NewCenter(widget.NewLabel("Viewing a shared board (read-only)"))
		top = status
	}

	chatPane := container.NewBorder(widget.NewLabel("Lesson log"), nil, nil, nil, chat)
	split := container.NewHSplit(boardW, chatPane)
	split.SetOffset(0.75)

	w.SetContent(container.NewBorder(top, bottom, nil, nil, split))
	w.ShowAndRun()
}

// applyOutcome routes an interpretation result: drawing commands to the
// queue, narration to the caption and speech hook, quiz text to the chat. A
// failed or empty interpretation changes nothing on the board.
func applyOutcome(actions []interpret.Action, err error, sess *board.Session,
	boardW *BoardWidget, caption *widget.Label, status *widget.Label,
	appendChat func(role, text string), speak func(string)) {

	if err != nil {
		log.Printf("[ui] interpretation failed: %v", err)
		appendChat("tutor", "Sorry, I couldn't work that one out. Try again?")
		status.SetText("Interpretation failed")
		return
	}

	outcome := interpret.MapActions(actions)
	if len(outcome.Commands) == 0 && len(outcome.Narration) == 0 && len(outcome.Quiz) == 0 {
		appendChat("tutor", "I didn't find anything to draw for that.")
		status.SetText("Ready")
		return
	}

	if len(outcome.Commands) > 0 {
		sess.Enqueue(outcome.Commands)
		boardW.Refresh()
	}
	if len(outcome.Narration) > 0 {
		line := strings.Join(outcome.Narration, " ")
		caption.SetText(line)
		for _, n := range outcome.Narration {
			appendChat("tutor", n)
		}
		if speak != nil {
			go speak(line)
		}
	}
	for _, q := range outcome.Quiz {
		appendChat("quiz", q)
	}
	status.SetText("Ready")
}

func exportBoard(w fyne.Window, sess *board.Session, status *widget.Label) {
	dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		path := uc.URI().Path()
		uc.Close()
		if err := export.PDF(path, sess); err != nil {
			log.Printf("[ui] export failed: %v", err)
			status.SetText("Export failed")
			return
		}
		status.SetText("Exported " + path)
	}, w)
}
