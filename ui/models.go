package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/lai323/vocabcard/wordlist"
)

// BackMsg asks the parent view to leave the current one.
type BackMsg struct {
}

type HelpMsg struct {
}

type HelpModel struct {
	Keyhelp [][]string
	Active  bool
}

func (m HelpModel) View() string {
	var text []string
	text = append(text, "")
	text = append(text, "")
	for _, info := range m.Keyhelp {
		k, help := info[0], info[1]
		text = append(text,
			Line(
				40,
				Cell{
					Width: 4,
				},
				Cell{
					Width: 10,
					Align: LeftAlign,
					Text:  StyleKey(k),
				},
				Cell{
					Align: LeftAlign,
					Text:  StyleKeyHelp(help),
				},
			))
	}
	return strings.Join(text, "\n")
}

// CardModel renders one side of a flashcard.
type CardModel struct {
	Word     wordlist.Word
	Flipped  bool
	Favorite bool
	Known    bool
	Width    int
}

func (m CardModel) marks() string {
	var marks []string
	if m.Favorite {
		marks = append(marks, StyleMarkFavorite("♥ favorite"))
	}
	if m.Known {
		marks = append(marks, StyleMarkKnown("✓ known"))
	}
	return strings.Join(marks, "  ")
}

func (m CardModel) View() string {
	var lines []string
	style := CardStyle
	if !m.Flipped {
		lines = append(lines, StyleTerm(m.Word.Term))
		if m.Word.Pronunciation != "" {
			lines = append(lines, StylePronounce(m.Word.Pronunciation))
		}
		if m.Word.PartOfSpeech != "" {
			lines = append(lines, StylePart(m.Word.PartOfSpeech))
		}
		lines = append(lines, "", StyleSubtle("space: show meaning"))
	} else {
		style = CardBackStyle
		lines = append(lines, StyleMean(m.Word.Meaning))
		if m.Word.HasExample() {
			lines = append(lines, "", StyleExample(`"`+m.Word.Example+`"`))
		}
		lines = append(lines, "", StyleSubtle("space: show word"))
	}
	if marks := m.marks(); marks != "" {
		lines = append(lines, "", marks)
	}
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(JoinLines(lines...))
}

// ProgressBar wraps the bubbles progress bar for percentages in 0..100.
type ProgressBar struct {
	bar progress.Model
}

func NewProgressBar(width int) ProgressBar {
	p := ProgressBar{bar: progress.New(progress.WithDefaultGradient())}
	p.SetWidth(width)
	return p
}

func (p *ProgressBar) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	p.bar.Width = width
}

func (p ProgressBar) View(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return p.bar.ViewAs(percent / 100)
}

func Footer(width int, help string) string {

	if width < 80 {
		return StyleLogo(" vocabcard ")
	}

	t := time.Now()
	tstr := fmt.Sprintf("%s %02d:%02d:%02d", t.Weekday().String(), t.Hour(), t.Minute(), t.Second())

	return Line(
		width,
		Cell{
			Width: 13,
			Text:  StyleLogo(" vocabcard "),
		},
		Cell{
			Width: 50,
			Text:  StyleHelp(help),
		},
		Cell{
			Text:  StyleHelp(tstr),
			Align: RightAlign,
		},
	)
}

// Counter renders "label n" cells for an infobar.
func Counter(label string, n int) Cell {
	text := fmt.Sprintf("%s %d", label, n)
	return Cell{
		Width: len(text) + 2,
		Text:  StyleWordCount(text),
	}
}
