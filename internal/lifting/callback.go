package lifting

// Trigger identifies the page control that fired a callback.
type Trigger string

const (
	TriggerInitial       Trigger = ""
	TriggerMuscleOptions Trigger = "muscle-options"
	TriggerAllButton     Trigger = "all-button"
	TriggerYTDButton     Trigger = "ytd-button"
	TriggerL6WButton     Trigger = "l6w-button"

	buttonMarginRight = "1vw"
)

var buttonWindows = map[Trigger]Window{
	TriggerAllButton: WindowAll,
	TriggerYTDButton: WindowYTD,
	TriggerL6WButton: WindowL6W,
}

// CallbackRequest is sent by the page on every filter change.
// Muscles left out entirely means all default muscles; an empty list selects none.
type CallbackRequest struct {
	Trigger      Trigger  `json:"trigger"`
	Muscles      []string `json:"muscles"`
	ActiveWindow Window   `json:"activeWindow"`
}

type ButtonStyle struct {
	MarginRight string `json:"marginRight"`
	Color       string `json:"color,omitempty"`
	BorderColor string `json:"borderColor,omitempty"`
}

func (s ButtonStyle) Active() bool {
	return s.Color != ""
}

type CallbackResponse struct {
	Rows         [][]Widget  `json:"rows"`
	AllStyle     ButtonStyle `json:"allStyle"`
	YTDStyle     ButtonStyle `json:"ytdStyle"`
	L6WStyle     ButtonStyle `json:"l6wStyle"`
	ActiveWindow Window      `json:"activeWindow"`
}

// NextWindow resolves the window to show after trigger fired while active was shown.
// Range buttons jump to their window, a muscle change keeps the active one,
// anything else (initial load) starts at year to date.
func NextWindow(trigger Trigger, active Window) Window {
	if w, ok := buttonWindows[trigger]; ok {
		return w
	}
	if trigger == TriggerMuscleOptions && active.Valid() {
		return active
	}
	return DefaultWindow
}

// ButtonStyles returns the all, ytd and l6w button styles, only the active one highlighted.
func ButtonStyles(active Window, activeColor string) (all, ytd, l6w ButtonStyle) {
	style := func(w Window) ButtonStyle {
		s := ButtonStyle{MarginRight: buttonMarginRight}
		if w == active {
			s.Color = activeColor
			s.BorderColor = activeColor
		}
		return s
	}
	return style(WindowAll), style(WindowYTD), style(WindowL6W)
}
