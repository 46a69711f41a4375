package types

// Action represents the single operation a step performs.
// This is a closed sum type: the action parsers produce exactly these
// variants, and the planner matches over them exhaustively.
type Action interface {
	action()
}

// MouseButton identifies which mouse button a click uses.
type MouseButton string

const (
	MouseLeft   MouseButton = "left"
	MouseRight  MouseButton = "right"
	MouseMiddle MouseButton = "middle"
)

// ScrollDirection identifies the direction of a scroll action.
type ScrollDirection string

const (
	ScrollUp    ScrollDirection = "up"
	ScrollDown  ScrollDirection = "down"
	ScrollLeft  ScrollDirection = "left"
	ScrollRight ScrollDirection = "right"
)

// ClickAction clicks a page element.
type ClickAction struct {
	TargetID   int
	Button     MouseButton
	ClickCount int
}

func (ClickAction) action() {}

// TypeAction types text into a page element.
type TypeAction struct {
	TargetID   int
	Text       string
	ClearFirst bool
	PressEnter bool
}

func (TypeAction) action() {}

// HoverAction moves the pointer over a page element.
type HoverAction struct {
	TargetID int
}

func (HoverAction) action() {}

// ScrollAction scrolls the page or a specific element.
type ScrollAction struct {
	Direction ScrollDirection
	Amount    int
	TargetID  *int
}

func (ScrollAction) action() {}

// WaitAction waits for a condition to hold, bounded by TimeoutMs.
type WaitAction struct {
	Condition WaitCondition
	TimeoutMs int
}

func (WaitAction) action() {}

// PressKeyAction presses a key, optionally with modifier keys held.
type PressKeyAction struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

func (PressKeyAction) action() {}

// NavigateAction loads a URL.
type NavigateAction struct {
	URL string
}

func (NavigateAction) action() {}

// GoBackAction navigates back in browser history.
type GoBackAction struct{}

func (GoBackAction) action() {}

// GoForwardAction navigates forward in browser history.
type GoForwardAction struct{}

func (GoForwardAction) action() {}

// RefreshAction reloads the current page.
type RefreshAction struct{}

func (RefreshAction) action() {}

// AssertAction checks an assertion against a page element.
type AssertAction struct {
	TargetID  int
	Assertion Assertion
}

func (AssertAction) action() {}

// SelectAction picks an option from a select element. Any subset of
// Value, Label, and Index may be set.
type SelectAction struct {
	TargetID int
	Value    *string
	Label    *string
	Index    *int
}

func (SelectAction) action() {}

// UploadFileAction attaches a file to a file input element.
type UploadFileAction struct {
	TargetID int
	FilePath string
}

func (UploadFileAction) action() {}

// ScreenshotAction captures a screenshot.
type ScreenshotAction struct {
	Name     string
	FullPage bool
}

func (ScreenshotAction) action() {}
