package types

// WaitCondition represents what a wait action waits for.
// Closed sum type, same discipline as Action.
type WaitCondition interface {
	waitCondition()
}

// WaitDuration waits a fixed number of milliseconds.
type WaitDuration struct {
	Ms int
}

func (WaitDuration) waitCondition() {}

// ElementVisible waits until an element is visible.
type ElementVisible struct {
	TargetID int
}

func (ElementVisible) waitCondition() {}

// ElementHidden waits until an element is hidden.
type ElementHidden struct {
	TargetID int
}

func (ElementHidden) waitCondition() {}

// ElementEnabled waits until an element is enabled.
type ElementEnabled struct {
	TargetID int
}

func (ElementEnabled) waitCondition() {}

// TextPresent waits until the given text appears anywhere on the page.
type TextPresent struct {
	Text string
}

func (TextPresent) waitCondition() {}

// URLContains waits until the page URL contains the given substring.
type URLContains struct {
	Substring string
}

func (URLContains) waitCondition() {}

// PageLoaded waits until the page load event fires.
type PageLoaded struct {
	TimeoutMs int
}

func (PageLoaded) waitCondition() {}

// NetworkIdle waits until no network requests are in flight.
type NetworkIdle struct {
	TimeoutMs int
}

func (NetworkIdle) waitCondition() {}
