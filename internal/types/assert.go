package types

// Assertion represents the check an assert action performs.
// Closed sum type, same discipline as Action.
type Assertion interface {
	assertion()
}

// AssertVisible checks that the element is visible.
type AssertVisible struct{}

func (AssertVisible) assertion() {}

// AssertHidden checks that the element is hidden.
type AssertHidden struct{}

func (AssertHidden) assertion() {}

// AssertEnabled checks that the element is enabled.
type AssertEnabled struct{}

func (AssertEnabled) assertion() {}

// AssertDisabled checks that the element is disabled.
type AssertDisabled struct{}

func (AssertDisabled) assertion() {}

// AssertChecked checks that the element is checked.
type AssertChecked struct{}

func (AssertChecked) assertion() {}

// AssertUnchecked checks that the element is not checked.
type AssertUnchecked struct{}

func (AssertUnchecked) assertion() {}

// AssertTextEquals checks that the element's text equals Text.
type AssertTextEquals struct {
	Text string
}

func (AssertTextEquals) assertion() {}

// AssertTextContains checks that the element's text contains Text.
type AssertTextContains struct {
	Text string
}

func (AssertTextContains) assertion() {}

// AssertAttributeEquals checks that the element attribute Attr equals Value.
type AssertAttributeEquals struct {
	Attr  string
	Value string
}

func (AssertAttributeEquals) assertion() {}

// AssertHasClass checks that the element carries the CSS class ClassName.
type AssertHasClass struct {
	ClassName string
}

func (AssertHasClass) assertion() {}
