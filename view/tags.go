package view

// Tags name the regions tests and automation look up; they never change with the displayed text.
const (
	TagWelcomeLabel = "Welcome Label"
	TagCounter      = "Counter"
	TagIncrement    = "Increment"
)

// WelcomeText is shown at the top of the home screen
const WelcomeText = "Welcome to our counter"
