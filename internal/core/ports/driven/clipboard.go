package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// Write places text on the clipboard.
	Write(text string) error
}
