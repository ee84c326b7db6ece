package ui

// ShowSummaryMsg opens the submit summary overlay.
type ShowSummaryMsg struct{}

// DismissModalMsg closes the top overlay (Esc).
type DismissModalMsg struct{}

// SubmitMsg is sent when the user confirms the summary. The program exits after it.
type SubmitMsg struct {
	Values map[string]string
}
