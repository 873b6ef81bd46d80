package tui

type scenarioDoneMsg struct {
	name      string
	output    string
	fragments []string
	err       error
}
