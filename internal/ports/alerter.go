package ports

// Alerter shows a blocking error message to the user
type Alerter interface {
	Alert(title, message string) error
}
