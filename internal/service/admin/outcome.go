package admin

// Status classifies how an operation ended
type Status int

const (
	// StatusNone means nothing happened worth telling the user, e.g. toggling a missing id
	StatusNone Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "none"
	}
}

// Outcome is the result of a workflow operation. Redirect is empty when the
// caller should render the accompanying page instead.
type Outcome struct {
	Status   Status
	Message  string
	Redirect string
}

// Failed reports whether the outcome carries an error message
func (o Outcome) Failed() bool { return o.Status == StatusFailure }

// Page is a named view with its attributes
type Page struct {
	View    string
	Data    map[string]any
	Outcome Outcome
}

func success(message, redirect string) Outcome {
	return Outcome{Status: StatusSuccess, Message: message, Redirect: redirect}
}

// Failure turns err into the user-facing error outcome
func Failure(err error, redirect string) Outcome {
	return Outcome{Status: StatusFailure, Message: failurePrefix + err.Error(), Redirect: redirect}
}

func redirectOnly(redirect string) Outcome {
	return Outcome{Status: StatusNone, Redirect: redirect}
}

const failurePrefix = "Lỗi: "
