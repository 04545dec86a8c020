package services

// Outcome is the business result of Register or Login. The caller decides
// how to render it; Message gives the canonical user-facing text.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRegistered
	OutcomeUserExists
	OutcomeLoggedIn
	OutcomeUserNotFound
	OutcomeWrongPassword
)

var outcomeMessages = map[Outcome]string{
	OutcomeRegistered:    "Registration successful.",
	OutcomeUserExists:    "User already exists. Please choose a different username.",
	OutcomeLoggedIn:      "Login successful.",
	OutcomeUserNotFound:  "User does not exist. Please register first.",
	OutcomeWrongPassword: "Incorrect password.",
}

// Message returns the user-facing text for o, or "" for OutcomeNone.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// Success reports whether o completed the requested operation.
func (o Outcome) Success() bool {
	return o == OutcomeRegistered || o == OutcomeLoggedIn
}

func (o Outcome) String() string {
	switch o {
	case OutcomeRegistered:
		return "registered"
	case OutcomeUserExists:
		return "user_exists"
	case OutcomeLoggedIn:
		return "logged_in"
	case OutcomeUserNotFound:
		return "user_not_found"
	case OutcomeWrongPassword:
		return "wrong_password"
	default:
		return "none"
	}
}
