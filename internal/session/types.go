package session

// StorageKey is where the signed-in session is persisted.
const StorageKey = "trackfit:auth"

const (
	DefaultName    = "User"
	DefaultInitial = "U"
	DefaultTitle   = "TrackFit"
)

// Session is the locally stored sign-in state.
type Session struct {
	UserID    string
	Name      string
	Email     string
	AuthToken string
}

// View is what the profile pill and profile page display.
type View struct {
	Name    string
	Email   string
	Initial string
	Title   string // page title: the raw name, or DefaultTitle
}

// --- UseCase Inputs ---

type StartInput struct {
	Name  string
	Email string
}

// --- UseCase Outputs ---

type StartOutput struct {
	Session Session
	View    View
}

type CurrentOutput struct {
	SignedIn bool
	View     View
}
