package entity

// Session is the authenticated acting-user context passed explicitly into use cases.
// A nil *Session means no user is signed in.
type Session struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	IDToken      string `json:"id_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// UID returns the session user id, or "" for a nil session.
func (s *Session) UID() string {
	if s == nil {
		return ""
	}

	return s.UserID
}

// SessionEventType describes a session transition
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "signed_in"
	SessionSignedOut SessionEventType = "signed_out"
)
