package models

// Session holds everything one browser session owns: its lists and the
// two one-shot flash messages shown on the next rendered page.
type Session struct {
	Lists      []*List `json:"lists"`
	LastListID int     `json:"last_list_id"`
	Error      string  `json:"error,omitempty"`
	Success    string  `json:"success,omitempty"`
}

// NewSession returns empty state for a first visit.
func NewSession() *Session {
	return &Session{Lists: []*List{}}
}

// TakeFlash returns the pending flash messages and clears them.
func (s *Session) TakeFlash() (errMsg, success string) {
	errMsg, success = s.Error, s.Success
	s.Error, s.Success = "", ""
	return errMsg, success
}
