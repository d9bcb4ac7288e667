package domain

// Preferences holds the per-user remember-me state the login screen
// restores on launch. SavedEmail and SavedPassword are populated only
// while RememberMe is set; clearing it wipes both.
type Preferences struct {
	Record
	UserID        string `json:"user_id"`
	SavedEmail    string `json:"saved_email,omitempty"`
	SavedPassword string `json:"saved_password,omitempty"`
	RememberMe    bool   `json:"remember_me"`
}

// Forget clears the remembered credentials.
func (p *Preferences) Forget() {
	p.SavedEmail = ""
	p.SavedPassword = ""
	p.RememberMe = false
	p.Touch()
}

// Remember stores the credentials for the next launch.
func (p *Preferences) Remember(email, password string) {
	p.SavedEmail = email
	p.SavedPassword = password
	p.RememberMe = true
	p.Touch()
}

// Favorite marks a book a user starred.
type Favorite struct {
	Record
	UserID string `json:"user_id"`
	BookID int    `json:"book_id"`
}
