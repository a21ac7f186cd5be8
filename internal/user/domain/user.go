// Package domain models the storefront visitor. Authentication is
// mocked: there are no credentials, only a tagged Authenticated/Guest
// variant replacing the loosely typed user object of the original app.
package domain

// User is either an authenticated visitor or a guest. The zero value is
// a guest.
type User struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Guest returns the anonymous visitor.
func Guest() User {
	return User{}
}

// Authenticate returns a signed-in visitor.
func Authenticate(name, email string) User {
	return User{Authenticated: true, Name: name, Email: email}
}

// DisplayName is the name shown on reviews; guests post as "Visitante".
func (u User) DisplayName() string {
	if u.Authenticated && u.Name != "" {
		return u.Name
	}
	return "Visitante"
}
