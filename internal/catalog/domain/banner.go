package domain

// Banner is a promotional banner shown on the storefront home screen.
type Banner struct {
	ID       int    `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
