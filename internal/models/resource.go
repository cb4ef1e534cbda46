package models

// Resource is a single community-service record. Only active resources are
// ever shown to an end user; priority is the sole ranking key (higher first).
type Resource struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Location    string    `json:"location,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	IsActive    bool      `json:"is_active"`
	Priority    int       `json:"priority"`
}

// Category groups resources and is referenced by name in dialogue lookups
// (e.g. "Housing", "Legal Aid", "Crisis Support").
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}
