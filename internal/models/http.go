// Package models defines the request and response data structures used
// for communication between clients and the wordcount service. Every
// response carries a success flag; failures add an error message.
package models

// AddURLRequest asks the service to fetch a page and store its word count.
type AddURLRequest struct {
	// URL is the page to download and count.
	URL string `json:"url"`
}

// URLPayload is the client-facing view of a stored record.
type URLPayload struct {
	Domain    string `json:"domain"`
	URL       string `json:"url"`
	WordCount int    `json:"wordcount"`
	Favorite  bool   `json:"favorite"`
}

// AddURLResponse is returned after a record was created.
type AddURLResponse struct {
	Success bool       `json:"success"`
	URL     URLPayload `json:"url"`
}

// ListURLsResponse carries one page of a user's records for a domain.
type ListURLsResponse struct {
	Success bool         `json:"success"`
	URLs    []URLPayload `json:"urls"`
}

// ListDomainsResponse carries the user's distinct domains.
type ListDomainsResponse struct {
	Success bool     `json:"success"`
	Domains []string `json:"domains"`
}

// FavoriteChangeRequest sets the favorite flag on one record.
type FavoriteChangeRequest struct {
	// URLID is the record id returned by the store.
	URLID string `json:"url_id"`

	// IsFavorite is the desired value; repeating the same value is a no-op.
	IsFavorite bool `json:"isFavorite"`
}

// DomainCountResponse aggregates a user's records for one domain.
type DomainCountResponse struct {
	Success bool `json:"success"`

	// DCount is the number of stored documents.
	DCount int `json:"dcount"`

	// WCount is the summed word count over those documents.
	WCount int `json:"wcount"`
}

// SuccessResponse is the bare acknowledgement envelope.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the failure envelope. Error holds a sanitized message,
// never a raw store or transport error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// VerifyRequest confirms that a bearer token belongs to the given email.
type VerifyRequest struct {
	Email string `json:"email"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest creates a new account.
type SignupRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// AuthUser is the public account view embedded in auth responses.
type AuthUser struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// AuthResponse is returned by login and signup with a fresh token.
type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}
