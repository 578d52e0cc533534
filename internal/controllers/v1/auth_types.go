package v1

import "time"

type SignUpRequest struct {
	Email       string   `json:"email" example:"ada@example.com"`  // Email address, used to sign in
	Password    string   `json:"password" example:"correct horse"` // At least 8 characters
	Name        string   `json:"name" example:"Ada Lovelace"`      // Display name
	CountryCode string   `json:"countryCode" example:"ID"`         // ISO 3166-1 alpha-2 code. Determines the currency
	Latitude    *float64 `json:"latitude" example:"-6.2"`          // Used to look up the country when no country code is given
	Longitude   *float64 `json:"longitude" example:"106.816666"`   // Used to look up the country when no country code is given
}

type SignInRequest struct {
	Email    string `json:"email" example:"ada@example.com"`  // Email address of the user
	Password string `json:"password" example:"correct horse"` // Password of the user
}

type Session struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.signature"` // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2024-04-09T19:28:44Z"`                           // Time the token expires at
	User      User      `json:"user"`                                                               // The signed in user
}

type SessionResponse struct {
	Error *string  `json:"error" example:"the email address or the password is wrong"` // The error, if any occurred
	Data  *Session `json:"data"`                                                       // The session, if sign in was successful
}
