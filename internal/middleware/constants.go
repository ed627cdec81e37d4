package middleware

// HTTP header names
const (
	// HeaderPlayerID carries the authenticated player's UUID on game requests
	HeaderPlayerID = "X-Player-ID"
)

// Default Values
const (
	// EmptyPlayerID represents an empty or missing player ID
	EmptyPlayerID = ""
)

// Log Messages
const (
	// LogMsgMalformedPlayerID indicates the player identity header was not a valid UUID
	LogMsgMalformedPlayerID = "Malformed player identity header"
)
