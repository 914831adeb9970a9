// internal/handlers/ws_codes.go
package handlers

// Custom WebSocket close codes used by the lobby snapshot stream. These give
// clients a more specific reason for closure than the standard codes.
const (
	BadSubprotocolError = 3000 // Client connected with an unsupported subprotocol.
	InvalidLobbyIDError = 3003 // Target lobby ID in the WS URL is malformed or unknown.
	LobbyDeletedClose   = 3004 // Lobby was dissolved; the stream has nothing left to send.
)
