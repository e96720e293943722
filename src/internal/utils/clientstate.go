package utils

// ClientState is the connection state of a networking client.
type ClientState int

const (
	Uninitialized ClientState = iota
	PeerCreated
	Queued
	Authenticated
	JoinedLobby
	DisconnectingFromMasterserver
	ConnectingToGameserver
	ConnectedToGameserver
	Joining
	Joined
	Leaving
	DisconnectingFromGameserver
	ConnectingToMasterserver
	QueuedComingFromGameserver
	Disconnecting
	Disconnected
	ConnectedToMaster
	ConnectingToNameServer
	ConnectedToNameServer
	DisconnectingFromNameServer
	Authenticating
)

var clientStateNames = [...]string{
	"Uninitialized",
	"PeerCreated",
	"Queued",
	"Authenticated",
	"JoinedLobby",
	"DisconnectingFromMasterserver",
	"ConnectingToGameserver",
	"ConnectedToGameserver",
	"Joining",
	"Joined",
	"Leaving",
	"DisconnectingFromGameserver",
	"ConnectingToMasterserver",
	"QueuedComingFromGameserver",
	"Disconnecting",
	"Disconnected",
	"ConnectedToMaster",
	"ConnectingToNameServer",
	"ConnectedToNameServer",
	"DisconnectingFromNameServer",
	"Authenticating",
}

// String returns the state name, or "???" for unknown states.
func (s ClientState) String() string {
	if s < 0 || int(s) >= len(clientStateNames) {
		return "???"
	}
	return clientStateNames[s]
}

// ClientStateToString returns the name of an enumerated client state, or "???" if out of range.
func ClientStateToString(state int) string {
	return ClientState(state).String()
}
