package friends

import "time"

// Link is one directed half of a friendship, stored on the owning user.
// The peer holds the mirrored half. Requestor marks the half whose owner
// initiated the request.
type Link struct {
	OwnerID      string    `json:"-"`
	PeerID       string    `json:"id"`
	PeerUsername string    `json:"username"`
	Confirmed    bool      `json:"confirmed"`
	Requestor    bool      `json:"requestor"`
	CreatedAt    time.Time `json:"-"`
}
