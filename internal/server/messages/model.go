package messages

// Message is one stored copy of a message. A message sent to a friend exists
// as two rows, one per owner, sharing the same id; a self-message has no
// recipient fields.
type Message struct {
	OwnerID  string
	ID       string
	Title    string
	Content  string // ciphertext, hex
	IV       string // per-message IV, hex
	FromID   string
	FromName string
	ToID     string
	ToName   string
	TimeMS   int64
}

// View is a decrypted message as returned to its owner.
type View struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text"`
	FromID   string `json:"from"`
	FromName string `json:"fromName"`
	ToID     string `json:"to,omitempty"`
	ToName   string `json:"toName,omitempty"`
	TimeMS   int64  `json:"time"`
}
