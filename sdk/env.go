package sdk

// Sender identifies the principal that signed the current contract call.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the per-call execution environment snapshot supplied by the host.
// Timestamp stays a string because hosts flip between unix seconds and iso text.
type Env struct {
	Sender     Sender
	ContractId string
	TxId       string
	BlockHeight uint64
	Timestamp  string
}
