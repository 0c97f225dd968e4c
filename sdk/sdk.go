package sdk

// Host is the platform surface the contract executes against: a string kv
// store for contract state, asset custody (draw from the caller, transfer to
// an account, balance queries), the per-call environment, and a log sink.
// The hosting platform serializes calls; a Host never sees two operations
// against the same contract interleave.
type Host interface {
	Log(msg string)
	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)
	GetEnv() Env
	// Draw pulls amount units of asset from the current sender into contract
	// custody. It fails without side effects when the sender cannot cover it.
	Draw(amount int64, asset Asset) error
	// Transfer pays amount units of asset out of contract custody.
	Transfer(to Address, amount int64, asset Asset) error
	Balance(account Address, asset Asset) int64
}

// singleton host used everywhere, selected once at startup (wasm runtime,
// sqlite-backed local host, or the in-memory test host)
var host Host

func UseHost(h Host) {
	host = h
}

func currentHost() Host {
	if host == nil {
		panic("sdk: no host configured, call sdk.UseHost first")
	}
	return host
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello presale")
func Log(s string) {
	currentHost().Log(s)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	currentHost().StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return currentHost().StateGet(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	currentHost().StateDelete(key)
}

// GetEnv returns the execution environment of the current call.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	return currentHost().GetEnv()
}

// Draw pulls tokens from the caller into contract custody.
// Example payload: sdk.Draw(1000, sdk.AssetHive)
func Draw(amount int64, asset Asset) error {
	return currentHost().Draw(amount, asset)
}

// Transfer sends contract-held tokens towards a user address.
// Example payload: sdk.Transfer(sdk.Address("hive:alice"), 500, sdk.AssetHbd)
func Transfer(to Address, amount int64, asset Asset) error {
	return currentHost().Transfer(to, amount, asset)
}

// GetBalance queries the host custody balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:alice"), sdk.AssetHive)
func GetBalance(account Address, asset Asset) int64 {
	return currentHost().Balance(account, asset)
}
