package sdk

// Asset is a ticker string understood by the host custody layer. A presale
// names two of them: the token being sold and the payment asset collected.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetHive.String()
func (a Asset) String() string {
	return string(a)
}
