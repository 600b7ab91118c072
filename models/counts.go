package models

// ItemCounts aggregates, for one user, the number of records in each of the
// four item collections. It is the payload of both snapshot queries and
// live count subscriptions.
type ItemCounts struct {
	Credentials int64 `json:"credentials"`
	Cards       int64 `json:"cards"`
	BankDetails int64 `json:"bankDetails"`
	Documents   int64 `json:"documents"`
}

// Set assigns the count for the named collection. Unknown collection names
// are ignored.
func (c *ItemCounts) Set(collection string, count int64) {
	switch collection {
	case CollectionCredentials:
		c.Credentials = count
	case CollectionCards:
		c.Cards = count
	case CollectionBankDetails:
		c.BankDetails = count
	case CollectionDocuments:
		c.Documents = count
	}
}

// Get returns the count for the named collection, or zero for unknown names.
func (c ItemCounts) Get(collection string) int64 {
	switch collection {
	case CollectionCredentials:
		return c.Credentials
	case CollectionCards:
		return c.Cards
	case CollectionBankDetails:
		return c.BankDetails
	case CollectionDocuments:
		return c.Documents
	default:
		return 0
	}
}

// ItemCollections lists the four item collections in a stable order, used
// by the aggregator to fan out per-collection queries and subscriptions.
var ItemCollections = []string{
	CollectionCredentials,
	CollectionCards,
	CollectionBankDetails,
	CollectionDocuments,
}
