package models

// ToHeaderRef is a single recipient reference persisted alongside a scheduled
// email. It stores an API URI and the property carrying the address, so the
// to header can be re-derived instead of baking raw addresses into the
// snapshot.
type ToHeaderRef struct {
	APIURI   string `json:"api_uri"`
	Property string `json:"property"`
}
