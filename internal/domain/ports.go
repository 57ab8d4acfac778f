package domain

// DocumentStore is the load/save/delete capability over single-record JSON
// documents keyed by identifier. Save overwrites whatever sits at the key.
// There is no index; discovery is a prefix scan over keys.
type DocumentStore interface {
	Save(key ID, v any) error
	Load(key ID, dst any) error
	Delete(key ID) error
	List(prefix string) ([]ID, error)
}
