package models

// ServerAssignedID reports whether id was assigned by the remote store.
//
// The remote store identifies rows by a decimal index, so an identifier is
// server-assigned exactly when the whole string is base-10 digits. Anything
// else (empty string, UUID, random token) is a locally generated identifier
// for a record that has not been created remotely yet. This classification
// is the sole signal deciding create vs update when persisting.
func ServerAssignedID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}
