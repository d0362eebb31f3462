package datastore

import "fmt"

// OpenStore connects to the history store for the given mode:
// "local" uses the SQLite file at dbFile, "remote" posts to a Datasette
// instance at remoteURL.
func OpenStore(mode, dbFile, remoteURL, apiToken string) (Store, error) {
	var store Store
	switch mode {
	case "local", "":
		store = NewSQLiteStore(dbFile)
	case "remote":
		store = NewDatasetteClient(remoteURL, apiToken)
	default:
		return nil, fmt.Errorf("invalid history mode: %s", mode)
	}

	if err := store.Connect(); err != nil {
		return nil, err
	}
	return store, nil
}
