package redis

import "fmt"

// schemaStorageKey is the hash holding one field per component name, each
// field storing that component's JSON schema.
func schemaStorageKey(namespace string) string {
	return fmt.Sprintf("%s:SCHEMA", namespace)
}

// snapshotKey stores the encoded bytes of one snapshot.
func snapshotKey(namespace string, id string) string {
	return fmt.Sprintf("%s:SNAPSHOT:%s", namespace, id)
}

// snapshotLatestKey stores the ID of the most recently saved snapshot.
func snapshotLatestKey(namespace string) string {
	return fmt.Sprintf("%s:SNAPSHOT-LATEST", namespace)
}

// snapshotIndexKey is the set of all snapshot IDs saved under the namespace.
func snapshotIndexKey(namespace string) string {
	return fmt.Sprintf("%s:SNAPSHOT-IDS", namespace)
}
