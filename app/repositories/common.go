package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// writeMu serializes write transactions across all repositories.
// Badger detects conflicting transactions but does not retry them, and
// the sequence counters plus the cascade delete must never lose an
// update, so writers take turns instead.
var writeMu sync.Mutex

// update runs fn inside a write transaction while holding the shared
// write lock.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	writeMu.Lock()
	defer writeMu.Unlock()
	return db.Update(fn)
}

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a record with the same key already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrPostNotFound is returned by relation repositories when the
	// referenced post does not exist.
	ErrPostNotFound = errors.New("referenced post not found")
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix    = "user:"
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"
	LikeKeyPrefix    = "like:"

	// Sequence keys for auto-incrementing IDs
	PostSeqKey    = "seq:post"
	CommentSeqKey = "seq:comment"
)

// OpenInMemory opens a Badger instance that lives entirely in process
// memory. All state is gone when the process exits.
func OpenInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	return badger.Open(opts)
}

// userKey builds the key for a user record.
func userKey(username string) []byte {
	return []byte(UserKeyPrefix + username)
}

// postKey builds the key for a post record.
func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))
}

// commentKey builds the key for a comment record. Comments are keyed
// under their post so a single prefix scan covers one post's comments.
func commentKey(postID, id int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d", CommentKeyPrefix, postID, id))
}

// commentPrefix is the key prefix covering all comments of one post.
func commentPrefix(postID int) []byte {
	return []byte(fmt.Sprintf("%s%d:", CommentKeyPrefix, postID))
}

// likeKey builds the key for one user's like of one post.
func likeKey(postID int, username string) []byte {
	return []byte(fmt.Sprintf("%s%d:%s", LikeKeyPrefix, postID, username))
}

// likePrefix is the key prefix covering all likes of one post.
func likePrefix(postID int) []byte {
	return []byte(fmt.Sprintf("%s%d:", LikeKeyPrefix, postID))
}

// getNextID gets the next available ID for a given sequence key. Ids
// are strictly increasing within a process and never reused, even
// after deletions.
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	// Store new ID
	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// postExists verifies the referenced post inside txn. Relation writes
// call this so a like or comment is never committed against a post a
// concurrent cascade delete has already removed.
func postExists(txn *badger.Txn, postID int) error {
	_, err := txn.Get(postKey(postID))
	if err == badger.ErrKeyNotFound {
		return ErrPostNotFound
	}
	return err
}

// countPrefix counts the keys under prefix within txn.
func countPrefix(txn *badger.Txn, prefix []byte) int {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	count := 0
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		count++
	}
	return count
}

// deletePrefix removes every key under the given prefix within txn.
func deletePrefix(txn *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
