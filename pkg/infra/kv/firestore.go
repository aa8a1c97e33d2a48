package kv

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore is a managed key-value fingerprint store keeping one
// document per key in a collection.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

type firestoreEntry struct {
	Value string `firestore:"value"`
}

// NewFirestore creates a Firestore-backed store.
func NewFirestore(ctx context.Context, projectID, collection string, opts ...option.ClientOption) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client", goerr.V("project", projectID))
	}
	return &FirestoreStore{client: client, collection: collection}, nil
}

// GetValue returns the stored value, or defaultValue when the document does
// not exist or cannot be read.
func (s *FirestoreStore) GetValue(ctx context.Context, key, defaultValue string) (string, error) {
	snap, err := s.client.Collection(s.collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return defaultValue, nil
		}
		return defaultValue, goerr.Wrap(err, "failed to get document", goerr.V("key", key))
	}
	var e firestoreEntry
	if err := snap.DataTo(&e); err != nil {
		return defaultValue, goerr.Wrap(err, "failed to decode document", goerr.V("key", key))
	}
	return e.Value, nil
}

// SetValue overwrites the key's document.
func (s *FirestoreStore) SetValue(ctx context.Context, key, value string) error {
	_, err := s.client.Collection(s.collection).Doc(key).Set(ctx, firestoreEntry{Value: value})
	if err != nil {
		return goerr.Wrap(err, "failed to set document", goerr.V("key", key))
	}
	return nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
