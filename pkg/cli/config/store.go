package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/t-okuda/relwatch/pkg/domain/interfaces"
	"github.com/t-okuda/relwatch/pkg/infra/kv"
)

// Store holds fingerprint store configuration.
type Store struct {
	Backend             string
	CacheDir            string
	FirestoreProject    string
	FirestoreCollection string
	GCSBucket           string
	GCSPrefix           string
}

// Flags returns CLI flags for store configuration
func (c *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store",
			Usage:       "Fingerprint store backend (file, firestore, gcs, memory)",
			Value:       "file",
			Destination: &c.Backend,
			Sources:     cli.EnvVars("RELWATCH_STORE"),
		},
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "Cache directory for the file store",
			Value:       ".relwatch-cache",
			Destination: &c.CacheDir,
			Sources:     cli.EnvVars("RELWATCH_CACHE_DIR"),
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "Google Cloud project for the Firestore store",
			Destination: &c.FirestoreProject,
			Sources:     cli.EnvVars("RELWATCH_FIRESTORE_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding fingerprints",
			Value:       "fingerprints",
			Destination: &c.FirestoreCollection,
			Sources:     cli.EnvVars("RELWATCH_FIRESTORE_COLLECTION"),
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "GCS bucket for the gcs store",
			Destination: &c.GCSBucket,
			Sources:     cli.EnvVars("RELWATCH_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix for the gcs store",
			Value:       "fingerprints/",
			Destination: &c.GCSPrefix,
			Sources:     cli.EnvVars("RELWATCH_GCS_PREFIX"),
		},
	}
}

// Build constructs the configured store. The returned closer releases
// backend resources and may be a no-op.
func (c *Store) Build(ctx context.Context) (interfaces.Store, func() error, error) {
	noop := func() error { return nil }

	switch c.Backend {
	case "file":
		s, err := kv.NewFile(c.CacheDir)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case "firestore":
		if c.FirestoreProject == "" {
			return nil, nil, goerr.New("firestore-project is required for the firestore store")
		}
		s, err := kv.NewFirestore(ctx, c.FirestoreProject, c.FirestoreCollection)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case "gcs":
		if c.GCSBucket == "" {
			return nil, nil, goerr.New("gcs-bucket is required for the gcs store")
		}
		s, err := kv.NewGCS(ctx, c.GCSBucket, c.GCSPrefix)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case "memory":
		return kv.NewMemory(), noop, nil

	default:
		return nil, nil, goerr.New("unknown store backend", goerr.V("backend", c.Backend))
	}
}
