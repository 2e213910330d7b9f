// Package source loads the launch dataset from CSV files, SQLite databases or
// Cloud Storage objects.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/louisbranch/launchboard/internal/launch"
	launchsqlite "github.com/louisbranch/launchboard/internal/launch/storage/sqlite"
)

const (
	gcsScheme    = "gs://"
	sqliteScheme = "sqlite://"
)

// ErrUnsupportedSource reports a dataset location that cannot be read.
var ErrUnsupportedSource = errors.New("unsupported dataset source")

// Kind identifies how a dataset location is read.
type Kind string

const (
	KindCSV    Kind = "csv"
	KindSQLite Kind = "sqlite"
	KindGCS    Kind = "gcs"
)

// ObjectOpener opens one Cloud Storage object for reading.
type ObjectOpener func(ctx context.Context, bucket, object string) (io.ReadCloser, error)

// Loader resolves dataset locations. The zero value reads Cloud Storage with
// application default credentials.
type Loader struct {
	OpenObject ObjectOpener
}

// Open loads the dataset at uri with a default Loader.
func Open(ctx context.Context, uri string) (*launch.Dataset, error) {
	return Loader{}.Open(ctx, uri)
}

// Classify reports which reader handles uri.
func Classify(uri string) Kind {
	uri = strings.TrimSpace(uri)
	switch {
	case strings.HasPrefix(uri, gcsScheme):
		return KindGCS
	case strings.HasPrefix(uri, sqliteScheme):
		return KindSQLite
	}
	switch strings.ToLower(filepath.Ext(uri)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	default:
		return KindCSV
	}
}

// Open loads and validates the dataset at uri.
func (l Loader) Open(ctx context.Context, uri string) (*launch.Dataset, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("%w: location is required", ErrUnsupportedSource)
	}
	switch Classify(uri) {
	case KindGCS:
		return l.openGCS(ctx, uri)
	case KindSQLite:
		return openSQLite(ctx, strings.TrimPrefix(uri, sqliteScheme))
	default:
		return openCSVFile(uri)
	}
}

func openCSVFile(path string) (*launch.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()
	return datasetFromCSV(path, file)
}

func datasetFromCSV(name string, r io.Reader) (*launch.Dataset, error) {
	records, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	ds, err := launch.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return ds, nil
}

func openSQLite(ctx context.Context, path string) (*launch.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	store, err := launchsqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	ds, err := store.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// SplitObjectURI splits gs://bucket/object into its parts.
func SplitObjectURI(uri string) (bucket string, object string, err error) {
	rest, ok := strings.CutPrefix(uri, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %q is not a gs:// uri", ErrUnsupportedSource, uri)
	}
	bucket, object, _ = strings.Cut(rest, "/")
	if bucket == "" || object == "" {
		return "", "", fmt.Errorf("%w: %q needs a bucket and an object", ErrUnsupportedSource, uri)
	}
	return bucket, object, nil
}

func (l Loader) openGCS(ctx context.Context, uri string) (*launch.Dataset, error) {
	bucket, object, err := SplitObjectURI(uri)
	if err != nil {
		return nil, err
	}
	open := l.OpenObject
	if open == nil {
		open = openStorageObject
	}
	rc, err := open(ctx, bucket, object)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	defer rc.Close()
	return datasetFromCSV(uri, rc)
}

// storageObject closes the client together with the object reader.
type storageObject struct {
	*storage.Reader
	client *storage.Client
}

func (o storageObject) Close() error {
	readErr := o.Reader.Close()
	clientErr := o.client.Close()
	return errors.Join(readErr, clientErr)
}

func openStorageObject(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return storageObject{Reader: reader, client: client}, nil
}
