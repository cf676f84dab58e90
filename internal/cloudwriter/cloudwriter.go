package cloudwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
)

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// NewFactory returns the writer factory for a cloud provider.
func NewFactory(provider, region string) (CloudWriterFactory, error) {
	switch provider {
	case "s3":
		factory, err := NewS3WriterFactory(region)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		return factory, nil
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", provider)
	}
}

// LocalWriterFactory stores objects as files below BaseDir. A non-empty
// bucket becomes a sub-directory.
type LocalWriterFactory struct {
	BaseDir string
}

func NewLocalWriterFactory(baseDir string) *LocalWriterFactory {
	return &LocalWriterFactory{BaseDir: baseDir}
}

func (f *LocalWriterFactory) NewWriter(bucket, objectPath string) (CloudWriter, error) {
	path := filepath.Join(f.BaseDir, bucket, objectPath)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}
