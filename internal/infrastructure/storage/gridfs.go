package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"hospital-dashboard/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gridFSTimeout = 10 * time.Second

// GridFSStore keeps photos in a MongoDB GridFS bucket, keyed by file name.
type GridFSStore struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

func NewGridFSStore(ctx context.Context, cfg config.StorageConfig, log *logrus.Logger) (*GridFSStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	bucket, err := gridfs.NewBucket(client.Database(cfg.MongoDB), options.GridFSBucket().SetName(cfg.MongoBucket))
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("open GridFS bucket: %w", err)
	}

	log.Info("Successfully connected to MongoDB GridFS")

	return &GridFSStore{client: client, bucket: bucket}, nil
}

func (s *GridFSStore) Save(ctx context.Context, name string, data io.Reader) (string, error) {
	if err := s.Delete(ctx, name); err != nil {
		return "", err
	}

	upload, err := s.bucket.OpenUploadStream(name)
	if err != nil {
		return "", fmt.Errorf("open upload stream: %w", err)
	}
	if err := upload.SetWriteDeadline(deadline(ctx)); err != nil {
		upload.Abort()
		return "", err
	}
	if _, err := io.Copy(upload, data); err != nil {
		upload.Abort()
		return "", fmt.Errorf("upload photo: %w", err)
	}
	if err := upload.Close(); err != nil {
		return "", fmt.Errorf("finish photo upload: %w", err)
	}
	return name, nil
}

func (s *GridFSStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(ref)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	if err := stream.SetReadDeadline(deadline(ctx)); err != nil {
		stream.Close()
		return nil, err
	}
	return stream, nil
}

// Delete removes every revision stored under ref.
func (s *GridFSStore) Delete(ctx context.Context, ref string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": ref})
	if err != nil {
		return fmt.Errorf("find photo revisions: %w", err)
	}
	defer cursor.Close(ctx)

	var files []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return fmt.Errorf("decode photo revisions: %w", err)
	}
	for _, f := range files {
		if err := s.bucket.Delete(f.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("delete photo revision: %w", err)
		}
	}
	return nil
}

func (s *GridFSStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(gridFSTimeout)
}
