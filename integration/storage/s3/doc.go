// Package s3 provides an S3-backed static store for serving route-tree
// static files from Amazon S3 or any S3-compatible service such as MinIO.
//
// Basic usage:
//
//	cfg := s3.Config{Bucket: "assets", Region: "us-east-1"}
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	files := static.NewFiles(store, static.WithCacheMaxAge(3600))
//
// Configuration is typically loaded from the environment:
//
//	cfg := config.MustLoad[s3.Config]()
//
// Missing objects are reported as static.ErrNotFound so the file server
// answers with a 404 instead of surfacing an S3 error.
package s3
