// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package load

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/zstd"
)

// S3API is the part of the S3 client used to fetch sources.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Opener opens source files.  "-" is standard input, s3://bucket/key an
// S3 object and anything else a local path.  Names ending in .gz, .bz2
// or .zst are decompressed.
type Opener struct {
	// S3 is created from the default AWS configuration on first use
	// when nil.
	S3 S3API
}

// Open opens name for reading.
func (o *Opener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, e := o.raw(ctx, name)
	if e != nil {
		return nil, e
	}
	rc, e := decompress(name, r)
	if e != nil {
		r.Close()
		return nil, fmt.Errorf("%s: %w", name, e)
	}
	return rc, nil
}

func (o *Opener) raw(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if bucket, key, ok := s3Path(name); ok {
		if o.S3 == nil {
			cfg, e := awsconfig.LoadDefaultConfig(ctx)
			if e != nil {
				return nil, fmt.Errorf("aws configuration: %w", e)
			}
			o.S3 = s3.NewFromConfig(cfg)
		}
		out, e := o.S3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if e != nil {
			return nil, fmt.Errorf("fetching %s: %w", name, e)
		}
		return out.Body, nil
	}
	return os.Open(name)
}

func s3Path(name string) (bucket, key string, ok bool) {
	rest, ok := strings.CutPrefix(name, "s3://")
	if !ok {
		return "", "", false
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if e := c(); e != nil && first == nil {
			first = e
		}
	}
	return first
}

func decompress(name string, r io.ReadCloser) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, e := gzip.NewReader(r)
		if e != nil {
			return nil, e
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close, r.Close}}, nil
	case strings.HasSuffix(name, ".bz2"):
		return &readCloser{Reader: bzip2.NewReader(r), closers: []func() error{r.Close}}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, e := zstd.NewReader(r)
		if e != nil {
			return nil, e
		}
		return &readCloser{Reader: zr, closers: []func() error{
			func() error { zr.Close(); return nil },
			r.Close}}, nil
	}
	return r, nil
}
