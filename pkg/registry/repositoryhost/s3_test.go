// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"github.com/gardener/docsite/pkg/registry/repositoryhost/repositoryhostfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("S3", func() {
	var (
		client *repositoryhostfakes.FakeS3API
		host   repositoryhost.Interface
		ctx    context.Context
	)
	BeforeEach(func() {
		ctx = context.Background()
		client = &repositoryhostfakes.FakeS3API{}
		host = repositoryhost.NewS3WithClient(client)
	})

	It("accepts s3 urls", func() {
		Expect(host.Accept("s3://docs/site.yaml")).To(BeTrue())
		Expect(host.Accept("gs://docs/site.yaml")).To(BeFalse())
	})

	Describe("#Read", func() {
		It("gets the object", func() {
			client.GetObjectReturns(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("title: docs\n"))}, nil)
			content, err := host.Read(ctx, "s3://docs/site/site.yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("title: docs\n"))
			_, input, _ := client.GetObjectArgsForCall(0)
			Expect(aws.ToString(input.Bucket)).To(Equal("docs"))
			Expect(aws.ToString(input.Key)).To(Equal("site/site.yaml"))
		})
		It("maps missing keys", func() {
			client.GetObjectReturns(nil, &types.NoSuchKey{})
			_, err := host.Read(ctx, "s3://docs/site.yaml")
			Expect(err).To(Equal(repositoryhost.ErrResourceNotFound("s3://docs/site.yaml")))
		})
		It("wraps other errors", func() {
			client.GetObjectReturns(nil, errors.New("access denied"))
			_, err := host.Read(ctx, "s3://docs/site.yaml")
			Expect(err).To(MatchError("reading s3://docs/site.yaml fails: access denied"))
		})
		It("requires a bucket", func() {
			_, err := host.Read(ctx, "s3:///site.yaml")
			Expect(err).To(MatchError("s3:///site.yaml has no bucket"))
		})
	})

	Describe("#Tree", func() {
		It("pages through the markdown objects", func() {
			client.ListObjectsV2ReturnsOnCall(0, &s3.ListObjectsV2Output{
				Contents: []types.Object{
					{Key: aws.String("docs/README.md")},
					{Key: aws.String("docs/site.yaml")},
				},
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("next"),
			}, nil)
			client.ListObjectsV2ReturnsOnCall(1, &s3.ListObjectsV2Output{
				Contents: []types.Object{{Key: aws.String("docs/guide/README.md")}},
			}, nil)
			tree, err := host.Tree(ctx, "s3://bucket/docs")
			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(Equal([]string{"README.md", "guide/README.md"}))
			Expect(client.ListObjectsV2CallCount()).To(Equal(2))
			_, input, _ := client.ListObjectsV2ArgsForCall(1)
			Expect(aws.ToString(input.Prefix)).To(Equal("docs/"))
			Expect(aws.ToString(input.ContinuationToken)).To(Equal("next"))
		})
	})

	Describe("#LastModified", func() {
		It("reads the object metadata", func() {
			modified := time.Date(2024, time.February, 7, 13, 11, 0, 0, time.UTC)
			client.HeadObjectReturns(&s3.HeadObjectOutput{LastModified: aws.Time(modified)}, nil)
			lm, err := host.LastModified(ctx, "s3://bucket/docs/README.md")
			Expect(err).NotTo(HaveOccurred())
			Expect(lm).To(Equal(modified))
		})
		It("maps missing objects", func() {
			client.HeadObjectReturns(nil, &types.NotFound{})
			_, err := host.LastModified(ctx, "s3://bucket/docs/README.md")
			Expect(repositoryhost.IsNotFound(err)).To(BeTrue())
		})
	})

	It("joins keys", func() {
		Expect(host.Join("s3://bucket/docs", "guide", "..", "README.md")).To(Equal("s3://bucket/docs/README.md"))
	})
})
