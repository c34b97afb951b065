// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gardener/docsite/pkg/jobs"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestJobs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Jobs Suite")
}

var _ = Describe("Run", func() {
	var (
		ctx       context.Context
		size      int
		failFast  bool
		worker    jobs.WorkerFunc[string]
		pages     []string
		processed atomic.Int32
		err       error
	)
	BeforeEach(func() {
		ctx = context.Background()
		size = 2
		failFast = false
		processed.Store(0)
		pages = []string{"guide/README.md", "", "guide/using-vue.md", ""}
		worker = func(ctx context.Context, page string) error {
			processed.Add(1)
			if page == "" {
				return errors.New("page is empty")
			}
			return nil
		}
	})
	JustBeforeEach(func() {
		err = jobs.Run(ctx, "Pages", size, worker, failFast, pages)
	})

	It("processes every task and collects all errors", func() {
		Expect(processed.Load()).To(Equal(int32(4)))
		Expect(err).To(HaveOccurred())
		Expect(err.(*multierror.Error).Errors).To(HaveLen(2))
		Expect(err.Error()).To(ContainSubstring("2 errors occurred"))
	})

	When("no task fails", func() {
		BeforeEach(func() {
			pages = []string{"README.md", "guide/README.md", "guide/deploy.md"}
		})
		It("succeeds", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(processed.Load()).To(Equal(int32(3)))
		})
	})

	When("there are no tasks", func() {
		BeforeEach(func() {
			pages = nil
		})
		It("succeeds", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(processed.Load()).To(BeZero())
		})
	})

	When("the workers size is invalid", func() {
		BeforeEach(func() {
			size = 101
		})
		It("fails without processing", func() {
			Expect(err).To(MatchError("Pages workers init fails: invalid workers size '101', valid size interval is [1,100]"))
			Expect(processed.Load()).To(BeZero())
		})
	})

	When("the worker func is not set", func() {
		BeforeEach(func() {
			worker = nil
		})
		It("fails", func() {
			Expect(err).To(MatchError("Pages workers init fails: worker func is nil"))
		})
	})

	When("fail fast is set", func() {
		BeforeEach(func() {
			size = 1
			failFast = true
			pages = []string{"", "guide/README.md", "", "guide/deploy.md"}
		})
		It("skips the tasks after the first error", func() {
			Expect(processed.Load()).To(Equal(int32(1)))
			Expect(err.(*multierror.Error).Errors).To(Equal([]error{errors.New("page is empty")}))
		})
	})

	When("the context is canceled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(context.Background())
			cancel()
			pages = []string{"README.md", "guide/README.md"}
		})
		It("skips the tasks and reports the cancellation", func() {
			Expect(processed.Load()).To(BeZero())
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})

	When("the worker func panics", func() {
		BeforeEach(func() {
			worker = func(ctx context.Context, page string) error {
				processed.Add(1)
				if page == "" {
					panic("page is empty")
				}
				return nil
			}
		})
		It("recovers the panic and reports an error", func() {
			Expect(processed.Load()).To(Equal(int32(4)))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("panic in Pages for task  recovered: page is empty"))
		})
	})
})
