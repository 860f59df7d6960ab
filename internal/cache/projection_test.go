package cache_test

import (
	"context"
	"time"

	"crowdbridge/internal/cache"
	"crowdbridge/internal/milestone"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MilestoneCache", func() {
	var (
		server *miniredis.Miniredis
		client *redis.Client
		mc     *cache.MilestoneCache
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		server, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())

		client = redis.NewClient(&redis.Options{Addr: server.Addr()})
		mc = cache.NewMilestoneCache(client, 10*time.Minute)
		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(client.Close()).To(Succeed())
		server.Close()
	})

	It("reports a miss for unknown milestones", func() {
		_, ok, err := mc.GetStatus(ctx, 1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("returns what was stored under the project and index", func() {
		Expect(mc.SetStatus(ctx, 1, 2, milestone.StatusEvidenceSubmitted)).To(Succeed())

		status, ok, err := mc.GetStatus(ctx, 1, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(status).To(Equal(milestone.StatusEvidenceSubmitted))

		val, err := server.Get("milestone:1:2")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("evidence_submitted"))
		Expect(server.TTL("milestone:1:2")).To(Equal(10 * time.Minute))
	})

	It("forgets an entry once invalidated", func() {
		Expect(mc.SetStatus(ctx, 1, 0, milestone.StatusPending)).To(Succeed())
		Expect(mc.Invalidate(ctx, 1, 0)).To(Succeed())

		_, ok, err := mc.GetStatus(ctx, 1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("expires entries after the ttl", func() {
		Expect(mc.SetStatus(ctx, 1, 0, milestone.StatusPending)).To(Succeed())
		server.FastForward(11 * time.Minute)

		_, ok, err := mc.GetStatus(ctx, 1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("treats unreadable entries as misses", func() {
		Expect(server.Set("milestone:4:0", "approved")).To(Succeed())

		_, ok, err := mc.GetStatus(ctx, 4, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("surfaces connection errors", func() {
		server.Close()

		_, _, err := mc.GetStatus(ctx, 1, 0)
		Expect(err).To(HaveOccurred())
	})
})
