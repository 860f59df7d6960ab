package milestone_test

import (
	"crowdbridge/internal/milestone"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transition", func() {
	DescribeTable("allowed transitions",
		func(from milestone.Status, e milestone.Event, to milestone.Status) {
			next, err := milestone.Transition(from, e)
			Expect(err).NotTo(HaveOccurred())
			Expect(next).To(Equal(to))
		},
		Entry("evidence accepted", milestone.StatusPending, milestone.EventEvidenceAccepted, milestone.StatusEvidenceSubmitted),
		Entry("approved", milestone.StatusEvidenceSubmitted, milestone.EventApproved, milestone.StatusVerified),
		Entry("rejected", milestone.StatusEvidenceSubmitted, milestone.EventRejected, milestone.StatusRejected),
	)

	DescribeTable("refused transitions",
		func(from milestone.Status, e milestone.Event) {
			next, err := milestone.Transition(from, e)
			Expect(err).To(MatchError(milestone.ErrInvalidTransition))
			Expect(next).To(Equal(from))
		},
		Entry("verify before evidence", milestone.StatusPending, milestone.EventApproved),
		Entry("reject before evidence", milestone.StatusPending, milestone.EventRejected),
		Entry("evidence twice", milestone.StatusEvidenceSubmitted, milestone.EventEvidenceAccepted),
	)

	It("never leaves a terminal status", func() {
		events := []milestone.Event{milestone.EventEvidenceAccepted, milestone.EventApproved, milestone.EventRejected}
		for _, from := range []milestone.Status{milestone.StatusVerified, milestone.StatusRejected} {
			for _, e := range events {
				_, err := milestone.Transition(from, e)
				Expect(err).To(MatchError(milestone.ErrInvalidTransition), "%s on %s", e, from)
			}
		}
	})

	It("maps a verification decision to its event", func() {
		Expect(milestone.Verdict(true)).To(Equal(milestone.EventApproved))
		Expect(milestone.Verdict(false)).To(Equal(milestone.EventRejected))
	})
})

var _ = Describe("Preconditions", func() {
	It("allows evidence only for pending milestones", func() {
		Expect(milestone.CanSubmitEvidence(milestone.StatusPending)).To(Succeed())
		Expect(milestone.CanSubmitEvidence(milestone.StatusEvidenceSubmitted)).To(MatchError(milestone.ErrInvalidTransition))
		Expect(milestone.CanSubmitEvidence(milestone.StatusVerified)).To(MatchError(milestone.ErrInvalidTransition))
	})

	It("allows verification only once evidence is submitted", func() {
		Expect(milestone.CanVerify(milestone.StatusEvidenceSubmitted)).To(Succeed())
		Expect(milestone.CanVerify(milestone.StatusPending)).To(MatchError(milestone.ErrInvalidTransition))
		Expect(milestone.CanVerify(milestone.StatusRejected)).To(MatchError(milestone.ErrInvalidTransition))
	})
})

var _ = Describe("ParseStatus", func() {
	It("accepts known statuses", func() {
		status, err := milestone.ParseStatus("evidence_submitted")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(milestone.StatusEvidenceSubmitted))
	})

	It("refuses anything else", func() {
		_, err := milestone.ParseStatus("approved")
		Expect(err).To(HaveOccurred())
	})
})
