package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"crowdbridge/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Recorder", func() {
	var recorder *metrics.Recorder

	BeforeEach(func() {
		recorder = metrics.NewRecorder("crowdbridge")
	})

	It("counts submissions by method and status", func() {
		recorder.ObserveSubmission("invest", "success", 0)
		recorder.ObserveSubmission("invest", "success", 2)
		recorder.ObserveSubmission("verify_milestone", "timed_out", 20)

		expected := `
# HELP crowdbridge_submissions_total Broadcast transactions by contract method and final observed status
# TYPE crowdbridge_submissions_total counter
crowdbridge_submissions_total{method="invest",status="success"} 2
crowdbridge_submissions_total{method="verify_milestone",status="timed_out"} 1
`
		Expect(testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected), "crowdbridge_submissions_total")).To(Succeed())
	})

	It("records how many polls each submission needed", func() {
		recorder.ObserveSubmission("invest", "success", 0)
		recorder.ObserveSubmission("invest", "timed_out", 20)

		count, err := testutil.GatherAndCount(recorder.Registry(), "crowdbridge_confirmation_polls")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})

	It("counts read model failures per query", func() {
		recorder.ReadModelFailure("get_project")
		recorder.ReadModelFailure("get_project")
		recorder.ReadModelFailure("get_investor_amount")

		expected := `
# HELP crowdbridge_read_model_failures_total Read-only contract queries that degraded to zero
# TYPE crowdbridge_read_model_failures_total counter
crowdbridge_read_model_failures_total{query="get_investor_amount"} 1
crowdbridge_read_model_failures_total{query="get_project"} 2
`
		Expect(testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected), "crowdbridge_read_model_failures_total")).To(Succeed())
	})

	It("serves the registry over http", func() {
		recorder.ReadModelFailure("get_project")

		rec := httptest.NewRecorder()
		recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		body, err := io.ReadAll(rec.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`crowdbridge_read_model_failures_total{query="get_project"} 1`))
	})
})
