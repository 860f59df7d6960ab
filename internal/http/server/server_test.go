package server_test

import (
	"net/http"
	"time"

	"crowdbridge/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("reports ErrServerClosed after a shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0", time.Minute)

		errChan := srv.Run()
		Eventually(func() error {
			return srv.Shutdown()
		}).Should(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("applies the configured write timeout", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0", 350*time.Second)
		Expect(srv.WriteTimeout()).To(Equal(350 * time.Second))
	})
})
