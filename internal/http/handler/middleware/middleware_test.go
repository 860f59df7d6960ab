package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"crowdbridge/internal/core"
	"crowdbridge/internal/http/handler/middleware"
	"crowdbridge/internal/http/handler/middleware/fake"
	"crowdbridge/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	var (
		seen string
		hdlr http.Handler
		w    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seen = ""
		w = httptest.NewRecorder()
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFrom(r.Context())
		})
		hdlr = middleware.NewRequestIDMiddleware().RequestID(next)
	})

	It("generates an id when the caller sends none", func() {
		hdlr.ServeHTTP(w, httptest.NewRequest("GET", "/bridge/agent", nil))
		Expect(seen).NotTo(BeEmpty())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("keeps the caller's id", func() {
		req := httptest.NewRequest("GET", "/bridge/agent", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		hdlr.ServeHTTP(w, req)
		Expect(seen).To(Equal("abc-123"))
	})
})

var _ = Describe("Logging", func() {
	It("passes the response through", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		w := httptest.NewRecorder()

		middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).
			ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})

var _ = Describe("AuthMiddleware", func() {
	var (
		auth          *middleware.AuthMiddleware
		fakeSessions  *fake.SessionValidator
		req           *http.Request
		w             *httptest.ResponseRecorder
		called        bool
		admitted      jwt.TokenInfo
		admittedFound bool
	)

	BeforeEach(func() {
		called = false
		fakeSessions = new(fake.SessionValidator)
		fakeSessions.SessionReturns(jwt.TokenInfo{Address: "0x2222222222222222222222222222222222222222", Role: "investor"}, nil)

		req = httptest.NewRequest("POST", "/bridge/invest", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		w = httptest.NewRecorder()
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeSessions)
	})

	JustBeforeEach(func() {
		auth.RequireRole(core.RoleInvestor, func(_ http.ResponseWriter, r *http.Request) {
			called = true
			admitted, admittedFound = middleware.SessionFrom(r.Context())
		})(w, req)
	})

	When("the session has the required role", func() {
		It("admits the request with the session", func() {
			Expect(called).To(BeTrue())
			Expect(admittedFound).To(BeTrue())
			Expect(admitted.Address).To(Equal("0x2222222222222222222222222222222222222222"))
			Expect(fakeSessions.SessionArgsForCall(0)).To(Equal("session-token"))
		})
	})

	When("no token is sent", func() {
		BeforeEach(func() {
			req.Header.Del("Authorization")
		})

		It("returns 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeSessions.SessionCallCount()).To(Equal(0))
		})
	})

	When("the token has expired", func() {
		BeforeEach(func() {
			fakeSessions.SessionReturns(jwt.TokenInfo{}, jwt.ErrTokenExpired)
		})

		It("returns 401", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("session expired"))
		})
	})

	When("the token is not valid", func() {
		BeforeEach(func() {
			fakeSessions.SessionReturns(jwt.TokenInfo{}, errors.New("signature is invalid"))
		})

		It("returns 401", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("the session holds another role", func() {
		BeforeEach(func() {
			fakeSessions.SessionReturns(jwt.TokenInfo{Address: "0x2222222222222222222222222222222222222222", Role: "verifier"}, nil)
		})

		It("returns 403", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
