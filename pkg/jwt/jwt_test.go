package jwt_test

import (
	"time"

	tokenIssuer "crowdbridge/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Address:    "0x2222222222222222222222222222222222222222",
			Role:       "verifier",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("round trips the session claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		session, err := service.Session(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(session.Address).To(Equal(info.Address))
		Expect(session.Role).To(Equal("verifier"))
	})

	It("rejects tokens signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects expired tokens", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		tokenIssuer.TimeNow = time.Now

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("rejects tokens without a role", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"sub": info.Address,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Session(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects garbage", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
