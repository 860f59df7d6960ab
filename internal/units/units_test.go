package units_test

import (
	"math"
	"math/big"

	"crowdbridge/internal/units"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Units", func() {
	Describe("ToLedgerUnits", func() {
		DescribeTable("converts display amounts",
			func(display float64, expected int64) {
				ledger, err := units.ToLedgerUnits(display)
				Expect(err).NotTo(HaveOccurred())
				Expect(ledger.Int64()).To(Equal(expected))
			},
			Entry("zero", 0.0, int64(0)),
			Entry("whole amount", 10.0, int64(100_000_000)),
			Entry("one tenth", 0.1, int64(1_000_000)),
			Entry("smallest unit", 0.0000001, int64(1)),
			Entry("finer than one unit truncates", 0.00000019, int64(1)),
			Entry("cents", 12.34, int64(123_400_000)),
			Entry("truncates rather than rounds", 1.99999999, int64(19_999_999)),
		)

		DescribeTable("rejects invalid amounts",
			func(display float64) {
				ledger, err := units.ToLedgerUnits(display)
				Expect(err).To(MatchError(units.ErrInvalidAmount))
				Expect(ledger).To(BeNil())
			},
			Entry("negative", -1.0),
			Entry("NaN", math.NaN()),
			Entry("positive infinity", math.Inf(1)),
			Entry("negative infinity", math.Inf(-1)),
			Entry("beyond int128 once scaled", 1e40),
			Entry("largest float", math.MaxFloat64),
		)

		It("accepts the largest amount that fits int128", func() {
			largest := units.FormatDisplay(units.MaxLedgerAmount)
			ledger, err := units.ParseDisplay(largest)
			Expect(err).NotTo(HaveOccurred())
			Expect(ledger.Cmp(units.MaxLedgerAmount)).To(BeZero())

			// digits finer than one base unit are truncated away
			_, err = units.ParseDisplay(largest + "9")
			Expect(err).NotTo(HaveOccurred())

			over := units.FormatDisplay(new(big.Int).Add(units.MaxLedgerAmount, big.NewInt(1)))
			_, err = units.ParseDisplay(over)
			Expect(err).To(MatchError(units.ErrInvalidAmount))
		})

		It("round-trips within one base unit", func() {
			oneUnit := 1.0 / units.Scale
			for _, d := range []float64{0, 0.5, 1, 3.14159265, 10, 25.5, 99.9999999, 1000, 123456.7654321} {
				ledger, err := units.ToLedgerUnits(d)
				Expect(err).NotTo(HaveOccurred())
				Expect(ledger.Sign()).To(BeNumerically(">=", 0))
				Expect(units.ToDisplayUnits(ledger)).To(BeNumerically("~", d, oneUnit))
				Expect(units.ToDisplayUnits(ledger)).To(BeNumerically("<=", d))
			}
		})
	})

	Describe("ParseDisplay", func() {
		It("parses decimal strings", func() {
			ledger, err := units.ParseDisplay(" 5.25 ")
			Expect(err).NotTo(HaveOccurred())
			Expect(ledger.Int64()).To(Equal(int64(52_500_000)))
		})

		DescribeTable("rejects non-numeric or negative input",
			func(input string) {
				_, err := units.ParseDisplay(input)
				Expect(err).To(MatchError(units.ErrInvalidAmount))
			},
			Entry("empty", ""),
			Entry("letters", "ten"),
			Entry("negative", "-0.5"),
		)
	})

	Describe("ToDisplayUnits", func() {
		It("converts base units to display amounts", func() {
			Expect(units.ToDisplayUnits(big.NewInt(25_000_000))).To(Equal(2.5))
			Expect(units.ToDisplayUnits(nil)).To(Equal(0.0))
		})

		It("formats exact decimals", func() {
			Expect(units.FormatDisplay(big.NewInt(1))).To(Equal("0.0000001"))
			Expect(units.FormatDisplay(big.NewInt(123_400_000))).To(Equal("12.3400000"))
		})
	})
})
