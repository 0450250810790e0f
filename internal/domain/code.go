package domain

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const bookingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingCode generates a short receipt code, e.g. BB-X4K2P0917:
// five random base36 characters plus the last four digits of the unix
// millisecond clock. Not unique by construction; the booking ID is the
// real key, the code exists for receipts and phone calls.
func NewBookingCode(now time.Time) string {
	var b strings.Builder
	b.WriteString("BB-")
	for i := 0; i < 5; i++ {
		b.WriteByte(bookingCodeAlphabet[rand.Intn(len(bookingCodeAlphabet))])
	}
	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	b.WriteString(stamp[len(stamp)-4:])
	return b.String()
}
