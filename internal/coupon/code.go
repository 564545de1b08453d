package coupon

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	codeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength   = 4
	maxBaseLength  = 20
	maxInitials    = 2
	dateExpiresFmt = "2006-01-02"
)

var months = [...]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// GenerateCode builds a coupon code of the form NAME-IN-MONYY-XXXX for a rep.
// The month and year come from now; the suffix is drawn from crypto/rand.
func GenerateCode(repName string, now time.Time) (string, error) {
	suffix, err := randomSuffix(suffixLength)
	if err != nil {
		return "", fmt.Errorf("generate coupon suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s-%s", codeBase(repName), Initials(repName), monthYear(now), suffix), nil
}

func codeBase(repName string) string {
	var b strings.Builder
	for _, r := range repName {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	base := []rune(strings.ToUpper(b.String()))
	if len(base) > maxBaseLength {
		base = base[:maxBaseLength]
	}
	return string(base)
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == maxInitials {
			break
		}
		r := []rune(word)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}

func monthYear(now time.Time) string {
	return fmt.Sprintf("%s%02d", months[now.Month()-1], now.Year()%100)
}

// RandomCode returns n characters from the coupon alphabet, drawn from crypto/rand.
func RandomCode(n int) (string, error) {
	return randomSuffix(n)
}

func randomSuffix(n int) (string, error) {
	limit := big.NewInt(int64(len(codeAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// RedeemURL is the store cart link that adds the product and applies the coupon.
// Without a product it falls back to the bare cart page.
func RedeemURL(storeURL string, productID *int64, code string) string {
	cart := strings.TrimRight(storeURL, "/") + "/cart/"
	if productID == nil || *productID == 0 {
		return cart
	}
	q := url.Values{}
	q.Set("add-to-cart", strconv.FormatInt(*productID, 10))
	q.Set("coupon_code", code)
	return cart + "?" + q.Encode()
}

// ExpiryDate formats a coupon expiry the way the store expects it.
func ExpiryDate(t time.Time) string {
	return t.Format(dateExpiresFmt)
}
