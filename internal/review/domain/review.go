package domain

import (
	"strconv"
	"strings"
	"time"
)

// Review is one entry in the append-only review log.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// Append prepends a new review so the log stays most-recent-first, and
// returns the new log plus whether anything was added. A comment that is
// blank after trimming is silently rejected: the log is returned
// unchanged and added is false. The input log is never mutated.
func Append(log []Review, productID, userName string, rating int, comment string, now time.Time) ([]Review, bool) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return log, false
	}

	review := Review{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		ProductID: productID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		Date:      now.Format("02/01/2006"),
	}

	result := make([]Review, 0, len(log)+1)
	result = append(result, review)
	return append(result, log...), true
}

// For returns every review for the product, preserving log order.
func For(log []Review, productID string) []Review {
	result := make([]Review, 0)
	for _, r := range log {
		if r.ProductID == productID {
			result = append(result, r)
		}
	}
	return result
}
