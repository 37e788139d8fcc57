package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/domain"
)

// SearchKey builds a deterministic cache key from the semantic parameters of
// a rate search. Two logically identical searches map to the same key
// regardless of how their parameter objects were ordered: hotel codes and
// room compositions are sorted into a canonical form before hashing.
func SearchKey(req domain.HotelSearchRequest) string {
	codes := make([]string, len(req.HotelCodes))
	copy(codes, req.HotelCodes)
	sort.Strings(codes)

	rooms := make([]string, 0, len(req.Rooms))
	for _, r := range req.Rooms {
		rooms = append(rooms, fmt.Sprintf("%da%dc", r.Adults, r.Children))
	}
	sort.Strings(rooms)

	canonical := strings.Join([]string{
		req.CheckIn.Format("2006-01-02"),
		req.CheckOut.Format("2006-01-02"),
		strings.Join(codes, ","),
		strings.Join(rooms, ","),
		strings.ToUpper(req.Nationality),
	}, "|")

	sum := sha256.Sum256([]byte(canonical))
	return "search:" + hex.EncodeToString(sum[:])
}
