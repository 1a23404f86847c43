package keuanganku

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LinkKind identifies which satellite ledger a link points into.
type LinkKind string

const (
	LinkGoal       LinkKind = "goal"
	LinkInvestment LinkKind = "investment"
	LinkDebt       LinkKind = "debt"
	LinkReceivable LinkKind = "receivable"
)

var (
	// ErrInvalidLinkFormat reports a link whose id segment is not a valid
	// non-negative integer.
	ErrInvalidLinkFormat = errors.New("invalid link format")
	// ErrUnknownLinkKind reports a link whose kind segment names no satellite.
	ErrUnknownLinkKind = errors.New("unknown link kind")
)

// Link is a parsed reference from a transaction to exactly one satellite entity.
type Link struct {
	Kind LinkKind
	ID   int64
}

func (l Link) String() string { return fmt.Sprintf("%s_%d", l.Kind, l.ID) }

// ParseLink parses the "<kind>_<id>" reference embedded in a transaction.
// The string is split on the first underscore. It is a pure function with no
// side effects.
func ParseLink(s string) (Link, error) {
	kind, idStr, found := strings.Cut(s, "_")
	if !found || kind == "" || idStr == "" {
		return Link{}, fmt.Errorf("link %q: %w", s, ErrInvalidLinkFormat)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 0 {
		return Link{}, fmt.Errorf("link %q: id segment %q: %w", s, idStr, ErrInvalidLinkFormat)
	}
	switch LinkKind(kind) {
	case LinkGoal, LinkInvestment, LinkDebt, LinkReceivable:
		return Link{Kind: LinkKind(kind), ID: id}, nil
	default:
		return Link{}, fmt.Errorf("link %q: kind %q: %w", s, kind, ErrUnknownLinkKind)
	}
}
