package views

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/ridership"
)

// Arrondissement option labels.
const (
	OptionAll         = "all"
	OptionUnspecified = "unspecified"
)

// ByNetwork keeps the records of one network.
func ByNetwork(records []ridership.Record, network string) []ridership.Record {
	out := make([]ridership.Record, 0)
	for _, r := range records {
		if r.Network == network {
			out = append(out, r)
		}
	}
	return out
}

type arrondissementKind int

const (
	arrondissementAll arrondissementKind = iota
	arrondissementCode
	arrondissementUnspecified
)

// ArrondissementFilter selects every record, the records of one
// arrondissement, or the records without one.
type ArrondissementFilter struct {
	kind arrondissementKind
	code int
}

var (
	AllArrondissements        = ArrondissementFilter{kind: arrondissementAll}
	UnspecifiedArrondissement = ArrondissementFilter{kind: arrondissementUnspecified}
)

// InArrondissement selects one arrondissement code.
func InArrondissement(code int) ArrondissementFilter {
	return ArrondissementFilter{kind: arrondissementCode, code: code}
}

// ParseArrondissementFilter reads an option label. The French labels
// "Tous" and "Non renseigné" are accepted as well.
func ParseArrondissementFilter(s string) (ArrondissementFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", OptionAll, "tous":
		return AllArrondissements, nil
	case OptionUnspecified, "non renseigné", "non_renseigne", "none":
		return UnspecifiedArrondissement, nil
	}
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || code < 0 {
		return ArrondissementFilter{}, fmt.Errorf("invalid arrondissement %q", s)
	}
	return InArrondissement(code), nil
}

func (f ArrondissementFilter) Match(r ridership.Record) bool {
	switch f.kind {
	case arrondissementCode:
		return r.Arrondissement.Valid && r.Arrondissement.Int == f.code
	case arrondissementUnspecified:
		return !r.Arrondissement.Valid
	default:
		return true
	}
}

func (f ArrondissementFilter) String() string {
	switch f.kind {
	case arrondissementCode:
		return strconv.Itoa(f.code)
	case arrondissementUnspecified:
		return OptionUnspecified
	default:
		return OptionAll
	}
}

// ByArrondissement keeps the records matching f.
func ByArrondissement(records []ridership.Record, f ArrondissementFilter) []ridership.Record {
	out := make([]ridership.Record, 0)
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Networks lists the distinct non-empty network labels, sorted.
func Networks(records []ridership.Record) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, r := range records {
		if r.Network == "" || seen[r.Network] {
			continue
		}
		seen[r.Network] = true
		out = append(out, r.Network)
	}
	sort.Strings(out)
	return out
}

// ArrondissementCodes lists the distinct arrondissement codes, sorted.
func ArrondissementCodes(records []ridership.Record) []int {
	seen := map[int]bool{}
	out := make([]int, 0)
	for _, r := range records {
		if !r.Arrondissement.Valid || seen[r.Arrondissement.Int] {
			continue
		}
		seen[r.Arrondissement.Int] = true
		out = append(out, r.Arrondissement.Int)
	}
	sort.Ints(out)
	return out
}

// ArrondissementOptions is the selector content: "all", every code, then
// "unspecified".
func ArrondissementOptions(records []ridership.Record) []string {
	codes := ArrondissementCodes(records)
	out := make([]string, 0, len(codes)+2)
	out = append(out, OptionAll)
	for _, c := range codes {
		out = append(out, strconv.Itoa(c))
	}
	return append(out, OptionUnspecified)
}
