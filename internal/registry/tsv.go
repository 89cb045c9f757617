package registry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhyagra/slbc/internal/slbcerr"
)

// CompileDhatuTSV reads the TSV source of truth for the dhātu registry
// (spec.md §4.8) and returns the compiled entries. Columns: id, iast,
// gana, pada, karma, it-flags, set-flags. Blank lines and lines
// starting with '#' are skipped.
func CompileDhatuTSV(r io.Reader) ([]DhatuEntry, error) {
	var entries []DhatuEntry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("dhatu.tsv line %d: want 7 fields, got %d", lineNo, len(fields)), nil)
		}
		id, gana, pada, karma, it, set, err := parseSixUints(fields[0], fields[2], fields[3], fields[4], fields[5], fields[6])
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("dhatu.tsv line %d: %v", lineNo, err), err)
		}
		entries = append(entries, DhatuEntry{
			ID:       uint32(id),
			IAST:     fields[1],
			Gana:     byte(gana),
			Pada:     byte(pada),
			Karma:    byte(karma),
			ItFlags:  byte(it),
			SetFlags: byte(set),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, slbcerr.RegistryNoID("reading dhatu.tsv", err)
	}
	return entries, nil
}

// CompilePratipadikaTSV reads the TSV source for the prātipadika
// registry. Columns: id, iast, stem-class, linga, flags.
func CompilePratipadikaTSV(r io.Reader) ([]PratipadikaEntry, error) {
	var entries []PratipadikaEntry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("pratipadika.tsv line %d: want 5 fields, got %d", lineNo, len(fields)), nil)
		}
		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("pratipadika.tsv line %d: bad id", lineNo), err)
		}
		stemClass, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("pratipadika.tsv line %d: bad stem-class", lineNo), err)
		}
		linga, err := strconv.ParseUint(fields[3], 10, 8)
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("pratipadika.tsv line %d: bad linga", lineNo), err)
		}
		flags, err := strconv.ParseUint(fields[4], 10, 8)
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("pratipadika.tsv line %d: bad flags", lineNo), err)
		}
		entries = append(entries, PratipadikaEntry{
			ID:        uint32(id),
			IAST:      fields[1],
			StemClass: byte(stemClass),
			Linga:     byte(linga),
			Flags:     byte(flags),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, slbcerr.RegistryNoID("reading pratipadika.tsv", err)
	}
	return entries, nil
}

// CompileSandhiRuleTSV reads the TSV source for the sandhi-rule
// registry. Columns: id, iast, type, sutra-ref.
func CompileSandhiRuleTSV(r io.Reader) ([]SandhiRuleEntry, error) {
	var entries []SandhiRuleEntry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("sandhi_rule.tsv line %d: want 4 fields, got %d", lineNo, len(fields)), nil)
		}
		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("sandhi_rule.tsv line %d: bad id", lineNo), err)
		}
		typ, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return nil, slbcerr.RegistryNoID(fmt.Sprintf("sandhi_rule.tsv line %d: bad type", lineNo), err)
		}
		entries = append(entries, SandhiRuleEntry{
			ID:       uint32(id),
			IAST:     fields[1],
			Type:     byte(typ),
			SutraRef: fields[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, slbcerr.RegistryNoID("reading sandhi_rule.tsv", err)
	}
	return entries, nil
}

func parseSixUints(a, b, c, d, e, f string) (id, gana, pada, karma, it, set uint64, err error) {
	vals := make([]uint64, 6)
	for i, s := range []string{a, b, c, d, e, f} {
		v, perr := strconv.ParseUint(s, 10, 32)
		if perr != nil {
			return 0, 0, 0, 0, 0, 0, perr
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], nil
}
